package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-LabReservationService/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)

// ParseReservationStatus converts a raw value into a known status
func ParseReservationStatus(s string) (ReservationStatus, error) {
	switch ReservationStatus(s) {
	case ReservationConfirmed, ReservationCancelled:
		return ReservationStatus(s), nil
	default:
		return "", fmt.Errorf("%w: reservation status %q", ErrUnknownStatus, s)
	}
}

// Reservation a claim by one user on one computer for one slot on one date
type Reservation struct {
	ID         string // UUID
	ResourceID string
	Date       types.DateString // дата в часовом поясе лаборатории
	SlotID     SlotID
	UserID     string
	Status     ReservationStatus

	// Denormalized data for history (снимок на момент создания)
	ResourceName string
	UserName     string

	CreatedAt   time.Time
	CancelledAt *time.Time // nil для подтвержденных броней
}

// IsActive returns true if the reservation still occupies its slot
func (r *Reservation) IsActive() bool {
	return r.Status == ReservationConfirmed
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == ReservationCancelled
}

// IsOwnedBy returns true if the reservation belongs to the user
func (r *Reservation) IsOwnedBy(userID string) bool {
	return r.UserID == userID
}

// Occupancy confirmed reservations indexed by date and slot
type Occupancy map[types.DateString]map[SlotID]*Reservation

// BuildOccupancy indexes the active reservations of the list; cancelled ones are skipped
func BuildOccupancy(list []*Reservation) Occupancy {
	occ := make(Occupancy)
	for _, r := range list {
		if !r.IsActive() {
			continue
		}
		if occ[r.Date] == nil {
			occ[r.Date] = make(map[SlotID]*Reservation)
		}
		occ[r.Date][r.SlotID] = r
	}
	return occ
}

// IsBooked reports whether the slot on date has a confirmed reservation
func (o Occupancy) IsBooked(date types.DateString, slotID SlotID) bool {
	_, ok := o[date][slotID]
	return ok
}

// SortReservations orders reservations by date, then by slot catalog order
func SortReservations(list []*Reservation) {
	sort.SliceStable(list, func(i, j int) bool {
		// ISO-даты сравниваются лексикографически
		if list[i].Date != list[j].Date {
			return list[i].Date.Before(list[j].Date)
		}
		return SlotOrder(list[i].SlotID) < SlotOrder(list[j].SlotID)
	})
}
