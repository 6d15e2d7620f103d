package models

import (
	"time"

	"github.com/m04kA/SMC-LabReservationService/internal/domain"
)

// ReservationResponse ответ с данными брони
type ReservationResponse struct {
	ID           string `json:"id"`
	ResourceID   string `json:"resourceId"`
	ResourceName string `json:"resourceName"`
	Date         string `json:"date"` // "2026-10-19"
	SlotID       string `json:"slotId"`
	SlotLabel    string `json:"slotLabel"`
	UserID       string `json:"userId"`
	UserName     string `json:"userName"`
	Status       string `json:"status"`

	CreatedAt   time.Time `json:"createdAt"`
	CancelledAt *string   `json:"cancelledAt,omitempty"` // ISO 8601 format
}

// ReservationListResponse ответ со списком броней
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:           r.ID,
		ResourceID:   r.ResourceID,
		ResourceName: r.ResourceName,
		Date:         r.Date.String(),
		SlotID:       string(r.SlotID),
		UserID:       r.UserID,
		UserName:     r.UserName,
		Status:       string(r.Status),
		CreatedAt:    r.CreatedAt,
	}

	if slot, ok := domain.FindSlot(r.SlotID); ok {
		resp.SlotLabel = slot.Label
	}

	if r.CancelledAt != nil {
		cancelledAt := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(list)),
	}
	for _, r := range list {
		resp.Reservations = append(resp.Reservations, *FromDomainReservation(r))
	}
	return resp
}
