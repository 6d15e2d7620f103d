package domain

import (
	"time"

	"github.com/m04kA/SMC-LabReservationService/pkg/types"
)

// SlotID identifier of a daily time slot
type SlotID string

const (
	SlotMorning   SlotID = "morning"
	SlotAfternoon SlotID = "afternoon"
	SlotEvening   SlotID = "evening"
)

// SlotDefinition a fixed daily time window a computer can be reserved for
type SlotDefinition struct {
	ID        SlotID
	Label     string
	StartHour int // час начала, включительно
	EndHour   int // час окончания; в этот момент слот становится прошедшим
}

// slotCatalog is ordered chronologically; the order is used as a sort tie-break
var slotCatalog = []SlotDefinition{
	{ID: SlotMorning, Label: "Morning (09:00 - 12:00)", StartHour: 9, EndHour: 12},
	{ID: SlotAfternoon, Label: "Afternoon (13:00 - 17:00)", StartHour: 13, EndHour: 17},
	{ID: SlotEvening, Label: "Evening (18:00 - 21:00)", StartHour: 18, EndHour: 21},
}

// SlotCatalog returns a copy of the slot catalog in chronological order
func SlotCatalog() []SlotDefinition {
	out := make([]SlotDefinition, len(slotCatalog))
	copy(out, slotCatalog)
	return out
}

// FindSlot looks up a slot definition by id
func FindSlot(id SlotID) (SlotDefinition, bool) {
	for _, s := range slotCatalog {
		if s.ID == id {
			return s, true
		}
	}
	return SlotDefinition{}, false
}

// SlotOrder returns the catalog position of the slot; unknown ids sort last
func SlotOrder(id SlotID) int {
	for i, s := range slotCatalog {
		if s.ID == id {
			return i
		}
	}
	return len(slotCatalog)
}

// EndsAt returns the moment the slot ends on the given date in loc
func (s SlotDefinition) EndsAt(date types.DateString, loc *time.Location) (time.Time, error) {
	day, err := date.In(loc)
	if err != nil {
		return time.Time{}, err
	}
	return day.Add(time.Duration(s.EndHour) * time.Hour), nil
}

// IsSlotPast reports whether the slot on date can no longer be used.
// A slot is past when its date is before today, or when it is today and now
// has reached the slot end. The availability view, the weekly summary and
// reservation creation all go through this function.
func IsSlotPast(date types.DateString, slot SlotDefinition, now time.Time) bool {
	today := types.NewDateString(now)

	if date.Before(today) {
		return true
	}
	if date.After(today) {
		return false
	}

	// Сегодня: слот прошел, когда наступил час его окончания
	end, err := slot.EndsAt(date, now.Location())
	if err != nil {
		return false
	}
	return !now.Before(end)
}
