package get_availability

import (
	getAvailability "github.com/m04kA/SMC-LabReservationService/internal/usecase/get_availability"
)

// SlotResponse состояние слота
type SlotResponse struct {
	SlotID     string `json:"slotId"`
	Label      string `json:"label"`
	StartHour  int    `json:"startHour"`
	EndHour    int    `json:"endHour"`
	IsBooked   bool   `json:"isBooked"`
	IsPast     bool   `json:"isPast"`
	Selectable bool   `json:"selectable"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	ResourceID     string         `json:"resourceId"`
	ResourceName   string         `json:"resourceName"`
	ResourceStatus string         `json:"resourceStatus"`
	Date           string         `json:"date"`
	Slots          []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			SlotID:     s.SlotID,
			Label:      s.Label,
			StartHour:  s.StartHour,
			EndHour:    s.EndHour,
			IsBooked:   s.IsBooked,
			IsPast:     s.IsPast,
			Selectable: s.Selectable,
		})
	}

	return &AvailabilityResponse{
		ResourceID:     resp.ResourceID,
		ResourceName:   resp.ResourceName,
		ResourceStatus: resp.ResourceStatus,
		Date:           resp.Date.String(),
		Slots:          slots,
	}
}
