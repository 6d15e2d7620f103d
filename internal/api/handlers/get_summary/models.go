package get_summary

import (
	getSummary "github.com/m04kA/SMC-LabReservationService/internal/usecase/get_summary"
)

// SlotStatusResponse занятый слот
type SlotStatusResponse struct {
	SlotID string `json:"slotId"`
	Status string `json:"status"`
}

// DayResponse сводка за день
type DayResponse struct {
	Date           string               `json:"date"`
	Slots          []SlotStatusResponse `json:"slots"`
	AvailableCount int                  `json:"availableCount"`
}

// SummaryResponse HTTP response model
type SummaryResponse struct {
	ResourceID string        `json:"resourceId"`
	From       string        `json:"from"`
	To         string        `json:"to"`
	Days       []DayResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *getSummary.Response) *SummaryResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, d := range resp.Days {
		slots := make([]SlotStatusResponse, 0, len(d.Slots))
		for _, s := range d.Slots {
			slots = append(slots, SlotStatusResponse{SlotID: s.SlotID, Status: s.Status})
		}
		days = append(days, DayResponse{
			Date:           d.Date.String(),
			Slots:          slots,
			AvailableCount: d.AvailableCount,
		})
	}

	return &SummaryResponse{
		ResourceID: resp.ResourceID,
		From:       resp.From.String(),
		To:         resp.To.String(),
		Days:       days,
	}
}
