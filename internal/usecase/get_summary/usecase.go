package get_summary

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-LabReservationService/internal/domain"
	"github.com/m04kA/SMC-LabReservationService/pkg/types"
)

// UseCase use case для сводки занятости компьютера на ближайшие 7 дней
type UseCase struct {
	reservationRepo ReservationRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, timeProvider TimeProvider, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute строит сводку за окно [сегодня, сегодня+6]
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if strings.TrimSpace(req.ResourceID) == "" {
		return nil, fmt.Errorf("%w: resourceId is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	from := types.NewDateString(now)
	to := from.AddDays(domain.SummaryWindowDays - 1)

	uc.logger.Info("GetSummary: resource=%s, window=%s..%s", req.ResourceID, from, to)

	reservations, err := uc.reservationRepo.GetActiveByResource(ctx, req.ResourceID, from, to)
	if err != nil {
		uc.logger.Error("GetSummary: failed to get reservations for resource=%s: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrTransientFailure, err)
	}

	inWindow := make([]*domain.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if r.Date.Between(from, to) {
			inWindow = append(inWindow, r)
		}
	}
	occupancy := domain.BuildOccupancy(inWindow)

	catalog := domain.SlotCatalog()
	days := make([]DaySummary, 0, domain.SummaryWindowDays)
	for i := 0; i < domain.SummaryWindowDays; i++ {
		date := from.AddDays(i)

		slots := make([]SlotStatus, 0)
		available := 0
		for _, slot := range catalog {
			res, booked := occupancy[date][slot.ID]
			if booked {
				slots = append(slots, SlotStatus{SlotID: string(slot.ID), Status: string(res.Status)})
			}
			// Прошедший слот сегодня не считается свободным
			if !booked && !domain.IsSlotPast(date, slot, now) {
				available++
			}
		}

		days = append(days, DaySummary{
			Date:           date,
			Slots:          slots,
			AvailableCount: available,
		})
	}

	return &Response{
		ResourceID: req.ResourceID,
		From:       from,
		To:         to,
		Days:       days,
	}, nil
}
