package get_availability

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-LabReservationService/internal/domain"
	resourceRepo "github.com/m04kA/SMC-LabReservationService/internal/infra/storage/resource"
	"github.com/m04kA/SMC-LabReservationService/pkg/types"
)

// UseCase use case для получения состояния слотов компьютера на дату
type UseCase struct {
	reservationRepo ReservationRepository
	resourceRepo    ResourceRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	resourceRepo ResourceRepository,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		resourceRepo:    resourceRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: resource=%s, date=%s", req.ResourceID, req.Date)

	// 1. Валидация входных данных
	if strings.TrimSpace(req.ResourceID) == "" {
		return nil, fmt.Errorf("%w: resourceId is required", ErrInvalidInput)
	}
	date, err := types.ParseDateString(req.Date)
	if err != nil {
		uc.logger.Warn("GetAvailability: invalid date %q", req.Date)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Компьютер должен существовать
	resource, err := uc.resourceRepo.GetByID(ctx, req.ResourceID)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			uc.logger.Warn("GetAvailability: resource id=%s not found", req.ResourceID)
			return nil, ErrResourceNotFound
		}
		uc.logger.Error("GetAvailability: failed to get resource id=%s: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: failed to get resource: %v", ErrTransientFailure, err)
	}

	// 3. Подтвержденные брони на дату
	reservations, err := uc.reservationRepo.GetActiveByResource(ctx, req.ResourceID, date, date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrTransientFailure, err)
	}

	// 4. Текущее время читается один раз на весь расчет
	now := uc.timeProvider.Now()
	occupancy := domain.BuildOccupancy(reservations)

	catalog := domain.SlotCatalog()
	slots := make([]SlotView, 0, len(catalog))
	for _, slot := range catalog {
		booked := occupancy.IsBooked(date, slot.ID)
		past := domain.IsSlotPast(date, slot, now)

		slots = append(slots, SlotView{
			SlotID:     string(slot.ID),
			Label:      slot.Label,
			StartHour:  slot.StartHour,
			EndHour:    slot.EndHour,
			IsBooked:   booked,
			IsPast:     past,
			Selectable: !booked && !past && resource.IsAvailable(),
		})
	}

	uc.logger.Info("GetAvailability: resource=%s date=%s booked=%d", req.ResourceID, date, len(occupancy[date]))

	return &Response{
		ResourceID:     resource.ID,
		ResourceName:   resource.Name,
		ResourceStatus: string(resource.Status),
		Date:           date,
		Slots:          slots,
	}, nil
}
