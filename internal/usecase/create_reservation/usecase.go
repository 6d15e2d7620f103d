package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-LabReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-LabReservationService/internal/infra/storage/reservation"
	resourceRepo "github.com/m04kA/SMC-LabReservationService/internal/infra/storage/resource"
)

// Исходы для метрики reservations_total
const (
	outcomeCreated  = "created"
	outcomeConflict = "conflict"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
)

// UseCase use case для создания брони компьютера
type UseCase struct {
	reservationRepo ReservationRepository
	resourceRepo    ResourceRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	metrics         MetricsRecorder
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	resourceRepo ResourceRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		resourceRepo:    resourceRepo,
		txManager:       txManager,
		timeProvider:    timeProvider,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case создания брони
// Проверка занятости и вставка идут в одной сериализуемой транзакции;
// одновременные запросы на один слот дают ровно одну успешную бронь.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%s, resource=%s, date=%s, slot=%s",
		req.UserID, req.ResourceID, req.Date, req.SlotID)

	// 1. Валидация входных данных
	date, slot, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		uc.metrics.RecordReservation(outcomeRejected)
		return nil, err
	}

	// 2. Слот не должен быть в прошлом
	if domain.IsSlotPast(date, slot, uc.timeProvider.Now()) {
		uc.logger.Warn("CreateReservation: slot %s on %s is in the past", slot.ID, date)
		uc.metrics.RecordReservation(outcomeRejected)
		return nil, ErrSlotInPast
	}

	var result *domain.Reservation

	// 3. Проверка и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Ищем активные брони на слот с блокировкой (FOR UPDATE)
		existing, err := uc.reservationRepo.FindActiveBySlot(txCtx, req.ResourceID, date, slot.ID)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to check slot: %v", err)
			return fmt.Errorf("%w: failed to check slot: %w", ErrTransientFailure, err)
		}
		if len(existing) > 0 {
			uc.logger.Warn("CreateReservation: slot already booked by reservation id=%s", existing[0].ID)
			return ErrSlotAlreadyBooked
		}

		// 3.2. Имя компьютера: от клиента, иначе из инвентаря, иначе ID
		resourceName, err := uc.resolveResourceName(txCtx, req)
		if err != nil {
			return err
		}

		// 3.3. Сохраняем бронь
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			ResourceID:   req.ResourceID,
			ResourceName: resourceName,
			Date:         date,
			SlotID:       slot.ID,
			UserID:       req.UserID,
			UserName:     req.UserName,
			Status:       domain.ReservationConfirmed,
		})
		if err != nil {
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateReservation: lost race for slot: %v", err)
				return ErrSlotAlreadyBooked
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %w", ErrTransientFailure, err)
		}

		result = created
		return nil
	})

	if err != nil {
		uc.recordFailure(err)
		if isBusinessError(err) {
			return nil, err
		}
		if !errors.Is(err, ErrTransientFailure) {
			err = fmt.Errorf("%w: %w", ErrTransientFailure, err)
		}
		return nil, err
	}

	uc.metrics.RecordReservation(outcomeCreated)
	uc.logger.Info("CreateReservation: successfully created reservation id=%s", result.ID)

	return &Response{
		ID:           result.ID,
		ResourceID:   result.ResourceID,
		ResourceName: result.ResourceName,
		Date:         result.Date,
		SlotID:       string(result.SlotID),
		SlotLabel:    slot.Label,
		UserID:       result.UserID,
		UserName:     result.UserName,
		Status:       string(result.Status),
		CreatedAt:    result.CreatedAt,
	}, nil
}

func (uc *UseCase) resolveResourceName(ctx context.Context, req *Request) (string, error) {
	resource, err := uc.resourceRepo.GetByID(ctx, req.ResourceID)
	switch {
	case errors.Is(err, resourceRepo.ErrResourceNotFound):
		if req.ResourceName != "" {
			return req.ResourceName, nil
		}
		return req.ResourceID, nil
	case err != nil:
		uc.logger.Error("CreateReservation: failed to get resource id=%s: %v", req.ResourceID, err)
		return "", fmt.Errorf("%w: failed to get resource: %w", ErrTransientFailure, err)
	}

	if !resource.IsAvailable() {
		uc.logger.Warn("CreateReservation: resource id=%s is %s", resource.ID, resource.Status)
		return "", fmt.Errorf("%w: status=%s", ErrResourceUnavailable, resource.Status)
	}

	if req.ResourceName != "" {
		return req.ResourceName, nil
	}
	return resource.Name, nil
}

func (uc *UseCase) recordFailure(err error) {
	switch {
	case errors.Is(err, ErrSlotAlreadyBooked):
		uc.metrics.RecordReservation(outcomeConflict)
	case errors.Is(err, ErrResourceUnavailable):
		uc.metrics.RecordReservation(outcomeRejected)
	default:
		uc.metrics.RecordReservation(outcomeFailed)
	}
}

func isBusinessError(err error) bool {
	return errors.Is(err, ErrSlotAlreadyBooked) || errors.Is(err, ErrResourceUnavailable)
}
