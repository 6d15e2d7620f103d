package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-LabReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-LabReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-LabReservationService/internal/service/reservations/models"
)

// Service сервис для работы с бронями пользователей
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// GetByID получает бронь по ID
// Пользователь видит только свою бронь, администратор видит любую
func (s *Service) GetByID(ctx context.Context, id string, userID string, isAdmin bool) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%s for user=%s", id, userID)

	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: reservation id is required", ErrInvalidInput)
	}

	res, err := s.getReservation(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if !isAdmin && !res.IsOwnedBy(userID) {
		s.logger.Warn("GetByID: access denied for user=%s to reservation id=%s", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainReservation(res), nil
}

// ListByUser возвращает брони пользователя по дате и порядку слотов
func (s *Service) ListByUser(ctx context.Context, userID string) (*models.ReservationListResponse, error) {
	s.logger.Info("ListByUser: fetching reservations for user=%s", userID)

	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	list, err := s.reservationRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("ListByUser: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: ListByUser - repository error: %v", ErrTransientFailure, err)
	}

	domain.SortReservations(list)

	s.logger.Info("ListByUser: successfully fetched %d reservations for user=%s", len(list), userID)
	return models.FromDomainReservationList(list), nil
}

// Cancel отменяет бронь
// Пустой userID означает отмену администратором без проверки владельца.
// Повторная отмена уже отмененной брони считается успешной.
func (s *Service) Cancel(ctx context.Context, id string, userID string) error {
	s.logger.Info("Cancel: cancelling reservation id=%s by user=%q", id, userID)

	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: reservation id is required", ErrInvalidInput)
	}

	res, err := s.getReservation(ctx, "Cancel", id)
	if err != nil {
		return err
	}

	if userID != "" && !res.IsOwnedBy(userID) {
		s.logger.Warn("Cancel: user=%s is not the owner of reservation id=%s", userID, id)
		return ErrAccessDenied
	}

	if res.IsCancelled() {
		s.logger.Info("Cancel: reservation id=%s already cancelled", id)
		return nil
	}

	if err := s.reservationRepo.Cancel(ctx, id); err != nil {
		// Гонка с параллельной отменой: бронь уже не активна
		if errors.Is(err, reservationRepo.ErrNotActive) {
			s.logger.Info("Cancel: reservation id=%s was cancelled concurrently", id)
			return nil
		}
		s.logger.Error("Cancel: failed to cancel reservation id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrTransientFailure, err)
	}

	s.logger.Info("Cancel: reservation id=%s cancelled", id)
	return nil
}

func (s *Service) getReservation(ctx context.Context, op, id string) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%s not found", op, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrTransientFailure, op, err)
	}
	return res, nil
}
