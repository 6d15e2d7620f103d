package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-LabReservationService/internal/domain"
	resourceRepo "github.com/m04kA/SMC-LabReservationService/internal/infra/storage/resource"
	"github.com/m04kA/SMC-LabReservationService/internal/service/admin/models"
	reservationModels "github.com/m04kA/SMC-LabReservationService/internal/service/reservations/models"
)

// Service сервис панели администратора
type Service struct {
	resourceRepo    ResourceRepository
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса администратора
func NewService(resourceRepo ResourceRepository, reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		resourceRepo:    resourceRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Overview возвращает счетчики: всего компьютеров, активных броней, компьютеров на обслуживании
func (s *Service) Overview(ctx context.Context) (*models.OverviewResponse, error) {
	s.logger.Info("Overview: collecting counters")

	total, err := s.resourceRepo.Count(ctx)
	if err != nil {
		return nil, s.storeError("Overview", err)
	}

	maintenance, err := s.resourceRepo.CountByStatus(ctx, domain.ResourceMaintenance)
	if err != nil {
		return nil, s.storeError("Overview", err)
	}

	active, err := s.reservationRepo.CountActive(ctx)
	if err != nil {
		return nil, s.storeError("Overview", err)
	}

	return &models.OverviewResponse{
		TotalResources:     total,
		ActiveReservations: active,
		MaintenanceCount:   maintenance,
	}, nil
}

// ListResources возвращает весь инвентарь
func (s *Service) ListResources(ctx context.Context) (*models.ResourceListResponse, error) {
	list, err := s.resourceRepo.GetAll(ctx)
	if err != nil {
		return nil, s.storeError("ListResources", err)
	}

	s.logger.Info("ListResources: fetched %d resources", len(list))
	return models.FromDomainResourceList(list), nil
}

// UpdateResourceStatus переводит компьютер в другой операционный статус
func (s *Service) UpdateResourceStatus(ctx context.Context, id string, req *models.UpdateResourceStatusRequest) error {
	s.logger.Info("UpdateResourceStatus: resource=%s, status=%s", id, req.Status)

	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: resource id is required", ErrInvalidInput)
	}

	status, err := domain.ParseResourceStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateResourceStatus: invalid status %q", req.Status)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.resourceRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			s.logger.Warn("UpdateResourceStatus: resource id=%s not found", id)
			return ErrResourceNotFound
		}
		return s.storeError("UpdateResourceStatus", err)
	}

	s.logger.Info("UpdateResourceStatus: resource=%s is now %s", id, status)
	return nil
}

// ListReservations возвращает все брони по дате и порядку слотов
func (s *Service) ListReservations(ctx context.Context) (*reservationModels.ReservationListResponse, error) {
	list, err := s.reservationRepo.GetAll(ctx)
	if err != nil {
		return nil, s.storeError("ListReservations", err)
	}

	domain.SortReservations(list)

	s.logger.Info("ListReservations: fetched %d reservations", len(list))
	return reservationModels.FromDomainReservationList(list), nil
}

func (s *Service) storeError(op string, err error) error {
	s.logger.Error("%s: repository error: %v", op, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrTransientFailure, op, err)
}
