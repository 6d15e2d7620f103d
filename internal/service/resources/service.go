package resources

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-LabReservationService/internal/service/resources/models"
)

// Service сервис каталога компьютеров, доступный всем пользователям
type Service struct {
	resourceRepo ResourceRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(resourceRepo ResourceRepository, logger Logger) *Service {
	return &Service{
		resourceRepo: resourceRepo,
		logger:       logger,
	}
}

// List возвращает компьютеры лаборатории с их текущим статусом
func (s *Service) List(ctx context.Context) (*models.CatalogResponse, error) {
	list, err := s.resourceRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrTransientFailure, err)
	}

	s.logger.Info("List: fetched %d resources", len(list))
	return models.FromDomainResourceList(list), nil
}
