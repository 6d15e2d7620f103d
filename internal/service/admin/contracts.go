package admin

import (
	"context"

	"github.com/m04kA/SMC-LabReservationService/internal/domain"
)

// ResourceRepository интерфейс репозитория инвентаря
type ResourceRepository interface {
	GetAll(ctx context.Context) ([]*domain.Resource, error)
	UpdateStatus(ctx context.Context, id string, status domain.ResourceStatus) error
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status domain.ResourceStatus) (int, error)
}

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetAll(ctx context.Context) ([]*domain.Reservation, error)
	CountActive(ctx context.Context) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
