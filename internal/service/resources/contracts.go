package resources

import (
	"context"

	"github.com/m04kA/SMC-LabReservationService/internal/domain"
)

// ResourceRepository интерфейс репозитория инвентаря
type ResourceRepository interface {
	GetAll(ctx context.Context) ([]*domain.Resource, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
