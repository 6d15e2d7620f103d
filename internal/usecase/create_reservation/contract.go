package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LabReservationService/internal/domain"
	"github.com/m04kA/SMC-LabReservationService/pkg/types"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	FindActiveBySlot(ctx context.Context, resourceID string, date types.DateString, slotID domain.SlotID) ([]*domain.Reservation, error)
}

// ResourceRepository интерфейс репозитория инвентаря
type ResourceRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Resource, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// MetricsRecorder счетчик исходов бронирования
type MetricsRecorder interface {
	RecordReservation(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
