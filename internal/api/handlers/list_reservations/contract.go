package list_reservations

import (
	"context"

	"github.com/m04kA/SMC-LabReservationService/internal/service/reservations/models"
)

type AdminService interface {
	ListReservations(ctx context.Context) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
