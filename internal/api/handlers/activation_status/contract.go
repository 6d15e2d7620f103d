package activation_status

import (
	"context"

	"github.com/m04kA/SMC-LabReservationService/internal/service/activation/models"
)

type ActivationService interface {
	Status(ctx context.Context, userID string) (*models.StatusResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
