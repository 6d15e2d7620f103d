package complete_activation

import (
	"context"

	"github.com/m04kA/SMC-LabReservationService/internal/service/activation/models"
)

type ActivationService interface {
	CompleteInitialization(ctx context.Context, req *models.CompleteInitializationRequest) (*models.StatusResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
