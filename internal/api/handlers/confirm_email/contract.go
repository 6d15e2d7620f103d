package confirm_email

import (
	"context"

	"github.com/m04kA/SMC-LabReservationService/internal/service/activation/models"
)

type ActivationService interface {
	ConfirmEmail(ctx context.Context, code string) (*models.ConfirmEmailResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
