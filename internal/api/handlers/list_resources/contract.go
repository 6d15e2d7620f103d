package list_resources

import (
	"context"

	"github.com/m04kA/SMC-LabReservationService/internal/service/admin/models"
)

type AdminService interface {
	ListResources(ctx context.Context) (*models.ResourceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
