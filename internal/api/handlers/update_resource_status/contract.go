package update_resource_status

import (
	"context"

	"github.com/m04kA/SMC-LabReservationService/internal/service/admin/models"
)

type AdminService interface {
	UpdateResourceStatus(ctx context.Context, id string, req *models.UpdateResourceStatusRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
