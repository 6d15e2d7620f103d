package get_resources

import (
	"context"

	"github.com/m04kA/SMC-LabReservationService/internal/service/resources/models"
)

type ResourceService interface {
	List(ctx context.Context) (*models.CatalogResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
