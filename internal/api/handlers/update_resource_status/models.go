package update_resource_status

import (
	"github.com/m04kA/SMC-LabReservationService/internal/service/admin/models"
)

// UpdateResourceStatusRequest HTTP request model
type UpdateResourceStatusRequest struct {
	Status string `json:"status"` // available | maintenance | offline
}

// UpdateResourceStatusResponse HTTP response model
type UpdateResourceStatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateResourceStatusRequest) ToServiceRequest() *models.UpdateResourceStatusRequest {
	return &models.UpdateResourceStatusRequest{Status: r.Status}
}
