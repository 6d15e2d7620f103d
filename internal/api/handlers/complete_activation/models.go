package complete_activation

import (
	"github.com/m04kA/SMC-LabReservationService/internal/service/activation/models"
)

// CompleteActivationRequest HTTP request model
type CompleteActivationRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CompleteActivationRequest) ToServiceRequest(userID string) *models.CompleteInitializationRequest {
	return &models.CompleteInitializationRequest{
		UserID:          userID,
		CurrentPassword: r.CurrentPassword,
		NewPassword:     r.NewPassword,
		ConfirmPassword: r.ConfirmPassword,
	}
}
