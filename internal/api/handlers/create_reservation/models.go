package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-LabReservationService/internal/api/middleware"
	createReservation "github.com/m04kA/SMC-LabReservationService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	ResourceID   string  `json:"resourceId"`
	ResourceName *string `json:"resourceName,omitempty"`
	Date         string  `json:"date"` // "2026-10-21"
	SlotID       string  `json:"slotId"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID           string `json:"id"`
	ResourceID   string `json:"resourceId"`
	ResourceName string `json:"resourceName"`
	Date         string `json:"date"`
	SlotID       string `json:"slotId"`
	SlotLabel    string `json:"slotLabel"`
	UserID       string `json:"userId"`
	UserName     string `json:"userName"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Пользователь берется из токена, а не из тела запроса
func (r *CreateReservationRequest) ToUseCaseRequest(user *middleware.User) *createReservation.Request {
	req := &createReservation.Request{
		ResourceID: r.ResourceID,
		Date:       r.Date,
		SlotID:     r.SlotID,
		UserID:     user.ID,
		UserName:   user.Name,
	}

	if req.UserName == "" {
		req.UserName = user.Email
	}
	if r.ResourceName != nil {
		req.ResourceName = *r.ResourceName
	}

	return req
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:           resp.ID,
		ResourceID:   resp.ResourceID,
		ResourceName: resp.ResourceName,
		Date:         resp.Date.String(),
		SlotID:       resp.SlotID,
		SlotLabel:    resp.SlotLabel,
		UserID:       resp.UserID,
		UserName:     resp.UserName,
		Status:       resp.Status,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
	}
}
