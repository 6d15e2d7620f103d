package models

import (
	"time"

	"github.com/m04kA/SMC-LabReservationService/internal/domain"
)

// CompleteInitializationRequest запрос на завершение первичной активации
type CompleteInitializationRequest struct {
	UserID          string `json:"-"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// StatusResponse флаги активации пользователя
type StatusResponse struct {
	UserID            string  `json:"userId"`
	Email             string  `json:"email"`
	DisplayName       string  `json:"displayName"`
	State             string  `json:"state"`
	EmailVerified     bool    `json:"emailVerified"`
	IsInitialized     bool    `json:"isInitialized"`
	PasswordChangedAt *string `json:"passwordChangedAt,omitempty"` // ISO 8601 format
}

// ConfirmEmailResponse результат подтверждения email
type ConfirmEmailResponse struct {
	UserID        string `json:"userId"`
	EmailVerified bool   `json:"emailVerified"`
}

// FromDomainRecord конвертирует domain модель в DTO
func FromDomainRecord(rec *domain.ActivationRecord) *StatusResponse {
	if rec == nil {
		return nil
	}

	resp := &StatusResponse{
		UserID:        rec.UserID,
		Email:         rec.Email,
		DisplayName:   rec.DisplayName,
		State:         string(rec.State()),
		EmailVerified: rec.EmailVerified,
		IsInitialized: rec.IsInitialized,
	}

	if rec.PasswordChangedAt != nil {
		changedAt := rec.PasswordChangedAt.Format(time.RFC3339)
		resp.PasswordChangedAt = &changedAt
	}

	return resp
}
