package domain

import "time"

// ActivationState derived state of the first-login activation flow
type ActivationState string

const (
	ActivationUnverified    ActivationState = "unverified"
	ActivationEmailVerified ActivationState = "email_verified"
	ActivationInitialized   ActivationState = "initialized"
)

// ActivationRecord per-user activation flags
type ActivationRecord struct {
	UserID        string
	Email         string // из Identity-сервиса, нужен для повторной аутентификации
	DisplayName   string
	EmailVerified bool
	IsInitialized bool // выставляется один раз вместе с password_changed_at

	PasswordChangedAt *time.Time // nil, пока выданный пароль не сменен
	UpdatedAt         time.Time
}

// State derives the activation state from the stored flags.
// Initialized is terminal and wins over the verification flag.
func (a *ActivationRecord) State() ActivationState {
	switch {
	case a.IsInitialized:
		return ActivationInitialized
	case a.EmailVerified:
		return ActivationEmailVerified
	default:
		return ActivationUnverified
	}
}
