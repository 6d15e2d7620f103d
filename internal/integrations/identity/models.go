package identity

// Session подтверждение недавнего входа
type Session struct {
	UserID       string `json:"userId"`
	SessionToken string `json:"sessionToken"`
}

// VerificationState состояние подтверждения email у провайдера
type VerificationState struct {
	UserID        string `json:"userId"`
	Email         string `json:"email"`
	DisplayName   string `json:"displayName"`
	EmailVerified bool   `json:"emailVerified"`
}

type reauthenticateRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updatePasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

type confirmVerificationRequest struct {
	Code string `json:"code"`
}

type confirmVerificationResponse struct {
	UserID string `json:"userId"`
}

// ErrorResponse модель ошибки от Identity-сервиса
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Коды ошибок провайдера
const (
	codeInvalidPassword     = "INVALID_PASSWORD"
	codeRequiresRecentLogin = "REQUIRES_RECENT_LOGIN"
	codeUserNotFound        = "USER_NOT_FOUND"
	codeInvalidCode         = "INVALID_CODE"
	codeWeakPassword        = "WEAK_PASSWORD"
)
