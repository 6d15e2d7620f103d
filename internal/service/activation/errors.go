package activation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrUserNotFound возвращается, когда пользователь неизвестен провайдеру
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailNotVerified возвращается при попытке завершить активацию без подтвержденного email
	ErrEmailNotVerified = errors.New("email is not verified")

	// ErrInvalidVerificationCode возвращается при недействительной ссылке подтверждения
	ErrInvalidVerificationCode = errors.New("invalid or expired verification code")

	// ErrInvalidCredentials возвращается при неверном текущем пароле
	ErrInvalidCredentials = errors.New("invalid current password")

	// ErrReauthenticationRequired возвращается, когда провайдер требует повторный вход
	ErrReauthenticationRequired = errors.New("recent login required")

	// ErrTransientFailure возвращается при временной недоступности хранилища или провайдера
	ErrTransientFailure = errors.New("service: temporarily unavailable")
)
