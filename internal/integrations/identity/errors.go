package identity

import "errors"

var (
	// ErrInvalidCredentials неверный текущий пароль при повторной аутентификации
	ErrInvalidCredentials = errors.New("identity client: invalid credentials")

	// ErrRequiresRecentLogin провайдер требует свежий вход перед сменой пароля
	ErrRequiresRecentLogin = errors.New("identity client: requires recent login")

	// ErrInvalidCode ссылка подтверждения email недействительна или истекла
	ErrInvalidCode = errors.New("identity client: invalid or expired verification code")

	// ErrWeakPassword новый пароль отклонен политикой провайдера
	ErrWeakPassword = errors.New("identity client: password rejected by policy")

	// ErrUserNotFound пользователь не найден у провайдера
	ErrUserNotFound = errors.New("identity client: user not found")

	// ErrInternal возвращается при внутренних ошибках клиента (сеть, таймаут)
	ErrInternal = errors.New("identity client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("identity client: invalid response")
)
