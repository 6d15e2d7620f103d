package activation

import (
	"context"

	"github.com/m04kA/SMC-LabReservationService/internal/domain"
	"github.com/m04kA/SMC-LabReservationService/internal/integrations/identity"
)

// AccountRepository интерфейс репозитория флагов активации
type AccountRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.ActivationRecord, error)
	Create(ctx context.Context, rec *domain.ActivationRecord) error
	MarkEmailVerified(ctx context.Context, userID string) error
	MarkInitialized(ctx context.Context, userID string) (*domain.ActivationRecord, error)
}

// IdentityClient интерфейс клиента провайдера учетных записей
type IdentityClient interface {
	Reauthenticate(ctx context.Context, email, password string) (*identity.Session, error)
	UpdatePassword(ctx context.Context, userID, sessionToken, newPassword string) error
	SendEmailVerification(ctx context.Context, userID string) error
	ConfirmEmailVerification(ctx context.Context, code string) (string, error)
	GetVerificationState(ctx context.Context, userID string) (*identity.VerificationState, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
