package send_verification

import (
	"context"
)

type ActivationService interface {
	SendVerification(ctx context.Context, userID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
