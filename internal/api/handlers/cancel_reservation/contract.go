package cancel_reservation

import (
	"context"
)

type ReservationService interface {
	Cancel(ctx context.Context, id string, userID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
