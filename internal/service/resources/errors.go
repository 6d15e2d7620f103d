package resources

import "errors"

var (
	// ErrTransientFailure возвращается при временной недоступности хранилища
	ErrTransientFailure = errors.New("service: store temporarily unavailable")
)
