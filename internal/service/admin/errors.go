package admin

import "errors"

var (
	// ErrResourceNotFound возвращается, когда компьютер не найден
	ErrResourceNotFound = errors.New("resource not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrTransientFailure возвращается при временной недоступности хранилища
	ErrTransientFailure = errors.New("service: store temporarily unavailable")
)
