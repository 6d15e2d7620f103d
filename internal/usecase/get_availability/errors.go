package get_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrResourceNotFound возвращается, когда компьютер не найден в инвентаре
	ErrResourceNotFound = errors.New("get_availability: resource not found")

	// ErrTransientFailure возвращается при сбоях хранилища
	ErrTransientFailure = errors.New("get_availability: transient failure")
)
