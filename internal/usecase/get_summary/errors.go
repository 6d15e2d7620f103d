package get_summary

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_summary: invalid input data")

	// ErrTransientFailure возвращается при сбоях хранилища
	ErrTransientFailure = errors.New("get_summary: transient failure")
)
