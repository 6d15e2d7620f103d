package account

import "errors"

var (
	// ErrAccountNotFound возвращается, когда запись активации не найдена
	ErrAccountNotFound = errors.New("account.repository: activation record not found")

	// ErrAlreadyInitialized возвращается, когда инициализация уже была выполнена (или записи нет)
	ErrAlreadyInitialized = errors.New("account.repository: account already initialized")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("account.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("account.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("account.repository: failed to scan row")
)
