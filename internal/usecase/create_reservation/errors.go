package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrSlotInPast возвращается, когда слот уже закончился
	ErrSlotInPast = errors.New("create_reservation: slot is in the past")

	// ErrSlotAlreadyBooked возвращается, когда на слот уже есть подтвержденная бронь
	ErrSlotAlreadyBooked = errors.New("create_reservation: slot already booked")

	// ErrResourceUnavailable возвращается, когда компьютер на обслуживании или выключен
	ErrResourceUnavailable = errors.New("create_reservation: resource is unavailable")

	// ErrTransientFailure возвращается при сбоях хранилища; запрос можно повторить
	ErrTransientFailure = errors.New("create_reservation: transient failure")
)
