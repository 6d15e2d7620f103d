package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LabReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-LabReservationService/internal/api/middleware"
	createReservation "github.com/m04kA/SMC-LabReservationService/internal/usecase/create_reservation"
)

const (
	msgUnauthorized        = "требуется авторизация"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidInput        = "некорректные данные брони: нужны resourceId, date (YYYY-MM-DD) и slotId из каталога"
	msgSlotInPast          = "выбранный слот уже прошел"
	msgSlotAlreadyBooked   = "этот слот только что заняли, выберите другой"
	msgResourceUnavailable = "компьютер недоступен для бронирования"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	// Декодируем body
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(user))
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: user_id=%s, error=%v", user.ID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createReservation.ErrSlotInPast):
			h.logger.Warn("POST /reservations - Slot in past: user_id=%s, date=%s, slot=%s", user.ID, req.Date, req.SlotID)
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, createReservation.ErrSlotAlreadyBooked):
			h.logger.Warn("POST /reservations - Slot already booked: resource_id=%s, date=%s, slot=%s",
				req.ResourceID, req.Date, req.SlotID)
			handlers.RespondConflict(w, msgSlotAlreadyBooked)

		case errors.Is(err, createReservation.ErrResourceUnavailable):
			h.logger.Warn("POST /reservations - Resource unavailable: resource_id=%s", req.ResourceID)
			handlers.RespondConflict(w, msgResourceUnavailable)

		case errors.Is(err, createReservation.ErrTransientFailure):
			h.logger.Error("POST /reservations - Transient failure: user_id=%s, error=%v", user.ID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%s, error=%v", user.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%s, resource_id=%s, date=%s, slot=%s, user_id=%s",
		result.ID, result.ResourceID, result.Date, result.SlotID, user.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
