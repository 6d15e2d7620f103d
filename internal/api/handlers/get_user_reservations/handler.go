package get_user_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LabReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-LabReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-LabReservationService/internal/service/reservations"
)

const msgUnauthorized = "требуется авторизация"

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/me/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.ListByUser(r.Context(), user.ID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, reservations.ErrTransientFailure):
			h.logger.Error("GET /users/me/reservations - Transient failure: user_id=%s, error=%v", user.ID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /users/me/reservations - Failed to list reservations: user_id=%s, error=%v", user.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/me/reservations - Reservations retrieved: user_id=%s, count=%d", user.ID, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
