package activation_status

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LabReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-LabReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-LabReservationService/internal/service/activation"
)

const (
	msgUnauthorized = "требуется авторизация"
	msgUserNotFound = "пользователь не найден"
)

type Handler struct {
	service ActivationService
	logger  Logger
}

func NewHandler(service ActivationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/activation/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.Status(r.Context(), user.ID)
	if err != nil {
		switch {
		case errors.Is(err, activation.ErrUserNotFound):
			h.logger.Warn("GET /activation/status - User not found: user_id=%s", user.ID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, activation.ErrTransientFailure):
			h.logger.Error("GET /activation/status - Transient failure: user_id=%s, error=%v", user.ID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /activation/status - Failed to get status: user_id=%s, error=%v", user.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
