package send_verification

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

// Handle POST /api/v1/activation/verification-email
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	if err := h.service.SendVerification(r.Context(), user.ID); err != nil {
		switch {
		case errors.Is(err, activation.ErrUserNotFound):
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, activation.ErrTransientFailure):
			h.logger.Error("POST /activation/verification-email - Transient failure: user_id=%s, error=%v", user.ID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("POST /activation/verification-email - Failed to send: user_id=%s, error=%v", user.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /activation/verification-email - Accepted: user_id=%s", user.ID)
	handlers.RespondJSON(w, http.StatusAccepted, nil)
}
