package confirm_email

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LabReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-LabReservationService/internal/service/activation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingCode        = "код подтверждения обязателен"
	msgInvalidCode        = "ссылка подтверждения недействительна или устарела"
	msgUserNotFound       = "пользователь не найден"
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

// Handle POST /api/v1/activation/verify
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ConfirmEmailRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /activation/verify - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ConfirmEmail(r.Context(), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, activation.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingCode)

		case errors.Is(err, activation.ErrInvalidVerificationCode):
			h.logger.Warn("POST /activation/verify - Invalid code")
			handlers.RespondBadRequest(w, msgInvalidCode)

		case errors.Is(err, activation.ErrUserNotFound):
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, activation.ErrTransientFailure):
			h.logger.Error("POST /activation/verify - Transient failure: %v", err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("POST /activation/verify - Failed to confirm email: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /activation/verify - Email confirmed: user_id=%s", result.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
