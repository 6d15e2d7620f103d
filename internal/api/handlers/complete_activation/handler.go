package complete_activation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LabReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-LabReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-LabReservationService/internal/service/activation"
)

const (
	msgUnauthorized          = "требуется авторизация"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidPassword       = "пароль должен быть не короче 8 символов и совпадать с подтверждением"
	msgEmailNotVerified      = "сначала подтвердите email"
	msgInvalidCredentials    = "текущий пароль неверен"
	msgReauthenticationError = "сессия устарела, войдите заново и повторите смену пароля"
	msgUserNotFound          = "пользователь не найден"
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

// Handle POST /api/v1/activation/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CompleteActivationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /activation/complete - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CompleteInitialization(r.Context(), req.ToServiceRequest(user.ID))
	if err != nil {
		switch {
		case errors.Is(err, activation.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidPassword)

		case errors.Is(err, activation.ErrEmailNotVerified):
			h.logger.Warn("POST /activation/complete - Email not verified: user_id=%s", user.ID)
			handlers.RespondForbidden(w, msgEmailNotVerified)

		case errors.Is(err, activation.ErrInvalidCredentials):
			h.logger.Warn("POST /activation/complete - Invalid credentials: user_id=%s", user.ID)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		case errors.Is(err, activation.ErrReauthenticationRequired):
			h.logger.Warn("POST /activation/complete - Reauthentication required: user_id=%s", user.ID)
			handlers.RespondUnauthorized(w, msgReauthenticationError)

		case errors.Is(err, activation.ErrUserNotFound):
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, activation.ErrTransientFailure):
			h.logger.Error("POST /activation/complete - Transient failure: user_id=%s, error=%v", user.ID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("POST /activation/complete - Failed to complete activation: user_id=%s, error=%v", user.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /activation/complete - Activation completed: user_id=%s", user.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
