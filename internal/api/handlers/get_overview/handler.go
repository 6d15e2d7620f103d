package get_overview

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LabReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-LabReservationService/internal/service/admin"
)

type Handler struct {
	service AdminService
	logger  Logger
}

func NewHandler(service AdminService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/overview
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Overview(r.Context())
	if err != nil {
		if errors.Is(err, admin.ErrTransientFailure) {
			h.logger.Error("GET /admin/overview - Transient failure: %v", err)
			handlers.RespondServiceUnavailable(w)
			return
		}
		h.logger.Error("GET /admin/overview - Failed to build overview: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
