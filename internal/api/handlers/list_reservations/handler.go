package list_reservations

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

// Handle GET /api/v1/admin/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListReservations(r.Context())
	if err != nil {
		if errors.Is(err, admin.ErrTransientFailure) {
			h.logger.Error("GET /admin/reservations - Transient failure: %v", err)
			handlers.RespondServiceUnavailable(w)
			return
		}
		h.logger.Error("GET /admin/reservations - Failed to list reservations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/reservations - Reservations retrieved: count=%d", len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
