package update_resource_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LabReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-LabReservationService/internal/service/admin"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "некорректный статус, допустимо: available, maintenance, offline"
	msgResourceNotFound   = "компьютер не найден"
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

// Handle PATCH /api/v1/admin/resources/{resourceId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resourceID := mux.Vars(r)["resourceId"]

	var req UpdateResourceStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/resources/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateResourceStatus(r.Context(), resourceID, req.ToServiceRequest()); err != nil {
		switch {
		case errors.Is(err, admin.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, admin.ErrResourceNotFound):
			h.logger.Warn("PATCH /admin/resources/{id}/status - Resource not found: resource_id=%s", resourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, admin.ErrTransientFailure):
			h.logger.Error("PATCH /admin/resources/{id}/status - Transient failure: resource_id=%s, error=%v", resourceID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("PATCH /admin/resources/{id}/status - Failed to update status: resource_id=%s, error=%v", resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/resources/{id}/status - Status updated: resource_id=%s, status=%s", resourceID, req.Status)
	handlers.RespondJSON(w, http.StatusOK, &UpdateResourceStatusResponse{ID: resourceID, Status: req.Status})
}
