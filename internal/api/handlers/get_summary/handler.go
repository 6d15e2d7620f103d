package get_summary

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LabReservationService/internal/api/handlers"
	getSummary "github.com/m04kA/SMC-LabReservationService/internal/usecase/get_summary"
)

const msgInvalidResourceID = "некорректный ID компьютера"

type Handler struct {
	useCase GetSummaryUseCase
	logger  Logger
}

func NewHandler(useCase GetSummaryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources/{resourceId}/summary
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resourceID := mux.Vars(r)["resourceId"]

	result, err := h.useCase.Execute(r.Context(), &getSummary.Request{ResourceID: resourceID})
	if err != nil {
		switch {
		case errors.Is(err, getSummary.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidResourceID)

		case errors.Is(err, getSummary.ErrTransientFailure):
			h.logger.Error("GET /resources/{id}/summary - Transient failure: resource_id=%s, error=%v", resourceID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /resources/{id}/summary - Failed to build summary: resource_id=%s, error=%v", resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
