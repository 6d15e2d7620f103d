package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LabReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-LabReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-LabReservationService/internal/domain"
	"github.com/m04kA/SMC-LabReservationService/internal/service/reservations"
)

const (
	msgUnauthorized       = "требуется авторизация"
	msgInvalidReservation = "некорректный ID брони"
	msgNotFound           = "бронь не найдена"
	msgForbidden          = "можно отменить только свою бронь"
)

type Handler struct {
	service ReservationService
	logger  Logger
	asAdmin bool
}

// NewHandler отмена брони владельцем
func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// NewAdminHandler отмена любой брони администратором
func NewAdminHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		asAdmin: true,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/cancel
// и PATCH /api/v1/admin/reservations/{reservationId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	reservationID := mux.Vars(r)["reservationId"]

	// Пустой userID отключает проверку владельца
	ownerID := user.ID
	if h.asAdmin {
		ownerID = ""
	}

	err := h.service.Cancel(r.Context(), reservationID, ownerID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidReservation)

		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Reservation not found: reservation_id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Access denied: reservation_id=%s, user_id=%s",
				reservationID, user.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrTransientFailure):
			h.logger.Error("PATCH /reservations/{id}/cancel - Transient failure: reservation_id=%s, error=%v", reservationID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("PATCH /reservations/{id}/cancel - Failed to cancel reservation: reservation_id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/cancel - Reservation cancelled: reservation_id=%s, user_id=%s, admin=%t",
		reservationID, user.ID, h.asAdmin)
	handlers.RespondJSON(w, http.StatusOK, &CancelReservationResponse{
		ID:     reservationID,
		Status: string(domain.ReservationCancelled),
	})
}
