package get_reservation_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	testifymock "github.com/stretchr/testify/mock"

	getReservation "github.com/m04kA/SMC-LabReservationService/internal/api/handlers/get_reservation"
	"github.com/m04kA/SMC-LabReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-LabReservationService/internal/service/reservations"
	"github.com/m04kA/SMC-LabReservationService/internal/service/reservations/models"
	"github.com/m04kA/SMC-LabReservationService/pkg/logger"
)

type MockService struct {
	testifymock.Mock
}

func (m *MockService) GetByID(ctx context.Context, id string, userID string, isAdmin bool) (*models.ReservationResponse, error) {
	args := m.Called(ctx, id, userID, isAdmin)
	resp, _ := args.Get(0).(*models.ReservationResponse)
	return resp, args.Error(1)
}

func newRequest(id string, user *middleware.User) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/reservations/"+id, nil)
	r = mux.SetURLVars(r, map[string]string{"reservationId": id})
	if user != nil {
		r = r.WithContext(middleware.WithUser(r.Context(), user))
	}
	return r
}

func TestHandler_Owner(t *testing.T) {
	svc := new(MockService)
	h := getReservation.NewHandler(svc, logger.NewNop())

	svc.On("GetByID", testifymock.Anything, "r-1", "u-1", false).
		Return(&models.ReservationResponse{ID: "r-1", Status: "confirmed"}, nil)

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest("r-1", &middleware.User{ID: "u-1"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"confirmed"`)
	svc.AssertExpectations(t)
}

func TestHandler_AdminFlag(t *testing.T) {
	svc := new(MockService)
	h := getReservation.NewHandler(svc, logger.NewNop())

	svc.On("GetByID", testifymock.Anything, "r-1", "a-1", true).
		Return(&models.ReservationResponse{ID: "r-1"}, nil)

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest("r-1", &middleware.User{ID: "a-1", Roles: []string{"admin"}}))

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandler_Unauthorized(t *testing.T) {
	svc := new(MockService)
	h := getReservation.NewHandler(svc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest("r-1", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	svc.AssertNotCalled(t, "GetByID", testifymock.Anything, testifymock.Anything, testifymock.Anything, testifymock.Anything)
}

func TestHandler_ErrorMapping(t *testing.T) {
	transient := fmt.Errorf("%w: GetByID - boom", reservations.ErrTransientFailure)
	cases := map[error]int{
		reservations.ErrInvalidInput:        http.StatusBadRequest,
		reservations.ErrAccessDenied:        http.StatusForbidden,
		reservations.ErrReservationNotFound: http.StatusNotFound,
		transient:                           http.StatusServiceUnavailable,
		fmt.Errorf("unexpected"):            http.StatusInternalServerError,
	}

	for svcErr, status := range cases {
		svc := new(MockService)
		h := getReservation.NewHandler(svc, logger.NewNop())
		svc.On("GetByID", testifymock.Anything, "r-1", "u-2", false).Return(nil, svcErr)

		rec := httptest.NewRecorder()
		h.Handle(rec, newRequest("r-1", &middleware.User{ID: "u-2"}))
		assert.Equal(t, status, rec.Code, svcErr.Error())
	}
}
