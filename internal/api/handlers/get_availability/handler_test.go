package get_availability_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	testifymock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	getAvailabilityHandler "github.com/m04kA/SMC-LabReservationService/internal/api/handlers/get_availability"
	getAvailability "github.com/m04kA/SMC-LabReservationService/internal/usecase/get_availability"
	"github.com/m04kA/SMC-LabReservationService/pkg/logger"
)

type MockUseCase struct {
	testifymock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*getAvailability.Response)
	return resp, args.Error(1)
}

func serve(h *getAvailabilityHandler.Handler, url string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/resources/{resourceId}/availability", h.Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestHandler(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		uc := new(MockUseCase)
		h := getAvailabilityHandler.NewHandler(uc, logger.NewNop())

		uc.On("Execute", testifymock.Anything, &getAvailability.Request{ResourceID: "pc-01", Date: "2026-10-21"}).
			Return(&getAvailability.Response{
				ResourceID:     "pc-01",
				ResourceName:   "Lab PC 01",
				ResourceStatus: "available",
				Date:           "2026-10-21",
				Slots: []getAvailability.SlotView{
					{SlotID: "morning", Label: "Morning (09:00 - 12:00)", StartHour: 9, EndHour: 12, IsBooked: true},
				},
			}, nil)

		rec := serve(h, "/resources/pc-01/availability?date=2026-10-21")
		require.Equal(t, http.StatusOK, rec.Code)

		var body getAvailabilityHandler.AvailabilityResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Slots, 1)
		assert.True(t, body.Slots[0].IsBooked)
		assert.False(t, body.Slots[0].Selectable)
	})

	t.Run("missing date", func(t *testing.T) {
		uc := new(MockUseCase)
		rec := serve(getAvailabilityHandler.NewHandler(uc, logger.NewNop()), "/resources/pc-01/availability")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		uc.AssertNotCalled(t, "Execute", testifymock.Anything, testifymock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		uc := new(MockUseCase)
		uc.On("Execute", testifymock.Anything, testifymock.Anything).Return(nil, getAvailability.ErrResourceNotFound)

		rec := serve(getAvailabilityHandler.NewHandler(uc, logger.NewNop()), "/resources/pc-99/availability?date=2026-10-21")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
