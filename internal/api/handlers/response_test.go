package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LabReservationService/internal/api/handlers"
)

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		SlotID string `json:"slotId"`
	}

	t.Run("valid body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"slotId":"morning"}`))
		var p payload
		require.NoError(t, handlers.DecodeJSON(r, &p))
		assert.Equal(t, "morning", p.SlotID)
	})

	t.Run("empty body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		var p payload
		assert.ErrorIs(t, handlers.DecodeJSON(r, &p), handlers.ErrEmptyBody)
	})

	t.Run("unknown field", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"slot":"morning"}`))
		var p payload
		assert.Error(t, handlers.DecodeJSON(r, &p))
	})
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	handlers.RespondConflict(rec, "слот уже занят")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusConflict, body.Code)
	assert.Equal(t, "слот уже занят", body.Message)
}

func TestRespondServiceUnavailable(t *testing.T) {
	rec := httptest.NewRecorder()
	handlers.RespondServiceUnavailable(rec)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
