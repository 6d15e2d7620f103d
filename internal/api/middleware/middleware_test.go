package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LabReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-LabReservationService/pkg/logger"
	"github.com/m04kA/SMC-LabReservationService/pkg/metrics"
)

const secret = "test-secret"

func whoami(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusTeapot)
		return
	}
	_, _ = w.Write([]byte(user.ID))
}

func newRouter() *mux.Router {
	router := mux.NewRouter()
	protected := router.PathPrefix("/api").Subrouter()
	protected.Use(middleware.Auth(secret, logger.NewNop()))
	protected.HandleFunc("/me", whoami).Methods(http.MethodGet)

	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireRole("admin"))
	admin.HandleFunc("/me", whoami).Methods(http.MethodGet)
	return router
}

func request(t *testing.T, router http.Handler, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuth(t *testing.T) {
	router := newRouter()

	student, err := middleware.NewToken(secret, middleware.User{ID: "u-1", Name: "Kim", Roles: []string{"student"}}, time.Hour)
	require.NoError(t, err)
	admin, err := middleware.NewToken(secret, middleware.User{ID: "a-1", Roles: []string{"admin"}}, time.Hour)
	require.NoError(t, err)
	expired, err := middleware.NewToken(secret, middleware.User{ID: "u-1"}, -time.Minute)
	require.NoError(t, err)
	foreign, err := middleware.NewToken("other-secret", middleware.User{ID: "u-1"}, time.Hour)
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		rec := request(t, router, "/api/me", student)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "u-1", rec.Body.String())
	})

	t.Run("missing token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, request(t, router, "/api/me", "").Code)
	})

	t.Run("expired token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, request(t, router, "/api/me", expired).Code)
	})

	t.Run("wrong signature", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, request(t, router, "/api/me", foreign).Code)
	})

	t.Run("admin route rejects student", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, request(t, router, "/api/admin/me", student).Code)
	})

	t.Run("admin route accepts admin", func(t *testing.T) {
		rec := request(t, router, "/api/admin/me", admin)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "a-1", rec.Body.String())
	})
}

func TestParseToken(t *testing.T) {
	token, err := middleware.NewToken(secret, middleware.User{ID: "u-1", Email: "kim@lab.edu", Roles: []string{"student"}}, time.Hour)
	require.NoError(t, err)

	claims, err := middleware.ParseToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.Subject)
	assert.Equal(t, "kim@lab.edu", claims.Email)

	_, err = middleware.ParseToken(secret, "not-a-token")
	assert.ErrorIs(t, err, middleware.ErrInvalidToken)
}

func TestMetrics(t *testing.T) {
	m := metrics.NewWithRegistry("test", prometheus.NewRegistry())

	router := mux.NewRouter()
	router.Use(middleware.Metrics(m))
	router.HandleFunc("/resources/{resourceId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for i := 0; i < 3; i++ {
		request(t, router, "/resources/pc-0"+string(rune('1'+i)), "")
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/resources/{resourceId}", "404")))
}
