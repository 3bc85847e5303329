// AngelaMos | 2026
// handler_test.go

package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

var (
	healthy   = pingFunc(func(context.Context) error { return nil })
	unhealthy = pingFunc(func(context.Context) error { return errors.New("connection refused") })
)

func get(h *Handler, path string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestLiveness(t *testing.T) {
	h := NewHandler()

	assert.Equal(t, http.StatusOK, get(h, "/healthz").Code)
	assert.Equal(t, http.StatusOK, get(h, "/livez").Code)

	h.SetShutdown(true)
	rec := get(h, "/healthz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "shutting_down")
}

func TestReadiness_AllHealthy(t *testing.T) {
	h := NewHandler(
		Dependency{Name: "database", Checker: healthy},
		Dependency{Name: "redis", Checker: healthy},
	)
	h.SetReady(true)

	rec := get(h, "/readyz")
	require.Equal(t, http.StatusOK, rec.Code)

	var body ReadinessResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "ok", body.Status)
	require.Len(t, body.Checks, 2)
	assert.Equal(t, "database", body.Checks[0].Name)
	assert.Equal(t, "redis", body.Checks[1].Name)
}

func TestReadiness_Degraded(t *testing.T) {
	h := NewHandler(
		Dependency{Name: "database", Checker: healthy},
		Dependency{Name: "redis", Checker: unhealthy},
		Dependency{Name: "queue"},
	)
	h.SetReady(true)

	rec := get(h, "/readyz")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body ReadinessResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "degraded", body.Status)
	assert.True(t, body.Checks[0].Healthy)
	assert.False(t, body.Checks[1].Healthy)
	assert.Equal(t, "ping failed", body.Checks[1].Message)
	assert.NotContains(t, rec.Body.String(), "connection refused")
	assert.Equal(t, "queue checker not configured", body.Checks[2].Message)
}

func TestReadiness_NotReady(t *testing.T) {
	h := NewHandler(Dependency{Name: "database", Checker: healthy})

	rec := get(h, "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_ready")

	h.SetReady(true)
	assert.Equal(t, http.StatusOK, get(h, "/readyz").Code)

	h.SetReady(false)
	assert.Equal(t, http.StatusServiceUnavailable, get(h, "/readyz").Code)
}
