// AngelaMos | 2026
// server_test.go

package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/rental-api/internal/config"
	"github.com/carterperez-dev/rental-api/internal/health"
)

func TestServer_ShutdownFlipsHealth(t *testing.T) {
	hh := health.NewHandler()
	srv := New(Config{
		ServerConfig: config.ServerConfig{
			Host:         "127.0.0.1",
			Port:         0,
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
		HealthHandler: hh,
	})
	hh.RegisterRoutes(srv.Router())

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, srv.Shutdown(context.Background(), 0))

	rec = httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestServer_ShutdownRespectsContext(t *testing.T) {
	srv := New(Config{ServerConfig: config.ServerConfig{Host: "127.0.0.1"}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := srv.Shutdown(ctx, time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestServer_StartReportsReady(t *testing.T) {
	hh := health.NewHandler()
	srv := New(Config{
		ServerConfig: config.ServerConfig{
			Host:         "127.0.0.1",
			Port:         0,
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
		HealthHandler: hh,
	})
	hh.RegisterRoutes(srv.Router())

	readyz := func() int {
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		return rec.Code
	}

	assert.Equal(t, http.StatusServiceUnavailable, readyz())

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	require.Eventually(t, func() bool {
		return readyz() == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, srv.Shutdown(context.Background(), 0))
	assert.Equal(t, http.StatusServiceUnavailable, readyz())
	assert.NoError(t, <-errCh)
}
