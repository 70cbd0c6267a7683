package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"parcel-tracker/internal/core/config"
	"parcel-tracker/internal/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

// TestNew verifies that New creates a Server with the correct configuration.
func TestNew(t *testing.T) {
	cfg := &config.AppConfig{
		ServerPort: 8080,
	}

	logger.Init("development", "debug")
	srv := New(cfg)

	require.NotNil(t, srv)
	assert.NotNil(t, srv.App)
	assert.Equal(t, cfg, srv.cfg)
}

// TestServer_Run_Error verifies that Run returns an error when binding fails (e.g., privileged port).
func TestServer_Run_Error(t *testing.T) {
	// Privileged port 1 should fail
	cfg := &config.AppConfig{
		ServerPort: 1,
	}
	logger.Init("development", "error")

	srv := New(cfg)

	errCh := make(chan error)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err := <-errCh:
		assert.Error(t, err)
	case <-time.After(1 * time.Second):
		srv.Shutdown(time.Second)
		t.Log("Server unexpectedly started or timed out on Error test")
	}
}

func TestServer_Health(t *testing.T) {
	logger.Init("development", "error")

	t.Run("NoChecks", func(t *testing.T) {
		srv := New(&config.AppConfig{})

		resp, err := srv.App.Test(httptest.NewRequest("GET", "/healthz", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get("X-Ray-ID"))
	})

	t.Run("AllHealthy", func(t *testing.T) {
		srv := New(&config.AppConfig{})
		srv.AddHealthCheck("postgres", pingFunc(func(context.Context) error { return nil }))
		srv.AddHealthCheck("redis", pingFunc(func(context.Context) error { return nil }))

		resp, err := srv.App.Test(httptest.NewRequest("GET", "/healthz", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body HealthResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "ok", body.Status)
		assert.Equal(t, map[string]string{"postgres": "ok", "redis": "ok"}, body.Checks)
	})

	t.Run("Degraded", func(t *testing.T) {
		srv := New(&config.AppConfig{})
		srv.AddHealthCheck("postgres", pingFunc(func(context.Context) error { return nil }))
		srv.AddHealthCheck("redis", pingFunc(func(context.Context) error { return errors.New("connection refused") }))

		resp, err := srv.App.Test(httptest.NewRequest("GET", "/healthz", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)

		var body HealthResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "degraded", body.Status)
		assert.Equal(t, "connection refused", body.Checks["redis"])
		assert.Equal(t, "ok", body.Checks["postgres"])
	})
}

func TestServer_Metrics(t *testing.T) {
	logger.Init("development", "error")
	srv := New(&config.AppConfig{})

	resp, err := srv.App.Test(httptest.NewRequest("GET", "/metrics", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "go_goroutines")
}
