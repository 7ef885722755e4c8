package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"notably-be/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func newHealthTestApp() *fiber.App {
	app := fiber.New()
	cfg := &config.Config{}
	cfg.App.Name = "notably-backend"
	cfg.App.Version = "0.1.0"
	cfg.App.Environment = "test"

	NewHealthController(cfg, nil, nil).RegisterRoutes(app)
	return app
}

func getJSON(t *testing.T, app *fiber.App, url string) (*http.Response, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, url, nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	return resp, decodeBody(t, resp)
}

func TestHealthEndpoints(t *testing.T) {
	app := newHealthTestApp()

	t.Run("root welcome", func(t *testing.T) {
		resp, body := getJSON(t, app, "/")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Welcome to notably-backend", body["message"])
		assert.Equal(t, "/health", body["health"])
	})

	t.Run("health", func(t *testing.T) {
		resp, body := getJSON(t, app, "/health")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, "notably-backend", body["service"])
		assert.NotEmpty(t, body["timestamp"])
	})

	t.Run("live", func(t *testing.T) {
		resp, body := getJSON(t, app, "/health/live")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "alive", body["status"])
	})

	t.Run("ready with no configured dependencies", func(t *testing.T) {
		resp, body := getJSON(t, app, "/health/ready")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "ready", body["status"])
	})

	t.Run("info", func(t *testing.T) {
		resp, body := getJSON(t, app, "/info")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "notably-backend", body["name"])
		assert.Equal(t, "test", body["environment"])
		assert.Contains(t, body, "features")
	})
}
