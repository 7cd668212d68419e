package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oncall-relay/oncall-relay/internal/config"
)

func newAuthTestApp() *fiber.App {
	cfg := &config.Config{
		Webserver: config.Webserver{Port: 8080, APIKey: "sekret"},
	}

	app := fiber.New()
	app.Use(APIKeyMiddleware(cfg))

	app.Post("/api/v1/event", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get(CheckAlivePath, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	return app
}

func TestAPIKeyMiddleware(t *testing.T) {
	app := newAuthTestApp()

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid key", header: "Bearer sekret", wantStatus: http.StatusOK},
		{name: "wrong key", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic sekret", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/event", nil)
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestAPIKeyMiddlewareSkipsProbe(t *testing.T) {
	app := newAuthTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, CheckAlivePath, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
