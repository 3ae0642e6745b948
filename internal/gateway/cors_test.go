package gateway

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORSPreflightShortCircuits(t *testing.T) {
	app := fiber.New()
	app.Use(CORS("http://localhost:3000"))
	hit := false
	app.All("/*", func(c *fiber.Ctx) error {
		hit = true
		return c.SendStatus(http.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodOptions, "/api/cart/add", nil))
	require.NoError(t, err)

	// Preflights answer 200, not 204, and never reach the next handler.
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, hit)
	assert.Equal(t, "http://localhost:3000", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", resp.Header.Get(fiber.HeaderAccessControlAllowCredentials))
}

func TestCORSPassesNonPreflight(t *testing.T) {
	app := fiber.New()
	app.Use(CORS("*"))
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
}
