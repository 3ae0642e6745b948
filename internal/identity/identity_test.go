package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/bookstore/pkg/util"
)

func newTestApp() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"error": domainErr.Message})
		},
	})
	app.Get("/whoami", Require(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"userId": UserID(c)})
	})
	return app
}

func TestRequireAcceptsGatewayHeader(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(HeaderUserID, "42")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRejectsMissingHeader(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRejectsMalformedHeader(t *testing.T) {
	app := newTestApp()

	for _, raw := range []string{"abc", "-5", "0", "4.2", "42abc"} {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(HeaderUserID, raw)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header %q", raw)
	}
}

func TestFromRequestParsesValue(t *testing.T) {
	app := fiber.New()
	var got int64
	var gotErr error
	app.Get("/", func(c *fiber.Ctx) error {
		got, gotErr = FromRequest(c)
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderUserID, "1234567890123")
	_, err := app.Test(req)
	require.NoError(t, err)
	require.NoError(t, gotErr)
	assert.Equal(t, int64(1234567890123), got)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "42", Format(42))
}
