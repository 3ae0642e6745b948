package gateway

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/proxy"

	"github.com/spec-kit/bookstore/internal/config"
	apperrors "github.com/spec-kit/bookstore/pkg/util"
)

// RegisterRoutes maps path prefixes to upstream services. Everything the
// authenticator lets through is forwarded verbatim, identity headers
// included.
func RegisterRoutes(app *fiber.App, cfg config.GatewayConfig) {
	app.All("/api/auth/*", forward(cfg.AuthUpstream))
	app.All("/api/user/*", forward(cfg.UserUpstream))
	app.All("/customers/*", forward(cfg.UserUpstream))
	app.All("/api/books/*", forward(cfg.BookUpstream))
	app.All("/api/cart/*", forward(cfg.CartUpstream))
}

func forward(upstream string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := proxy.Do(c, upstream+c.OriginalURL()); err != nil {
			return apperrors.NewDownstreamUnavailable("upstream service", err)
		}
		// The upstream response passes through as-is.
		c.Response().Header.Del(fiber.HeaderServer)
		return nil
	}
}
