package gateway

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// CORS writes the fixed cross-origin policy and short-circuits preflights
// with 200 before any of them can reach the authenticator.
func CORS(allowOrigin string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAccessControlAllowOrigin, allowOrigin)
		c.Set(fiber.HeaderAccessControlAllowMethods, "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Set(fiber.HeaderAccessControlAllowHeaders, "Authorization, Content-Type, Accept, Origin, X-Requested-With")
		c.Set(fiber.HeaderAccessControlAllowCredentials, "true")
		c.Set(fiber.HeaderAccessControlMaxAge, "3600")

		if c.Method() == http.MethodOptions {
			return c.SendStatus(http.StatusOK)
		}
		return c.Next()
	}
}
