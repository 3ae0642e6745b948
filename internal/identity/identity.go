// Package identity implements the downstream side of the gateway trust
// contract. Internal services never re-verify the bearer token; they read the
// numeric UserId header the gateway injected and use it only to scope data
// access. The header is trustworthy only on the internal network behind the
// gateway — these services must not be reachable directly from outside.
package identity

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/bookstore/pkg/util"
)

// HeaderUserID is the header the gateway sets after verifying a token.
const HeaderUserID = "UserId"

// FromRequest extracts the authenticated user id propagated by the gateway.
// A missing header means no authenticated user and a malformed value is
// rejected outright; neither ever falls back to a default id.
func FromRequest(c *fiber.Ctx) (int64, error) {
	raw := c.Get(HeaderUserID)
	if raw == "" {
		return 0, apperrors.NewUnauthorized("missing user identity")
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID <= 0 {
		return 0, apperrors.NewUnauthorized("malformed user identity")
	}
	return userID, nil
}

// Require wraps FromRequest as middleware, storing the id for handlers.
func Require() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := FromRequest(c)
		if err != nil {
			return err
		}
		c.Locals(localsKey, userID)
		return c.Next()
	}
}

const localsKey = "identity_user_id"

// UserID returns the id stored by Require.
func UserID(c *fiber.Ctx) int64 {
	if id, ok := c.Locals(localsKey).(int64); ok {
		return id
	}
	return 0
}

// Format renders a user id the way the gateway writes the header.
func Format(userID int64) string {
	return strconv.FormatInt(userID, 10)
}
