package gateway

import (
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/bookstore/internal/auth"
	"github.com/spec-kit/bookstore/internal/identity"
	"github.com/spec-kit/bookstore/internal/observability"
)

const identityKey = "gateway_identity"

// Identity is the authenticated request context derived from a verified
// token. It lives for one request and is never persisted; downstream services
// only ever see the plain header form.
type Identity struct {
	Subject string
	UserID  int64
	Roles   []string
}

// Authenticator intercepts every inbound request at the gateway boundary. It
// classifies the path, verifies tokens on protected paths and rewrites the
// forwarded request with the identity headers. One linear pass per request,
// two terminal outcomes: forward or reject with 401.
type Authenticator struct {
	tokens  *auth.TokenManager
	policy  *auth.RoutePolicy
	logger  *zap.Logger
	metrics *observability.Metrics
	now     func() time.Time
}

// NewAuthenticator builds the gateway authenticator.
func NewAuthenticator(tokens *auth.TokenManager, policy *auth.RoutePolicy, logger *zap.Logger, metrics *observability.Metrics) *Authenticator {
	return &Authenticator{
		tokens:  tokens,
		policy:  policy,
		logger:  logger,
		metrics: metrics,
		now:     time.Now,
	}
}

// Handle runs the per-request state machine.
func (a *Authenticator) Handle(c *fiber.Ctx) error {
	// A client-supplied UserId header is never trusted; only the gateway
	// may set it, and only after verification.
	c.Request().Header.Del(identity.HeaderUserID)

	if c.Method() == http.MethodOptions {
		return c.Next()
	}

	path := c.Path()
	switch a.policy.Classify(c.Method(), path) {
	case auth.Public, auth.Permissive:
		return c.Next()
	case auth.RequiresIdentity:
		return a.authenticate(c, path)
	}
	return c.Next()
}

func (a *Authenticator) authenticate(c *fiber.Ctx, path string) error {
	token := bearerToken(c.Get(fiber.HeaderAuthorization))
	if token == "" {
		a.metrics.RecordAuthReject(path, "missing-token")
		return reject(c, "missing token")
	}

	claims, err := a.tokens.Verify(token, a.now())
	if err != nil {
		// The specific kind stays in the logs; clients get one generic
		// message for every verification failure.
		a.logger.Warn("token rejected",
			zap.String("path", path),
			zap.String("kind", err.Error()),
		)
		a.metrics.RecordAuthReject(path, err.Error())
		return reject(c, "invalid or expired token")
	}

	if claims.UserID <= 0 {
		a.metrics.RecordAuthReject(path, "malformed-identity")
		return reject(c, "malformed identity")
	}

	userID := int64(claims.UserID)
	roles := auth.NormalizeRoles(claims.Role)
	c.Locals(identityKey, &Identity{
		Subject: claims.Subject,
		UserID:  userID,
		Roles:   roles,
	})

	c.Request().Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	c.Request().Header.Set(identity.HeaderUserID, identity.Format(userID))

	a.logger.Info("user authenticated",
		zap.String("subject", claims.Subject),
		zap.Int64("user_id", userID),
	)
	return c.Next()
}

// IdentityFromContext retrieves the authenticated identity, if the request
// passed through verification.
func IdentityFromContext(c *fiber.Ctx) (*Identity, bool) {
	ident, ok := c.Locals(identityKey).(*Identity)
	return ident, ok
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// reject is the terminal failure outcome: a JSON error body and 401, never a
// forward to the next hop.
func reject(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": message})
}
