package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Auth.AccessTokenTTLMinutes)
	assert.Contains(t, cfg.Gateway.PublicPaths, "/api/auth/sign-in")
	assert.Contains(t, cfg.Gateway.PublicPaths, "/api/books/paged")
	assert.Contains(t, cfg.Gateway.ProtectedPaths, "/api/cart/")
	assert.Contains(t, cfg.Gateway.ProtectedPaths, "/api/orders/")
	assert.Contains(t, cfg.Gateway.ProtectedPaths, "/customers/")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "15")
	t.Setenv("GATEWAY_PROTECTED_PATHS", "/api/cart/, /api/wishlist/")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.Auth.AccessTokenTTLMinutes)
	assert.Equal(t, []string{"/api/cart/", "/api/wishlist/"}, cfg.Gateway.ProtectedPaths)
}

func TestRequireJWTSecret(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.RequireJWTSecret())

	cfg.Auth.JWTSecret = "   "
	assert.Error(t, cfg.RequireJWTSecret())

	cfg.Auth.JWTSecret = "secret"
	assert.NoError(t, cfg.RequireJWTSecret())
}

func TestAppAddr(t *testing.T) {
	app := AppConfig{Host: "0.0.0.0", Port: "8080"}
	assert.Equal(t, "0.0.0.0:8080", app.Addr())
}
