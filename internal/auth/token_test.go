package auth

import (
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("round-trip-secret", 30)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	token, err := tm.Issue("0987654321", 42, []string{"ROLE_USER"}, now)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Verify(token, now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "0987654321", claims.Subject)
	assert.Equal(t, int64(42), int64(claims.UserID))
	assert.Equal(t, []string{"ROLE_USER"}, NormalizeRoles(claims.Role))
	assert.Equal(t, now.Add(30*time.Minute).Unix(), claims.ExpiresAt.Unix())
}

func TestTokenVerifyIsRepeatable(t *testing.T) {
	tm := NewTokenManager("repeat-secret", 30)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	token, err := tm.Issue("user@example.com", 7, nil, now)
	require.NoError(t, err)

	first, err := tm.Verify(token, now.Add(time.Minute))
	require.NoError(t, err)
	second, err := tm.Verify(token, now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, first.UserID, second.UserID)
	assert.Equal(t, first.Subject, second.Subject)
}

func TestTokenExpired(t *testing.T) {
	tm := NewTokenManager("expiry-secret", 30)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	token, err := tm.Issue("0987654321", 42, []string{"ROLE_USER"}, now)
	require.NoError(t, err)

	claims, err := tm.Verify(token, now.Add(31*time.Minute))
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenSignatureTamper(t *testing.T) {
	tm := NewTokenManager("signing-secret", 30)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	token, err := tm.Issue("0987654321", 42, nil, now)
	require.NoError(t, err)

	// Corrupt the first character of the signature segment.
	idx := strings.LastIndex(token, ".") + 1
	replacement := "A"
	if token[idx] == 'A' {
		replacement = "B"
	}
	flipped := token[:idx] + replacement + token[idx+1:]

	claims, err := tm.Verify(flipped, now.Add(time.Minute))
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrTokenSignature)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenManager("issuer-secret", 30)
	verifier := NewTokenManager("other-secret", 30)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	token, err := issuer.Issue("0987654321", 42, nil, now)
	require.NoError(t, err)

	claims, err := verifier.Verify(token, now.Add(time.Minute))
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrTokenSignature)
}

func TestTokenMalformed(t *testing.T) {
	tm := NewTokenManager("malformed-secret", 30)
	now := time.Now()

	for _, raw := range []string{"", "not-a-token", "only.two", "a.b.c.d"} {
		claims, err := tm.Verify(raw, now)
		assert.Nil(t, claims, "input %q", raw)
		assert.ErrorIs(t, err, ErrTokenMalformed, "input %q", raw)
	}
}

func TestTokenNumericStringUserID(t *testing.T) {
	secret := "string-id-secret"
	tm := NewTokenManager(secret, 30)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	token := signWithClaims(t, secret, jwt.MapClaims{
		"sub":    "0987654321",
		"userId": "42",
		"exp":    now.Add(30 * time.Minute).Unix(),
	})

	claims, err := tm.Verify(token, now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(42), int64(claims.UserID))
}

func TestTokenNonNumericUserIDDecodesToZero(t *testing.T) {
	secret := "garbage-id-secret"
	tm := NewTokenManager(secret, 30)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	token := signWithClaims(t, secret, jwt.MapClaims{
		"sub":    "0987654321",
		"userId": "not-a-number",
		"exp":    now.Add(30 * time.Minute).Unix(),
	})

	claims, err := tm.Verify(token, now.Add(time.Minute))
	require.NoError(t, err)
	assert.Zero(t, int64(claims.UserID))
}

func signWithClaims(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestTokenDefaultTTL(t *testing.T) {
	tm := NewTokenManager("ttl-secret", 0)
	assert.Equal(t, 30*time.Minute, tm.TTL())
}
