package auth

import (
	"errors"
	"strconv"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Verification failure kinds. Verify reports exactly one of these, checked in
// order: structure, then signature, then expiry.
var (
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenSignature = errors.New("token signature invalid")
	ErrTokenExpired   = errors.New("token expired")
)

// TokenManager issues and verifies signed identity tokens. The secret is the
// single value shared between the issuer and every verifier; instances are
// read-only after construction and safe for concurrent use.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a manager with the given signing secret. Tokens live
// for ttlMinutes from issuance; 30 minutes when unset.
func NewTokenManager(secret string, ttlMinutes int) *TokenManager {
	if ttlMinutes <= 0 {
		ttlMinutes = 30
	}
	return &TokenManager{secret: []byte(secret), ttl: time.Duration(ttlMinutes) * time.Minute}
}

// NumericID decodes a user id claim that may arrive as a JSON number or a
// numeric string. Anything else decodes to zero instead of failing the parse,
// so verifiers can report the bad identity rather than a generic parse error.
type NumericID int64

// UnmarshalJSON implements json.Unmarshaler.
func (n *NumericID) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = NumericID(v)
	return nil
}

// Claims describes the token payload. Role carries the raw claim value; its
// shape varies (plain string or list of authority objects) and is normalized
// only at the trust boundary via NormalizeRoles.
type Claims struct {
	UserID NumericID `json:"userId"`
	Role   any       `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Issue builds and signs a token for the subject. Roles are encoded as a list
// of authority objects, the shape downstream verifiers already accept.
func (tm *TokenManager) Issue(subject string, userID int64, roles []string, now time.Time) (string, error) {
	authorities := make([]map[string]string, 0, len(roles))
	for _, r := range roles {
		authorities = append(authorities, map[string]string{"authority": r})
	}

	claims := &Claims{
		UserID: NumericID(userID),
		Role:   authorities,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// Verify checks structure, signature and expiry in that order and returns the
// claims. The first failing check determines the reported kind; callers never
// see claims from a token that failed any check. Verification is a pure
// function of (token, secret, now).
func (tm *TokenManager) Verify(tokenStr string, now time.Time) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, ErrTokenSignature
		}
		return tm.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return now }))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, ErrTokenSignature):
			return nil, ErrTokenSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		default:
			return nil, ErrTokenMalformed
		}
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}

// TTL reports the configured token lifetime.
func (tm *TokenManager) TTL() time.Duration {
	return tm.ttl
}
