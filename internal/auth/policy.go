package auth

import (
	"net/http"
	"strings"
)

// Classification is the access class of a request path.
type Classification int

const (
	// Public paths never require a token, even when they also match a
	// protected prefix.
	Public Classification = iota
	// RequiresIdentity paths are forwarded only with a verified token.
	RequiresIdentity
	// Permissive paths are forwarded untouched; they match neither table.
	Permissive
)

func (c Classification) String() string {
	switch c {
	case Public:
		return "public"
	case RequiresIdentity:
		return "requires-identity"
	default:
		return "permissive"
	}
}

// RoutePolicy classifies request paths against two static prefix tables.
// "public" and "requires-identity" are not complements: a path matching
// neither passes through unauthenticated. Instances are read-only after
// construction.
type RoutePolicy struct {
	public    []string
	protected []string
}

// NewRoutePolicy builds a policy from the two prefix tables.
func NewRoutePolicy(public, protected []string) *RoutePolicy {
	return &RoutePolicy{
		public:    append([]string(nil), public...),
		protected: append([]string(nil), protected...),
	}
}

// Classify resolves the access class for one request. OPTIONS is always
// Permissive so cross-origin preflights never hit token verification.
func (p *RoutePolicy) Classify(method, path string) Classification {
	if strings.EqualFold(method, http.MethodOptions) {
		return Permissive
	}
	for _, prefix := range p.public {
		if strings.HasPrefix(path, prefix) {
			return Public
		}
	}
	for _, prefix := range p.protected {
		if strings.HasPrefix(path, prefix) {
			return RequiresIdentity
		}
	}
	return Permissive
}
