package httpx

import (
	"context"

	"github.com/campusware/campus-admin/internal/service"
)

// authKey is an unexported context key type to avoid collisions across packages.
// Centralized in this file so all handlers/middleware use the same key.
type authKey struct{}

// RequestAuth is what authentication middleware attaches to the request
// context: the durable client ID from the cookie plus the restored account.
type RequestAuth struct {
	ClientID string
	Account  *service.Account
}

// SetAuthInContext returns a child context that carries the given auth info.
// If auth is nil, the original ctx is returned unchanged.
func SetAuthInContext(ctx context.Context, auth *RequestAuth) context.Context {
	if auth == nil {
		return ctx
	}
	return context.WithValue(ctx, authKey{}, auth)
}

// GetAuthFromContext returns the request auth from context and a boolean
// indicating presence.
func GetAuthFromContext(ctx context.Context) (*RequestAuth, bool) {
	if auth, ok := ctx.Value(authKey{}).(*RequestAuth); ok && auth != nil {
		return auth, true
	}
	return nil, false
}
