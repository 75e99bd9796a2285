package httpx

import (
	"context"

	domainauth "github.com/atendo-hq/console-api/internal/domain/auth"
)

// sessionKey is an unexported context key type to avoid collisions across packages.
// Centralized in this file so all handlers/middleware use the same key.
type sessionKey struct{}

// SessionContext carries the resolved browser session through the
// request context: the opaque session id plus the credential record.
type SessionContext struct {
	SID     string
	Session domainauth.Session
}

// SetSessionInContext returns a child context carrying the resolved
// session. An empty session id returns the original context unchanged.
func SetSessionInContext(ctx context.Context, sc SessionContext) context.Context {
	if sc.SID == "" {
		return ctx
	}
	return context.WithValue(ctx, sessionKey{}, sc)
}

// SessionFromContext returns the resolved session from the request
// context and whether one is present.
func SessionFromContext(ctx context.Context) (SessionContext, bool) {
	sc, ok := ctx.Value(sessionKey{}).(SessionContext)
	return sc, ok
}
