package session

import (
	"context"

	"github.com/labstack/echo/v4"
)

// Session identifies the authenticated caller. Every core operation is
// scoped by TenantID; a nil *Session means no valid session.
type Session struct {
	UserID   int
	TenantID int
}

type contextKey struct{}

// Echo context keys set by the JWT middleware.
const (
	UserIDKey   = "user_id"
	TenantIDKey = "tenant_id"
)

// FromEcho extracts the session from an echo request context. Returns
// nil when the request is unauthenticated.
func FromEcho(c echo.Context) *Session {
	userID, ok := c.Get(UserIDKey).(int)
	if !ok {
		return nil
	}
	tenantID, ok := c.Get(TenantIDKey).(int)
	if !ok {
		return nil
	}
	return &Session{UserID: userID, TenantID: tenantID}
}

// WithContext attaches a session to a plain context for non-HTTP
// callers (jobs, seeds, tests).
func WithContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext extracts a session attached with WithContext.
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(contextKey{}).(*Session)
	return s
}
