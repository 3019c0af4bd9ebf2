package context

import (
	"context"

	"vidshare/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeySession is the key for storing the decoded session.
const KeySession ContextKey = "session"

// GetSession returns the session decoded for this request, or nil when the caller is anonymous.
func GetSession(c echo.Context) *entity.Session {
	if session, ok := c.Get(string(KeySession)).(*entity.Session); ok {
		return session
	}

	return nil
}

// SetSession stores the decoded session on both the echo context and the request context.
func SetSession(c echo.Context, session *entity.Session) {
	c.Set(string(KeySession), session)
	c.SetRequest(c.Request().WithContext(WithSession(c.Request().Context(), session)))
}

// GetSessionFromContext extracts the session from standard context.Context.
func GetSessionFromContext(ctx context.Context) *entity.Session {
	if session, ok := ctx.Value(KeySession).(*entity.Session); ok {
		return session
	}

	return nil
}

// WithSession returns a new context with the session.
func WithSession(ctx context.Context, session *entity.Session) context.Context {
	return context.WithValue(ctx, KeySession, session)
}
