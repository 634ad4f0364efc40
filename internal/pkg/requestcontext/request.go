package requestcontext

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/redtestlab/portal/internal/pkg/models"
)

// ContextKey type for context keys to avoid collisions
type ContextKey string

const (
	RequestIDKey     ContextKey = "request_id"
	SessionKey       ContextKey = "session"
	UpstreamTokenKey ContextKey = "upstream_token"
)

// FromEchoContext returns the request context of c carrying the request id
// echo assigned to the response
func FromEchoContext(c echo.Context) context.Context {
	ctx := c.Request().Context()
	requestID := c.Response().Header().Get(echo.HeaderXRequestID)
	if requestID == "" {
		requestID = uuid.New().String()
	}
	return WithRequestID(ctx, requestID)
}

// WithRequestID stores the request id so outbound calls can forward it
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestID extracts request ID from context
func GetRequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(RequestIDKey).(string); ok {
		return reqID
	}
	return ""
}

// WithSession stores the authenticated portal session and its lab API token
func WithSession(ctx context.Context, session *models.Session) context.Context {
	ctx = context.WithValue(ctx, SessionKey, session)
	return context.WithValue(ctx, UpstreamTokenKey, session.UpstreamToken)
}

// GetSession extracts the portal session, nil for anonymous requests
func GetSession(ctx context.Context) *models.Session {
	if s, ok := ctx.Value(SessionKey).(*models.Session); ok {
		return s
	}
	return nil
}

// WithUpstreamToken stores a bare lab API bearer token
func WithUpstreamToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, UpstreamTokenKey, token)
}

// GetUpstreamToken extracts the lab API bearer token
func GetUpstreamToken(ctx context.Context) string {
	if token, ok := ctx.Value(UpstreamTokenKey).(string); ok {
		return token
	}
	return ""
}
