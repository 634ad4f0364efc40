package middleware

import (
	"context"
	"errors"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/redtestlab/portal/internal/pkg/jwt"
	"github.com/redtestlab/portal/internal/pkg/logger"
	"github.com/redtestlab/portal/internal/pkg/models"
	"github.com/redtestlab/portal/internal/pkg/requestcontext"
	"github.com/redtestlab/portal/internal/utils"
)

const claimsKey = "portal_claims"

// ErrSessionNotFound is returned by a SessionStore when the session expired
// or was logged out
var ErrSessionNotFound = errors.New("session not found")

// SessionStore loads portal sessions
type SessionStore interface {
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
}

// JWTAuth validates the portal token carried in the Authorization header
func JWTAuth(config models.JWTConfig) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  claimsKey,
		TokenLookup: "header:Authorization:Bearer ",
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return jwtpkg.ValidateToken(auth, config.Secret)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				return utils.UnauthorizedResponse(c, "Authorization token is required")
			}
			return utils.UnauthorizedResponse(c, "Invalid or expired token")
		},
	})
}

// Session loads the session referenced by the validated token and puts it,
// with its lab API token, on the request context
func Session(store SessionStore, log *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(claimsKey).(*jwtpkg.Claims)
			if !ok {
				return utils.UnauthorizedResponse(c, "Authorization token is required")
			}

			session, err := store.GetSession(c.Request().Context(), claims.SessionID)
			if err != nil {
				if errors.Is(err, ErrSessionNotFound) {
					return utils.UnauthorizedResponse(c, "Session expired, please log in again")
				}
				log.Error("Failed to load session",
					logger.String("session_id", claims.SessionID),
					logger.Err(err))
				return utils.ServiceUnavailableResponse(c, "")
			}

			if session.Role != claims.Role || session.SubjectID != claims.SubjectID {
				return utils.UnauthorizedResponse(c, "Invalid or expired token")
			}

			c.Set("subject_id", session.SubjectID)
			c.Set("role", string(session.Role))

			ctx := requestcontext.WithSession(c.Request().Context(), session)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// RequireRole rejects sessions whose role is not in roles
func RequireRole(roles ...models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := requestcontext.GetSession(c.Request().Context())
			if session == nil {
				return utils.UnauthorizedResponse(c, "")
			}

			for _, role := range roles {
				if session.Role == role {
					return next(c)
				}
			}

			return utils.ForbiddenResponse(c, "This portal is not available for your account")
		}
	}
}

// CurrentSession returns the session loaded by Session
func CurrentSession(c echo.Context) *models.Session {
	return requestcontext.GetSession(c.Request().Context())
}
