package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/redtestlab/portal/internal/pkg/requestcontext"
)

// RequestContextMiddleware copies the request id echo assigned into the
// request context so outbound lab API calls can forward it
func RequestContextMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := requestcontext.FromEchoContext(c)
			c.Response().Header().Set(echo.HeaderXRequestID, requestcontext.GetRequestID(ctx))
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
