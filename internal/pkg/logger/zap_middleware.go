package logger

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redtestlab/portal/internal/pkg/requestcontext"
)

// ZapEchoMiddleware writes one access log line per request, tagged with the
// portal session when there is one
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// let echo write the response so the logged status is the real one
				c.Error(err)
			}

			req := c.Request()
			path := req.URL.Path
			if req.URL.RawQuery != "" {
				path += "?" + req.URL.RawQuery
			}

			entry := RequestEntry{
				Method:    req.Method,
				Path:      path,
				ClientIP:  c.RealIP(),
				RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
				Status:    c.Response().Status,
				Latency:   time.Since(start),
				Err:       err,
			}
			if session := requestcontext.GetSession(req.Context()); session != nil {
				entry.Role = string(session.Role)
				entry.SubjectID = session.SubjectID
			}

			logger.LogRequest(entry)
			return nil
		}
	}
}
