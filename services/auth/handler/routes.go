package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/redtestlab/portal/services/auth"
	httpHandler "github.com/redtestlab/portal/services/auth/handler/http"
)

// Handler combines all handlers for the auth service
type Handler struct {
	authHTTP *httpHandler.AuthHandler
}

// NewHandler creates a new combined handler
func NewHandler(authUC auth.AuthUC) *Handler {
	return &Handler{
		authHTTP: httpHandler.NewAuthHandler(authUC),
	}
}

// RegisterRoutes registers the login routes behind loginLimiter and the
// session routes behind authenticated
func (h *Handler) RegisterRoutes(e *echo.Echo, loginLimiter echo.MiddlewareFunc, authenticated ...echo.MiddlewareFunc) {
	group := e.Group("/auth")
	group.POST("/:role/login", h.authHTTP.Login, loginLimiter)

	session := group.Group("", authenticated...)
	session.POST("/logout", h.authHTTP.Logout)
	session.GET("/me", h.authHTTP.Me)
}
