package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/redtestlab/portal/internal/pkg/middleware"
	"github.com/redtestlab/portal/internal/pkg/models"
	"github.com/redtestlab/portal/internal/utils"
	"github.com/redtestlab/portal/services/auth"
)

// AuthHandler handles portal login and logout
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth HTTP handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// Login handles POST /auth/:role/login
func (h *AuthHandler) Login(c echo.Context) error {
	role := models.Role(strings.ToLower(c.Param("role")))

	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	resp, err := h.authUC.Login(c.Request().Context(), role, &req)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	session := middleware.CurrentSession(c)
	if session == nil {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.authUC.Logout(c.Request().Context(), session.ID); err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}

type sessionView struct {
	SubjectID   string      `json:"subject_id"`
	Role        models.Role `json:"role"`
	DisplayName string      `json:"display_name,omitempty"`
	ExpiresAt   int64       `json:"expires_at"`
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c echo.Context) error {
	session := middleware.CurrentSession(c)
	if session == nil {
		return utils.UnauthorizedResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", sessionView{
		SubjectID:   session.SubjectID,
		Role:        session.Role,
		DisplayName: session.DisplayName,
		ExpiresAt:   session.ExpiresAt.Unix(),
	})
}
