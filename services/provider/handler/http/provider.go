package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/redtestlab/portal/internal/pkg/middleware"
	"github.com/redtestlab/portal/internal/pkg/models"
	"github.com/redtestlab/portal/internal/utils"
	"github.com/redtestlab/portal/services/provider"
)

// ProviderHandler handles the lab portal endpoints
type ProviderHandler struct {
	providerUC provider.ProviderUC
}

// NewProviderHandler creates a new provider HTTP handler
func NewProviderHandler(providerUC provider.ProviderUC) *ProviderHandler {
	return &ProviderHandler{providerUC: providerUC}
}

// GetProfile handles GET /provider/profile and /provider/profile/:id
func (h *ProviderHandler) GetProfile(c echo.Context) error {
	session := middleware.CurrentSession(c)

	profile, err := h.providerUC.GetProfile(c.Request().Context(), session.SubjectID, c.Param("id"))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", profile)
}

// UpdateProfile handles PUT /provider/profile and /provider/profile/:id
func (h *ProviderHandler) UpdateProfile(c echo.Context) error {
	session := middleware.CurrentSession(c)

	var update models.ProfileUpdate
	if err := c.Bind(&update); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	profile, err := h.providerUC.UpdateProfile(c.Request().Context(), session.SubjectID, c.Param("id"), &update)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Profile updated", profile)
}

// ListPrescriptions handles GET /provider/prescriptions?status=
func (h *ProviderHandler) ListPrescriptions(c echo.Context) error {
	session := middleware.CurrentSession(c)
	status := models.PrescriptionStatus(strings.ToUpper(strings.TrimSpace(c.QueryParam("status"))))

	prescriptions, err := h.providerUC.ListPrescriptions(c.Request().Context(), session.SubjectID, status)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", prescriptions)
}

// UpdatePrescriptionStatus handles PUT /provider/prescriptions/:id/status
func (h *ProviderHandler) UpdatePrescriptionStatus(c echo.Context) error {
	session := middleware.CurrentSession(c)

	var update models.PrescriptionStatusUpdate
	if err := c.Bind(&update); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	prescription, err := h.providerUC.UpdatePrescriptionStatus(c.Request().Context(), session.SubjectID, c.Param("id"), &update)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Prescription updated", prescription)
}

// ListPayouts handles GET /provider/payouts
func (h *ProviderHandler) ListPayouts(c echo.Context) error {
	session := middleware.CurrentSession(c)

	payouts, err := h.providerUC.ListPayouts(c.Request().Context(), session.SubjectID)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", payouts)
}

// RequestPayout handles POST /provider/payouts
func (h *ProviderHandler) RequestPayout(c echo.Context) error {
	session := middleware.CurrentSession(c)

	var req models.PayoutRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	payout, err := h.providerUC.RequestPayout(c.Request().Context(), session.SubjectID, &req)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Payout requested", payout)
}
