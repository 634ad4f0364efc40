package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/redtestlab/portal/internal/pkg/middleware"
	"github.com/redtestlab/portal/internal/pkg/models"
	"github.com/redtestlab/portal/internal/utils"
	"github.com/redtestlab/portal/services/collection"
)

// CollectionHandler handles the delivery agent collection endpoints
type CollectionHandler struct {
	collectionUC collection.CollectionUC
}

// NewCollectionHandler creates a new collection HTTP handler
func NewCollectionHandler(collectionUC collection.CollectionUC) *CollectionHandler {
	return &CollectionHandler{collectionUC: collectionUC}
}

// ListBookings handles GET /delivery/bookings?status=
func (h *CollectionHandler) ListBookings(c echo.Context) error {
	session := middleware.CurrentSession(c)
	status := models.CollectionStatus(strings.ToUpper(strings.TrimSpace(c.QueryParam("status"))))

	bookings, err := h.collectionUC.ListAssigned(c.Request().Context(), session.SubjectID, status)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bookings retrieved", bookings)
}

// GetBooking handles GET /delivery/bookings/:id
func (h *CollectionHandler) GetBooking(c echo.Context) error {
	session := middleware.CurrentSession(c)

	booking, err := h.collectionUC.GetBooking(c.Request().Context(), session.SubjectID, c.Param("id"))
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", booking)
}

// SendOTP handles POST /delivery/bookings/:id/send-otp
func (h *CollectionHandler) SendOTP(c echo.Context) error {
	session := middleware.CurrentSession(c)

	result, err := h.collectionUC.SendOTP(c.Request().Context(), session.SubjectID, c.Param("id"))
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, result.Message, result)
}

// ResendOTP handles POST /delivery/bookings/:id/resend-otp
func (h *CollectionHandler) ResendOTP(c echo.Context) error {
	session := middleware.CurrentSession(c)

	result, err := h.collectionUC.ResendOTP(c.Request().Context(), session.SubjectID, c.Param("id"))
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, result.Message, result)
}

// VerifyOTP handles POST /delivery/bookings/:id/verify-otp
func (h *CollectionHandler) VerifyOTP(c echo.Context) error {
	session := middleware.CurrentSession(c)

	var input models.VerifyOTPInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	result, err := h.collectionUC.VerifyOTP(c.Request().Context(), session.SubjectID, c.Param("id"), strings.TrimSpace(input.OTP))
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, result.Message, result)
}
