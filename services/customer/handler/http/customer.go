package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/redtestlab/portal/internal/pkg/models"
	"github.com/redtestlab/portal/internal/utils"
	"github.com/redtestlab/portal/services/customer"
)

// CustomerHandler handles the customer portal and public forms
type CustomerHandler struct {
	customerUC customer.CustomerUC
}

// NewCustomerHandler creates a new customer HTTP handler
func NewCustomerHandler(customerUC customer.CustomerUC) *CustomerHandler {
	return &CustomerHandler{customerUC: customerUC}
}

// ListBookings handles GET /customer/bookings
func (h *CustomerHandler) ListBookings(c echo.Context) error {
	bookings, err := h.customerUC.ListBookings(c.Request().Context())
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", bookings)
}

// ListReports handles GET /customer/reports
func (h *CustomerHandler) ListReports(c echo.Context) error {
	reports, err := h.customerUC.ListReports(c.Request().Context())
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", reports)
}

// BookConsultation handles POST /public/doctor
func (h *CustomerHandler) BookConsultation(c echo.Context) error {
	var req models.DoctorConsultation
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := h.customerUC.BookConsultation(c.Request().Context(), &req); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Consultation booked, we will call you shortly", nil)
}

// SubmitEnquiry handles POST /public/enquiries/:kind
func (h *CustomerHandler) SubmitEnquiry(c echo.Context) error {
	var enquiry models.Enquiry
	if err := c.Bind(&enquiry); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	enquiry.Kind = models.EnquiryKind(strings.ToLower(c.Param("kind")))

	if err := h.customerUC.SubmitEnquiry(c.Request().Context(), &enquiry); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Enquiry received", nil)
}
