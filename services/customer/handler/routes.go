package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/redtestlab/portal/services/customer"
	httpHandler "github.com/redtestlab/portal/services/customer/handler/http"
)

// Handler combines all handlers for the customer service
type Handler struct {
	customerHTTP *httpHandler.CustomerHandler
}

// NewHandler creates a new combined handler
func NewHandler(customerUC customer.CustomerUC) *Handler {
	return &Handler{
		customerHTTP: httpHandler.NewCustomerHandler(customerUC),
	}
}

// RegisterRoutes registers the logged-in customer routes and the public forms
func (h *Handler) RegisterRoutes(customerGroup *echo.Group, public *echo.Group) {
	customerGroup.GET("/bookings", h.customerHTTP.ListBookings)
	customerGroup.GET("/reports", h.customerHTTP.ListReports)

	public.POST("/doctor", h.customerHTTP.BookConsultation)
	public.POST("/enquiries/:kind", h.customerHTTP.SubmitEnquiry)
}
