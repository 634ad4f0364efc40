package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/redtestlab/portal/services/collection"
	httpHandler "github.com/redtestlab/portal/services/collection/handler/http"
)

// Handler combines all handlers for the collection service
type Handler struct {
	collectionHTTP *httpHandler.CollectionHandler
}

// NewHandler creates a new combined handler
func NewHandler(collectionUC collection.CollectionUC) *Handler {
	return &Handler{
		collectionHTTP: httpHandler.NewCollectionHandler(collectionUC),
	}
}

// RegisterRoutes registers the delivery portal routes on an authenticated group
func (h *Handler) RegisterRoutes(delivery *echo.Group) {
	bookings := delivery.Group("/bookings")
	bookings.GET("", h.collectionHTTP.ListBookings)
	bookings.GET("/:id", h.collectionHTTP.GetBooking)
	bookings.POST("/:id/send-otp", h.collectionHTTP.SendOTP)
	bookings.POST("/:id/resend-otp", h.collectionHTTP.ResendOTP)
	bookings.POST("/:id/verify-otp", h.collectionHTTP.VerifyOTP)
}
