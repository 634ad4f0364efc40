package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/redtestlab/portal/services/provider"
	httpHandler "github.com/redtestlab/portal/services/provider/handler/http"
)

// Handler combines all handlers for the provider service
type Handler struct {
	providerHTTP *httpHandler.ProviderHandler
}

// NewHandler creates a new combined handler
func NewHandler(providerUC provider.ProviderUC) *Handler {
	return &Handler{
		providerHTTP: httpHandler.NewProviderHandler(providerUC),
	}
}

// RegisterRoutes registers the lab portal routes on an authenticated group
func (h *Handler) RegisterRoutes(providerGroup *echo.Group) {
	providerGroup.GET("/profile", h.providerHTTP.GetProfile)
	providerGroup.GET("/profile/:id", h.providerHTTP.GetProfile)
	providerGroup.PUT("/profile", h.providerHTTP.UpdateProfile)
	providerGroup.PUT("/profile/:id", h.providerHTTP.UpdateProfile)

	providerGroup.GET("/prescriptions", h.providerHTTP.ListPrescriptions)
	providerGroup.PUT("/prescriptions/:id/status", h.providerHTTP.UpdatePrescriptionStatus)

	providerGroup.GET("/payouts", h.providerHTTP.ListPayouts)
	providerGroup.POST("/payouts", h.providerHTTP.RequestPayout)
}
