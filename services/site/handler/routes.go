package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/redtestlab/portal/services/site"
	httpHandler "github.com/redtestlab/portal/services/site/handler/http"
)

// Handler combines all handlers for the site service
type Handler struct {
	siteHTTP *httpHandler.SiteHandler
}

// NewHandler creates a new combined handler
func NewHandler(siteUC site.SiteUC) *Handler {
	return &Handler{
		siteHTTP: httpHandler.NewSiteHandler(siteUC),
	}
}

// RegisterRoutes registers meta tag administration and the composer on
// admin, and page tags on public
func (h *Handler) RegisterRoutes(admin *echo.Group, public *echo.Group) {
	public.GET("/metatags/:page", h.siteHTTP.GetMetaTag)

	metatags := admin.Group("/metatags")
	metatags.GET("", h.siteHTTP.ListMetaTags)
	metatags.POST("", h.siteHTTP.CreateMetaTag)
	metatags.PUT("/:id", h.siteHTTP.UpdateMetaTag)
	metatags.DELETE("/:id", h.siteHTTP.DeleteMetaTag)

	admin.POST("/email", h.siteHTTP.SendEmail)
}
