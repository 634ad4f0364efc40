package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/redtestlab/portal/services/catalog"
	httpHandler "github.com/redtestlab/portal/services/catalog/handler/http"
)

// Handler combines all handlers for the catalog service
type Handler struct {
	catalogHTTP *httpHandler.CatalogHandler
}

// NewHandler creates a new combined handler
func NewHandler(catalogUC catalog.CatalogUC) *Handler {
	return &Handler{
		catalogHTTP: httpHandler.NewCatalogHandler(catalogUC),
	}
}

// RegisterRoutes registers catalog administration on admin and package
// browsing on public
func (h *Handler) RegisterRoutes(admin *echo.Group, public *echo.Group) {
	public.GET("/packages", h.catalogHTTP.BrowsePackages)

	group := admin.Group("/catalog")

	items := group.Group("/items")
	items.GET("", h.catalogHTTP.ListItems)
	items.POST("", h.catalogHTTP.CreateItem)
	items.GET("/:id", h.catalogHTTP.GetItem)
	items.PUT("/:id", h.catalogHTTP.UpdateItem)
	items.DELETE("/:id", h.catalogHTTP.DeleteItem)

	categories := group.Group("/categories")
	categories.GET("", h.catalogHTTP.ListCategories)
	categories.POST("", h.catalogHTTP.CreateCategory)
	categories.PUT("/:id", h.catalogHTTP.UpdateCategory)
	categories.DELETE("/:id", h.catalogHTTP.DeleteCategory)

	parameters := group.Group("/parameters")
	parameters.GET("", h.catalogHTTP.ListParameters)
	parameters.POST("", h.catalogHTTP.CreateParameter)
	parameters.PUT("/:id", h.catalogHTTP.UpdateParameter)
	parameters.DELETE("/:id", h.catalogHTTP.DeleteParameter)
}
