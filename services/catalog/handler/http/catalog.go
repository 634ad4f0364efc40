package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/redtestlab/portal/internal/pkg/models"
	"github.com/redtestlab/portal/internal/utils"
	"github.com/redtestlab/portal/services/catalog"
)

// CatalogHandler handles catalog administration and public browsing
type CatalogHandler struct {
	catalogUC catalog.CatalogUC
}

// NewCatalogHandler creates a new catalog HTTP handler
func NewCatalogHandler(catalogUC catalog.CatalogUC) *CatalogHandler {
	return &CatalogHandler{catalogUC: catalogUC}
}

// ListItems handles GET /admin/catalog/items?type=&q=
func (h *CatalogHandler) ListItems(c echo.Context) error {
	query := catalog.ItemQuery{
		Type: models.CatalogType(strings.ToUpper(c.QueryParam("type"))),
		Term: c.QueryParam("q"),
	}

	items, err := h.catalogUC.ListItems(c.Request().Context(), query)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", items)
}

// BrowsePackages handles GET /public/packages?q=
func (h *CatalogHandler) BrowsePackages(c echo.Context) error {
	items, err := h.catalogUC.BrowsePackages(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", items)
}

func (h *CatalogHandler) GetItem(c echo.Context) error {
	item, err := h.catalogUC.GetItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", item)
}

func (h *CatalogHandler) CreateItem(c echo.Context) error {
	var item models.CatalogItem
	if err := c.Bind(&item); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	created, err := h.catalogUC.CreateItem(c.Request().Context(), &item)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Item created", created)
}

func (h *CatalogHandler) UpdateItem(c echo.Context) error {
	var item models.CatalogItem
	if err := c.Bind(&item); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	updated, err := h.catalogUC.UpdateItem(c.Request().Context(), c.Param("id"), &item)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Item updated", updated)
}

func (h *CatalogHandler) DeleteItem(c echo.Context) error {
	if err := h.catalogUC.DeleteItem(c.Request().Context(), c.Param("id")); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Item deleted", nil)
}

func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", categories)
}

func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var category models.Category
	if err := c.Bind(&category); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	created, err := h.catalogUC.CreateCategory(c.Request().Context(), &category)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Category created", created)
}

func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	var category models.Category
	if err := c.Bind(&category); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	updated, err := h.catalogUC.UpdateCategory(c.Request().Context(), c.Param("id"), &category)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Category updated", updated)
}

func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	if err := h.catalogUC.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Category deleted", nil)
}

// ListParameters handles GET /admin/catalog/parameters?testId=
func (h *CatalogHandler) ListParameters(c echo.Context) error {
	parameters, err := h.catalogUC.ListParameters(c.Request().Context(), c.QueryParam("testId"))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", parameters)
}

func (h *CatalogHandler) CreateParameter(c echo.Context) error {
	var parameter models.Parameter
	if err := c.Bind(&parameter); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	created, err := h.catalogUC.CreateParameter(c.Request().Context(), &parameter)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Parameter created", created)
}

func (h *CatalogHandler) UpdateParameter(c echo.Context) error {
	var parameter models.Parameter
	if err := c.Bind(&parameter); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	updated, err := h.catalogUC.UpdateParameter(c.Request().Context(), c.Param("id"), &parameter)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Parameter updated", updated)
}

func (h *CatalogHandler) DeleteParameter(c echo.Context) error {
	if err := h.catalogUC.DeleteParameter(c.Request().Context(), c.Param("id")); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Parameter deleted", nil)
}
