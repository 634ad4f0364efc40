package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redtestlab/portal/internal/pkg/models"
	"github.com/redtestlab/portal/internal/utils"
	"github.com/redtestlab/portal/services/site"
)

// SiteHandler handles meta tags and the email composer
type SiteHandler struct {
	siteUC site.SiteUC
}

// NewSiteHandler creates a new site HTTP handler
func NewSiteHandler(siteUC site.SiteUC) *SiteHandler {
	return &SiteHandler{siteUC: siteUC}
}

func (h *SiteHandler) ListMetaTags(c echo.Context) error {
	tags, err := h.siteUC.ListMetaTags(c.Request().Context())
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", tags)
}

// GetMetaTag handles GET /public/metatags/:page
func (h *SiteHandler) GetMetaTag(c echo.Context) error {
	tag, err := h.siteUC.GetMetaTag(c.Request().Context(), c.Param("page"))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", tag)
}

func (h *SiteHandler) CreateMetaTag(c echo.Context) error {
	var tag models.MetaTag
	if err := c.Bind(&tag); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	created, err := h.siteUC.CreateMetaTag(c.Request().Context(), &tag)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Meta tags created", created)
}

func (h *SiteHandler) UpdateMetaTag(c echo.Context) error {
	var tag models.MetaTag
	if err := c.Bind(&tag); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	updated, err := h.siteUC.UpdateMetaTag(c.Request().Context(), c.Param("id"), &tag)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Meta tags updated", updated)
}

func (h *SiteHandler) DeleteMetaTag(c echo.Context) error {
	if err := h.siteUC.DeleteMetaTag(c.Request().Context(), c.Param("id")); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Meta tags deleted", nil)
}

// SendEmail handles POST /admin/email
func (h *SiteHandler) SendEmail(c echo.Context) error {
	var msg models.EmailMessage
	if err := c.Bind(&msg); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := h.siteUC.SendEmail(c.Request().Context(), &msg); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Email sent", nil)
}
