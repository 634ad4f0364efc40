package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/redtestlab/portal/services/media"
	httpHandler "github.com/redtestlab/portal/services/media/handler/http"
)

// Handler combines all handlers for the media service
type Handler struct {
	mediaHTTP *httpHandler.MediaHandler
}

// NewHandler creates a new combined handler
func NewHandler(mediaUC media.MediaUC) *Handler {
	return &Handler{
		mediaHTTP: httpHandler.NewMediaHandler(mediaUC),
	}
}

// RegisterRoutes lets admins upload and delete assets and labs upload reports
func (h *Handler) RegisterRoutes(admin *echo.Group, providerGroup *echo.Group) {
	admin.POST("/media/:folder", h.mediaHTTP.Upload)
	admin.DELETE("/media", h.mediaHTTP.Delete)

	providerGroup.POST("/media/:folder", h.mediaHTTP.Upload)
}
