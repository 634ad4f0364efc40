package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redtestlab/portal/internal/utils"
	"github.com/redtestlab/portal/services/media"
)

// MediaHandler handles asset uploads
type MediaHandler struct {
	mediaUC media.MediaUC
}

// NewMediaHandler creates a new media HTTP handler
func NewMediaHandler(mediaUC media.MediaUC) *MediaHandler {
	return &MediaHandler{mediaUC: mediaUC}
}

// Upload handles multipart POST /media/:folder with the file in "file"
func (h *MediaHandler) Upload(c echo.Context) error {
	header, err := c.FormFile("file")
	if err != nil {
		return utils.BadRequestResponse(c, "A file is required")
	}

	src, err := header.Open()
	if err != nil {
		return utils.BadRequestResponse(c, "File could not be read")
	}
	defer src.Close()

	asset, err := h.mediaUC.Upload(c.Request().Context(), c.Param("folder"), &media.File{
		Name:        header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Size:        header.Size,
		Body:        src,
	})
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "File uploaded", asset)
}

// Delete handles DELETE /media?publicId=
func (h *MediaHandler) Delete(c echo.Context) error {
	if err := h.mediaUC.Delete(c.Request().Context(), c.QueryParam("publicId")); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "File deleted", nil)
}
