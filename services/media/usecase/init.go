package usecase

import (
	"github.com/redtestlab/portal/internal/pkg/logger"
	"github.com/redtestlab/portal/internal/pkg/models"
	"github.com/redtestlab/portal/services/media"
)

// MediaUC implements the media use case interface
type MediaUC struct {
	mediaGW      media.MediaGW
	rootFolder   string
	maxSizeBytes int64
	logger       *logger.ZapLogger
}

// NewMediaUC creates a new media use case
func NewMediaUC(cfg *models.Config, mediaGW media.MediaGW, log *logger.ZapLogger) *MediaUC {
	return &MediaUC{
		mediaGW:      mediaGW,
		rootFolder:   cfg.Media.Folder,
		maxSizeBytes: cfg.Media.MaxSizeBytes,
		logger:       log,
	}
}
