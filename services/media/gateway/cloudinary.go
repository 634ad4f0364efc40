package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/redtestlab/portal/internal/pkg/logger"
	"github.com/redtestlab/portal/internal/pkg/models"
	"github.com/redtestlab/portal/services/media"
)

// ErrMediaDisabled is returned when no asset host credentials are configured
var ErrMediaDisabled = errors.New("media uploads are not configured")

// CloudinaryGW stores assets on Cloudinary
type CloudinaryGW struct {
	cld          *cloudinary.Cloudinary
	uploadPreset string
	logger       *logger.ZapLogger
}

// NewMediaGW creates the Cloudinary gateway from the media config
func NewMediaGW(cfg models.MediaConfig, log *logger.ZapLogger) (media.MediaGW, error) {
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, ErrMediaDisabled
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}

	return &CloudinaryGW{cld: cld, uploadPreset: cfg.UploadPreset, logger: log}, nil
}

// Upload streams body to Cloudinary
func (g *CloudinaryGW) Upload(ctx context.Context, body io.Reader, opts media.UploadOptions) (*models.UploadedAsset, error) {
	result, err := g.cld.Upload.Upload(ctx, body, uploader.UploadParams{
		Folder:       opts.Folder,
		PublicID:     opts.PublicID,
		UploadPreset: g.uploadPreset,
		ResourceType: opts.ResourceType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload asset: %w", err)
	}
	if err := resultError(result.Error); err != nil {
		return nil, err
	}
	if result.PublicID == "" {
		return nil, errors.New("asset host returned no public id")
	}

	url := result.SecureURL
	if url == "" {
		url = result.URL
	}

	g.logger.Info("Asset uploaded",
		logger.String("public_id", result.PublicID),
		logger.Int("bytes", result.Bytes))

	return &models.UploadedAsset{
		URL:          url,
		PublicID:     result.PublicID,
		Format:       result.Format,
		Bytes:        result.Bytes,
		ResourceType: result.ResourceType,
	}, nil
}

// Delete removes an asset by public id
func (g *CloudinaryGW) Delete(ctx context.Context, publicID string) error {
	result, err := g.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	if err := resultError(result.Error); err != nil {
		return err
	}
	if result.Result == "not found" {
		return media.ErrAssetNotFound
	}
	return nil
}

func resultError(errResp api.ErrorResp) error {
	if errResp.Message == "" {
		return nil
	}
	return fmt.Errorf("asset host rejected the request: %s", errResp.Message)
}
