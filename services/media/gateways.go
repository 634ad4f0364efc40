package media

import (
	"context"
	"errors"
	"io"

	"github.com/redtestlab/portal/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/redtestlab/portal/services/media MediaGW

// ErrAssetNotFound is returned when deleting an asset the host does not know
var ErrAssetNotFound = errors.New("asset not found")

// UploadOptions places an asset on the asset host
type UploadOptions struct {
	Folder       string
	PublicID     string
	ResourceType string
}

// MediaGW defines the asset host calls
type MediaGW interface {
	Upload(ctx context.Context, body io.Reader, opts UploadOptions) (*models.UploadedAsset, error)
	Delete(ctx context.Context, publicID string) error
}
