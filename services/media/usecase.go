package media

import (
	"context"
	"io"

	"github.com/redtestlab/portal/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/redtestlab/portal/services/media MediaUC

// Folders assets may be uploaded into
const (
	FolderCatalog       = "catalog"
	FolderSite          = "site"
	FolderReports       = "reports"
	FolderPrescriptions = "prescriptions"
)

// File is an uploaded file as received from the portal
type File struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// MediaUC defines the interface for asset uploads
type MediaUC interface {
	Upload(ctx context.Context, folder string, file *File) (*models.UploadedAsset, error)
	Delete(ctx context.Context, publicID string) error
}
