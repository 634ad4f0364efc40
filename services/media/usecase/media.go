package usecase

import (
	"bufio"
	"context"
	"errors"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/redtestlab/portal/internal/pkg/apperrors"
	"github.com/redtestlab/portal/internal/pkg/models"
	"github.com/redtestlab/portal/services/media"
)

const sniffLen = 512

// allowedTypes maps an accepted content type to its asset host resource type
var allowedTypes = map[string]string{
	"image/jpeg":      "image",
	"image/png":       "image",
	"image/webp":      "image",
	"image/gif":       "image",
	"application/pdf": "image",
}

var allowedFolders = map[string]bool{
	media.FolderCatalog:       true,
	media.FolderSite:          true,
	media.FolderReports:       true,
	media.FolderPrescriptions: true,
}

// Upload checks size and content of file and stores it under folder
func (uc *MediaUC) Upload(ctx context.Context, folder string, file *media.File) (*models.UploadedAsset, error) {
	folder = strings.ToLower(strings.TrimSpace(folder))
	if !allowedFolders[folder] {
		return nil, apperrors.Validation("Unknown upload folder %q", folder)
	}
	if file == nil || file.Body == nil || file.Size <= 0 {
		return nil, apperrors.Validation("File is empty")
	}
	if uc.maxSizeBytes > 0 && file.Size > uc.maxSizeBytes {
		return nil, apperrors.Validation("File is larger than %d MB", uc.maxSizeBytes>>20)
	}

	// the declared type is not trusted, the leading bytes decide
	body := bufio.NewReaderSize(file.Body, sniffLen)
	head, err := body.Peek(sniffLen)
	if err != nil && len(head) == 0 {
		return nil, apperrors.Validation("File could not be read")
	}
	contentType := http.DetectContentType(head)
	resourceType, ok := allowedTypes[contentType]
	if !ok {
		return nil, apperrors.Validation("Only JPEG, PNG, WebP, GIF and PDF files are allowed")
	}

	return uc.mediaGW.Upload(ctx, body, media.UploadOptions{
		Folder:       path.Join(uc.rootFolder, folder),
		PublicID:     publicID(file.Name),
		ResourceType: resourceType,
	})
}

// Delete removes an asset uploaded through the portal
func (uc *MediaUC) Delete(ctx context.Context, publicID string) error {
	publicID = strings.Trim(strings.TrimSpace(publicID), "/")
	if publicID == "" {
		return apperrors.Validation("Missing public id")
	}
	if uc.rootFolder != "" && !strings.HasPrefix(publicID, uc.rootFolder+"/") {
		return apperrors.Forbidden("Only portal assets can be deleted")
	}

	if err := uc.mediaGW.Delete(ctx, publicID); err != nil {
		if errors.Is(err, media.ErrAssetNotFound) {
			return apperrors.NotFound("Asset %s not found", publicID)
		}
		return err
	}
	return nil
}

// publicID keeps a readable stem of the original name and makes it unique
func publicID(name string) string {
	stem := strings.TrimSuffix(path.Base(strings.ReplaceAll(name, "\\", "/")), path.Ext(name))

	var b strings.Builder
	for _, r := range strings.ToLower(stem) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune('-')
		}
		if b.Len() >= 40 {
			break
		}
	}

	suffix := uuid.NewString()[:8]
	if b.Len() == 0 || strings.Trim(b.String(), "-") == "" {
		return suffix
	}
	return strings.Trim(b.String(), "-") + "-" + suffix
}
