package usecase

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/redtestlab/portal/internal/pkg/apperrors"
	"github.com/redtestlab/portal/internal/pkg/logger"
	"github.com/redtestlab/portal/internal/pkg/models"
	"github.com/redtestlab/portal/services/media"
	"github.com/redtestlab/portal/services/media/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pngHeader = "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"

func setup(t *testing.T) (*MediaUC, *mocks.MockMediaGW) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockMediaGW(ctrl)
	cfg := &models.Config{Media: models.MediaConfig{Folder: "redlab", MaxSizeBytes: 1 << 20}}
	return NewMediaUC(cfg, gw, logger.NewNopLogger()), gw
}

func file(name, content string) *media.File {
	return &media.File{Name: name, ContentType: "application/octet-stream", Size: int64(len(content)), Body: strings.NewReader(content)}
}

func TestUpload_Image(t *testing.T) {
	uc, gw := setup(t)
	content := pngHeader + strings.Repeat("x", 1000)

	gw.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, body io.Reader, opts media.UploadOptions) (*models.UploadedAsset, error) {
			data, err := io.ReadAll(body)
			require.NoError(t, err)
			assert.Equal(t, content, string(data))
			assert.Equal(t, "redlab/catalog", opts.Folder)
			assert.Equal(t, "image", opts.ResourceType)
			assert.True(t, strings.HasPrefix(opts.PublicID, "full-body-banner-"))
			return &models.UploadedAsset{URL: "https://res.cloudinary.com/x.png", PublicID: "redlab/catalog/" + opts.PublicID}, nil
		})

	asset, err := uc.Upload(context.Background(), "Catalog", file(`C:\Users\me\Full Body Banner.PNG`, content))

	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/x.png", asset.URL)
}

func TestUpload_PDFReport(t *testing.T) {
	uc, gw := setup(t)

	gw.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ io.Reader, opts media.UploadOptions) (*models.UploadedAsset, error) {
			assert.Equal(t, "redlab/reports", opts.Folder)
			return &models.UploadedAsset{PublicID: "redlab/reports/r"}, nil
		})

	_, err := uc.Upload(context.Background(), media.FolderReports, file("report.pdf", "%PDF-1.7\n%...."))
	require.NoError(t, err)
}

func TestUpload_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		folder string
		file   *media.File
	}{
		{"unknown folder", "secrets", file("a.png", pngHeader)},
		{"empty", media.FolderSite, file("a.png", "")},
		{"too large", media.FolderSite, &media.File{Name: "a.png", Size: 2 << 20, Body: strings.NewReader(pngHeader)}},
		{"disguised text", media.FolderSite, &media.File{Name: "a.png", ContentType: "image/png", Size: 5, Body: strings.NewReader("hello")}},
		{"html", media.FolderSite, file("a.html", "<!DOCTYPE html><html></html>")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := setup(t)

			_, err := uc.Upload(context.Background(), tt.folder, tt.file)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestDelete(t *testing.T) {
	uc, gw := setup(t)
	ctx := context.Background()

	assert.ErrorIs(t, uc.Delete(ctx, "other/app/logo"), apperrors.ErrForbidden)
	assert.ErrorIs(t, uc.Delete(ctx, " "), apperrors.ErrValidation)

	gw.EXPECT().Delete(ctx, "redlab/site/logo").Return(nil)
	require.NoError(t, uc.Delete(ctx, "/redlab/site/logo"))

	gw.EXPECT().Delete(ctx, "redlab/site/gone").Return(media.ErrAssetNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, "redlab/site/gone"), apperrors.ErrNotFound)
}

func TestPublicID(t *testing.T) {
	assert.Regexp(t, `^lab-report-2026-[0-9a-f]{8}$`, publicID("Lab Report_2026.pdf"))
	assert.Regexp(t, `^[0-9a-f]{8}$`, publicID("???.png"))
	assert.Regexp(t, `^[0-9a-f]{8}$`, publicID(""))
}
