package site

import (
	"context"

	"github.com/redtestlab/portal/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/redtestlab/portal/services/site SiteUC

// SiteUC defines the interface for site metadata and outbound email
type SiteUC interface {
	ListMetaTags(ctx context.Context) ([]*models.MetaTag, error)
	GetMetaTag(ctx context.Context, page string) (*models.MetaTag, error)
	CreateMetaTag(ctx context.Context, tag *models.MetaTag) (*models.MetaTag, error)
	UpdateMetaTag(ctx context.Context, id string, tag *models.MetaTag) (*models.MetaTag, error)
	DeleteMetaTag(ctx context.Context, id string) error

	SendEmail(ctx context.Context, msg *models.EmailMessage) error
}
