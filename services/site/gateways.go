package site

import (
	"context"

	"github.com/redtestlab/portal/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/redtestlab/portal/services/site SiteGW

// SiteGW defines the lab API calls of the site service
type SiteGW interface {
	ListMetaTags(ctx context.Context, public bool) ([]*models.MetaTag, error)
	CreateMetaTag(ctx context.Context, tag *models.MetaTag) (*models.MetaTag, error)
	UpdateMetaTag(ctx context.Context, id string, tag *models.MetaTag) (*models.MetaTag, error)
	DeleteMetaTag(ctx context.Context, id string) error
	SendEmail(ctx context.Context, msg *models.EmailMessage) error
}
