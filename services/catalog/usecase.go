package catalog

import (
	"context"

	"github.com/redtestlab/portal/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/redtestlab/portal/services/catalog CatalogUC

// ItemQuery narrows a catalog listing
type ItemQuery struct {
	Type models.CatalogType
	Term string
}

// CatalogUC defines the interface for the admin catalog and public browsing
type CatalogUC interface {
	ListItems(ctx context.Context, query ItemQuery) ([]*models.CatalogItem, error)
	BrowsePackages(ctx context.Context, term string) ([]*models.CatalogItem, error)
	GetItem(ctx context.Context, id string) (*models.CatalogItem, error)
	CreateItem(ctx context.Context, item *models.CatalogItem) (*models.CatalogItem, error)
	UpdateItem(ctx context.Context, id string, item *models.CatalogItem) (*models.CatalogItem, error)
	DeleteItem(ctx context.Context, id string) error

	ListCategories(ctx context.Context) ([]*models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error)
	UpdateCategory(ctx context.Context, id string, category *models.Category) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	ListParameters(ctx context.Context, testID string) ([]*models.Parameter, error)
	CreateParameter(ctx context.Context, parameter *models.Parameter) (*models.Parameter, error)
	UpdateParameter(ctx context.Context, id string, parameter *models.Parameter) (*models.Parameter, error)
	DeleteParameter(ctx context.Context, id string) error
}
