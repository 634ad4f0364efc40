package catalog

import (
	"context"

	"github.com/redtestlab/portal/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/redtestlab/portal/services/catalog CatalogGW

// CatalogGW defines the lab API catalog calls
type CatalogGW interface {
	ListItems(ctx context.Context, itemType models.CatalogType, public bool) ([]*models.CatalogItem, error)
	GetItem(ctx context.Context, id string) (*models.CatalogItem, error)
	CreateItem(ctx context.Context, item *models.CatalogItem) (*models.CatalogItem, error)
	UpdateItem(ctx context.Context, id string, item *models.CatalogItem) (*models.CatalogItem, error)
	DeleteItem(ctx context.Context, id string) error

	ListCategories(ctx context.Context, public bool) ([]*models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error)
	UpdateCategory(ctx context.Context, id string, category *models.Category) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	ListParameters(ctx context.Context, testID string) ([]*models.Parameter, error)
	CreateParameter(ctx context.Context, parameter *models.Parameter) (*models.Parameter, error)
	UpdateParameter(ctx context.Context, id string, parameter *models.Parameter) (*models.Parameter, error)
	DeleteParameter(ctx context.Context, id string) error
}
