package usecase

import (
	"context"
	"strings"

	"github.com/redtestlab/portal/internal/pkg/apperrors"
	"github.com/redtestlab/portal/internal/pkg/logger"
	"github.com/redtestlab/portal/internal/pkg/models"
	"github.com/redtestlab/portal/internal/utils"
	"github.com/redtestlab/portal/services/catalog"
)

// ListItems returns catalog items of the query type matching its term
func (uc *CatalogUC) ListItems(ctx context.Context, query catalog.ItemQuery) ([]*models.CatalogItem, error) {
	items, err := uc.catalogGW.ListItems(ctx, query.Type, false)
	if err != nil {
		return nil, err
	}
	uc.fillCategoryNames(ctx, items, false)
	return Filter(items, query.Term), nil
}

// BrowsePackages lists packages for anonymous visitors
func (uc *CatalogUC) BrowsePackages(ctx context.Context, term string) ([]*models.CatalogItem, error) {
	items, err := uc.catalogGW.ListItems(ctx, models.CatalogPackage, true)
	if err != nil {
		return nil, err
	}
	uc.fillCategoryNames(ctx, items, true)

	packages := make([]*models.CatalogItem, 0, len(items))
	for _, item := range Filter(items, term) {
		if item.Type == "" || item.Type == models.CatalogPackage {
			packages = append(packages, item)
		}
	}
	return packages, nil
}

func (uc *CatalogUC) GetItem(ctx context.Context, id string) (*models.CatalogItem, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return uc.catalogGW.GetItem(ctx, id)
}

// CreateItem validates item locally and creates it
func (uc *CatalogUC) CreateItem(ctx context.Context, item *models.CatalogItem) (*models.CatalogItem, error) {
	normalizeItem(item)
	if err := Validate(item); err != nil {
		return nil, err
	}

	created, err := uc.catalogGW.CreateItem(ctx, item)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Catalog item created",
		logger.String("item_id", created.ID),
		logger.String("type", string(created.Type)))
	return created, nil
}

// UpdateItem validates item locally and replaces the stored one
func (uc *CatalogUC) UpdateItem(ctx context.Context, id string, item *models.CatalogItem) (*models.CatalogItem, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	normalizeItem(item)
	if err := Validate(item); err != nil {
		return nil, err
	}
	return uc.catalogGW.UpdateItem(ctx, id, item)
}

func (uc *CatalogUC) DeleteItem(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	if err := uc.catalogGW.DeleteItem(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("Catalog item deleted", logger.String("item_id", id))
	return nil
}

func (uc *CatalogUC) ListCategories(ctx context.Context) ([]*models.Category, error) {
	return uc.catalogGW.ListCategories(ctx, false)
}

func (uc *CatalogUC) CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	if err := validateCategory(category); err != nil {
		return nil, err
	}
	return uc.catalogGW.CreateCategory(ctx, category)
}

func (uc *CatalogUC) UpdateCategory(ctx context.Context, id string, category *models.Category) (*models.Category, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	if err := validateCategory(category); err != nil {
		return nil, err
	}
	return uc.catalogGW.UpdateCategory(ctx, id, category)
}

func (uc *CatalogUC) DeleteCategory(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	return uc.catalogGW.DeleteCategory(ctx, id)
}

func (uc *CatalogUC) ListParameters(ctx context.Context, testID string) ([]*models.Parameter, error) {
	return uc.catalogGW.ListParameters(ctx, strings.TrimSpace(testID))
}

func (uc *CatalogUC) CreateParameter(ctx context.Context, parameter *models.Parameter) (*models.Parameter, error) {
	if err := validateParameter(parameter); err != nil {
		return nil, err
	}
	return uc.catalogGW.CreateParameter(ctx, parameter)
}

func (uc *CatalogUC) UpdateParameter(ctx context.Context, id string, parameter *models.Parameter) (*models.Parameter, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	if err := validateParameter(parameter); err != nil {
		return nil, err
	}
	return uc.catalogGW.UpdateParameter(ctx, id, parameter)
}

func (uc *CatalogUC) DeleteParameter(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	return uc.catalogGW.DeleteParameter(ctx, id)
}

// fillCategoryNames names the categories the lab API returned as bare ids.
// Lookup failures leave the names empty; the listing itself still succeeds.
func (uc *CatalogUC) fillCategoryNames(ctx context.Context, items []*models.CatalogItem, public bool) {
	missing := false
	for _, item := range items {
		if item.Category.Name == "" && item.Category.ID != "" {
			missing = true
			break
		}
	}
	if !missing {
		return
	}

	categories, err := uc.catalogGW.ListCategories(ctx, public)
	if err != nil {
		uc.logger.Warn("Failed to resolve category names", logger.Err(err))
		return
	}

	names := make(map[string]string, len(categories))
	for _, category := range categories {
		names[category.ID] = category.Name
	}
	for _, item := range items {
		if item.Category.Name == "" {
			item.Category.Name = names[item.Category.ID]
		}
	}
}

func validateCategory(category *models.Category) error {
	category.Name = utils.SanitizeString(category.Name)
	if category.Name == "" {
		return apperrors.Validation("Category name is required")
	}
	return nil
}

func validateParameter(parameter *models.Parameter) error {
	parameter.Name = utils.SanitizeString(parameter.Name)
	if parameter.Name == "" {
		return apperrors.Validation("Parameter name is required")
	}
	if strings.TrimSpace(parameter.TestID) == "" {
		return apperrors.Validation("Parameter must belong to a test")
	}
	return nil
}

func requireID(id string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.Validation("Missing id")
	}
	return nil
}
