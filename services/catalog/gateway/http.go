package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	httpclient "github.com/redtestlab/portal/internal/pkg/http"
	"github.com/redtestlab/portal/internal/pkg/models"
)

const (
	pathProducts   = "/product"
	pathCategories = "/category"
	pathParameters = "/parameter"
)

// HTTPGateway calls the catalog endpoints of the lab API
type HTTPGateway struct {
	client *httpclient.Client
}

// NewHTTPGateway creates a new catalog gateway
func NewHTTPGateway(client *httpclient.Client) *HTTPGateway {
	return &HTTPGateway{client: client}
}

// itemDTO accepts the category either populated or as a bare id
type itemDTO struct {
	models.CatalogItem
	Category json.RawMessage `json:"category"`
}

func (d *itemDTO) toModel() (*models.CatalogItem, error) {
	item := d.CatalogItem
	raw := bytes.TrimSpace(d.Category)

	switch {
	case len(raw) == 0 || string(raw) == "null":
	case raw[0] == '"':
		if err := json.Unmarshal(raw, &item.Category.ID); err != nil {
			return nil, fmt.Errorf("invalid category of item %s: %w", item.ID, err)
		}
	default:
		if err := json.Unmarshal(raw, &item.Category); err != nil {
			return nil, fmt.Errorf("invalid category of item %s: %w", item.ID, err)
		}
	}
	return &item, nil
}

// itemPayload is what the lab API expects on writes: the category by id
type itemPayload struct {
	models.CatalogItem
	Category string `json:"category"`
}

func newItemPayload(item *models.CatalogItem) *itemPayload {
	return &itemPayload{CatalogItem: *item, Category: item.Category.ID}
}

func toItems(dtos []itemDTO) ([]*models.CatalogItem, error) {
	items := make([]*models.CatalogItem, 0, len(dtos))
	for i := range dtos {
		item, err := dtos[i].toModel()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// ListItems fetches products, anonymously when public is set
func (g *HTTPGateway) ListItems(ctx context.Context, itemType models.CatalogType, public bool) ([]*models.CatalogItem, error) {
	query := url.Values{}
	if itemType != "" {
		query.Set("type", string(itemType))
	}

	var dtos []itemDTO
	err := g.client.Do(ctx, httpclient.Request{
		Method: http.MethodGet,
		Path:   pathProducts,
		Query:  query,
		Public: public,
	}, &dtos)
	if err != nil {
		return nil, err
	}
	return toItems(dtos)
}

func (g *HTTPGateway) GetItem(ctx context.Context, id string) (*models.CatalogItem, error) {
	var dto itemDTO
	if err := g.client.Get(ctx, pathProducts+"/"+url.PathEscape(id), nil, &dto); err != nil {
		return nil, err
	}
	return dto.toModel()
}

func (g *HTTPGateway) CreateItem(ctx context.Context, item *models.CatalogItem) (*models.CatalogItem, error) {
	var dto itemDTO
	if err := g.client.Post(ctx, pathProducts, newItemPayload(item), &dto); err != nil {
		return nil, err
	}
	return dto.toModel()
}

func (g *HTTPGateway) UpdateItem(ctx context.Context, id string, item *models.CatalogItem) (*models.CatalogItem, error) {
	var dto itemDTO
	if err := g.client.Put(ctx, pathProducts+"/"+url.PathEscape(id), newItemPayload(item), &dto); err != nil {
		return nil, err
	}
	return dto.toModel()
}

func (g *HTTPGateway) DeleteItem(ctx context.Context, id string) error {
	return g.client.Delete(ctx, pathProducts+"/"+url.PathEscape(id))
}

// ListCategories fetches categories, anonymously when public is set
func (g *HTTPGateway) ListCategories(ctx context.Context, public bool) ([]*models.Category, error) {
	var categories []*models.Category
	err := g.client.Do(ctx, httpclient.Request{
		Method: http.MethodGet,
		Path:   pathCategories,
		Public: public,
	}, &categories)
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (g *HTTPGateway) CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	var created models.Category
	if err := g.client.Post(ctx, pathCategories, category, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (g *HTTPGateway) UpdateCategory(ctx context.Context, id string, category *models.Category) (*models.Category, error) {
	var updated models.Category
	if err := g.client.Put(ctx, pathCategories+"/"+url.PathEscape(id), category, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (g *HTTPGateway) DeleteCategory(ctx context.Context, id string) error {
	return g.client.Delete(ctx, pathCategories+"/"+url.PathEscape(id))
}

func (g *HTTPGateway) ListParameters(ctx context.Context, testID string) ([]*models.Parameter, error) {
	query := url.Values{}
	if testID != "" {
		query.Set("testId", testID)
	}

	var parameters []*models.Parameter
	if err := g.client.Get(ctx, pathParameters, query, &parameters); err != nil {
		return nil, err
	}
	return parameters, nil
}

func (g *HTTPGateway) CreateParameter(ctx context.Context, parameter *models.Parameter) (*models.Parameter, error) {
	var created models.Parameter
	if err := g.client.Post(ctx, pathParameters, parameter, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (g *HTTPGateway) UpdateParameter(ctx context.Context, id string, parameter *models.Parameter) (*models.Parameter, error) {
	var updated models.Parameter
	if err := g.client.Put(ctx, pathParameters+"/"+url.PathEscape(id), parameter, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (g *HTTPGateway) DeleteParameter(ctx context.Context, id string) error {
	return g.client.Delete(ctx, pathParameters+"/"+url.PathEscape(id))
}
