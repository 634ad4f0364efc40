package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/redtestlab/portal/internal/pkg/apperrors"
	httpclient "github.com/redtestlab/portal/internal/pkg/http"
	"github.com/redtestlab/portal/internal/pkg/logger"
	"github.com/redtestlab/portal/internal/pkg/models"
	"github.com/redtestlab/portal/services/catalog"
	"github.com/redtestlab/portal/services/catalog/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*CatalogUC, *mocks.MockCatalogGW) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockCatalogGW(ctrl)
	return NewCatalogUC(gw, logger.NewNopLogger()), gw
}

func TestCreateItem_InvalidNeverReachesLabAPI(t *testing.T) {
	uc, gw := setup(t)
	gw.EXPECT().CreateItem(gomock.Any(), gomock.Any()).Times(0)

	_, err := uc.CreateItem(context.Background(), &models.CatalogItem{Name: "", Category: models.Category{ID: "c1"}})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = uc.CreateItem(context.Background(), &models.CatalogItem{Name: "CBC"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = uc.CreateItem(context.Background(), &models.CatalogItem{Name: "Lipid", Category: models.Category{Name: "Blood"}, Price: 100})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestUpdateItem_CategoryWithoutIDNeverReachesLabAPI(t *testing.T) {
	uc, gw := setup(t)
	gw.EXPECT().UpdateItem(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := uc.UpdateItem(context.Background(), "p1", &models.CatalogItem{Name: "Lipid", Category: models.Category{Name: "Blood"}, Price: 100})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreateItem_Normalizes(t *testing.T) {
	uc, gw := setup(t)

	gw.EXPECT().CreateItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, item *models.CatalogItem) (*models.CatalogItem, error) {
			assert.Equal(t, "Lipid Profile", item.Name)
			assert.Equal(t, models.CatalogTest, item.Type)
			assert.Equal(t, []string{"heart", "cholesterol"}, item.Tags)
			created := *item
			created.ID = "p1"
			return &created, nil
		})

	created, err := uc.CreateItem(context.Background(), &models.CatalogItem{
		Name:     "  Lipid \t Profile ",
		Type:     "test",
		Category: models.Category{ID: "c1"},
		Tags:     []string{" heart", "", "cholesterol "},
		Price:    600,
	})

	require.NoError(t, err)
	assert.Equal(t, "p1", created.ID)
}

func TestUpdateItem(t *testing.T) {
	uc, gw := setup(t)
	item := &models.CatalogItem{Name: "CBC", Category: models.Category{ID: "c1"}, Price: 300}

	gw.EXPECT().UpdateItem(gomock.Any(), "p1", item).Return(item, nil)

	_, err := uc.UpdateItem(context.Background(), "p1", item)
	require.NoError(t, err)

	_, err = uc.UpdateItem(context.Background(), " ", item)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestListItems_Filters(t *testing.T) {
	uc, gw := setup(t)

	gw.EXPECT().ListItems(gomock.Any(), models.CatalogTest, false).Return([]*models.CatalogItem{
		{Name: "CBC", Category: models.Category{Name: "Blood"}},
		{Name: "Urine Routine", Category: models.Category{Name: "Urine"}},
	}, nil)

	items, err := uc.ListItems(context.Background(), catalog.ItemQuery{Type: models.CatalogTest, Term: "blood"})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "CBC", items[0].Name)
}

func TestBrowsePackages_DropsTests(t *testing.T) {
	uc, gw := setup(t)

	gw.EXPECT().ListItems(gomock.Any(), models.CatalogPackage, true).Return([]*models.CatalogItem{
		{Name: "Full Body", Type: models.CatalogPackage},
		{Name: "Full Blood Count", Type: models.CatalogTest},
		{Name: "Fit India", Type: ""},
	}, nil)

	items, err := uc.BrowsePackages(context.Background(), "full")

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Full Body", items[0].Name)
}

func TestListItems_MatchesCategoryGivenByID(t *testing.T) {
	uc, gw := setup(t)

	gw.EXPECT().ListItems(gomock.Any(), models.CatalogTest, false).Return([]*models.CatalogItem{
		{Name: "CBC", Category: models.Category{ID: "c1"}},
		{Name: "Urine Routine", Category: models.Category{ID: "c2", Name: "Urine"}},
	}, nil)
	gw.EXPECT().ListCategories(gomock.Any(), false).Return([]*models.Category{
		{ID: "c1", Name: "Blood"},
		{ID: "c2", Name: "Urine"},
	}, nil)

	items, err := uc.ListItems(context.Background(), catalog.ItemQuery{Type: models.CatalogTest, Term: "blood"})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "CBC", items[0].Name)
	assert.Equal(t, "Blood", items[0].Category.Name)
}

func TestBrowsePackages_CategoryLookupUsesPublicCall(t *testing.T) {
	uc, gw := setup(t)

	gw.EXPECT().ListItems(gomock.Any(), models.CatalogPackage, true).Return([]*models.CatalogItem{
		{Name: "Heart Care", Type: models.CatalogPackage, Category: models.Category{ID: "c9"}},
	}, nil)
	gw.EXPECT().ListCategories(gomock.Any(), true).Return([]*models.Category{{ID: "c9", Name: "Cardiac"}}, nil)

	items, err := uc.BrowsePackages(context.Background(), "cardiac")

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Heart Care", items[0].Name)
}

func TestListItems_CategoryLookupFailureStillLists(t *testing.T) {
	uc, gw := setup(t)

	gw.EXPECT().ListItems(gomock.Any(), models.CatalogTest, false).Return([]*models.CatalogItem{
		{Name: "CBC", Category: models.Category{ID: "c1"}},
	}, nil)
	gw.EXPECT().ListCategories(gomock.Any(), false).Return(nil, httpclient.ErrUpstreamUnavailable)

	items, err := uc.ListItems(context.Background(), catalog.ItemQuery{Type: models.CatalogTest})

	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestBrowsePackages_LabDown(t *testing.T) {
	uc, gw := setup(t)
	gw.EXPECT().ListItems(gomock.Any(), models.CatalogPackage, true).Return(nil, httpclient.ErrUpstreamUnavailable)

	_, err := uc.BrowsePackages(context.Background(), "")
	assert.ErrorIs(t, err, httpclient.ErrUpstreamUnavailable)
}

func TestCategoriesAndParameters(t *testing.T) {
	uc, gw := setup(t)
	ctx := context.Background()

	_, err := uc.CreateCategory(ctx, &models.Category{Name: " "})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	gw.EXPECT().CreateCategory(ctx, &models.Category{Name: "Cardiac"}).Return(&models.Category{ID: "c9", Name: "Cardiac"}, nil)
	category, err := uc.CreateCategory(ctx, &models.Category{Name: " Cardiac "})
	require.NoError(t, err)
	assert.Equal(t, "c9", category.ID)

	_, err = uc.CreateParameter(ctx, &models.Parameter{Name: "HDL"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	gw.EXPECT().ListParameters(ctx, "t1").Return([]*models.Parameter{{ID: "x1", Name: "HDL"}}, nil)
	params, err := uc.ListParameters(ctx, " t1 ")
	require.NoError(t, err)
	assert.Len(t, params, 1)

	gw.EXPECT().DeleteParameter(ctx, "x1").Return(nil)
	require.NoError(t, uc.DeleteParameter(ctx, "x1"))
}
