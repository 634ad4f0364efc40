package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpclient "github.com/redtestlab/portal/internal/pkg/http"
	"github.com/redtestlab/portal/internal/pkg/logger"
	"github.com/redtestlab/portal/internal/pkg/models"
	"github.com/redtestlab/portal/internal/pkg/requestcontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateway(t *testing.T, handler http.HandlerFunc) *HTTPGateway {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := httpclient.NewClient(httpclient.Config{BaseURL: server.URL, Timeout: time.Second}, logger.NewNopLogger())
	return NewHTTPGateway(client)
}

func adminContext() context.Context {
	return requestcontext.WithUpstreamToken(context.Background(), "admin-token")
}

func TestHTTPGateway_ListItemsCategoryShapes(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/product", r.URL.Path)
		assert.Equal(t, "PACKAGE", r.URL.Query().Get("type"))
		assert.Equal(t, "Bearer admin-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"data":[
			{"_id":"p1","name":"Full Body","type":"PACKAGE","category":{"_id":"c1","name":"Wellness"},"tags":["fever"],"price":1999},
			{"_id":"p2","name":"Thyroid","type":"PACKAGE","category":"c2","price":499},
			{"_id":"p3","name":"Loose","type":"PACKAGE","category":null}
		]}`))
	})

	items, err := gw.ListItems(adminContext(), models.CatalogPackage, false)

	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Wellness", items[0].Category.Name)
	assert.Equal(t, []string{"fever"}, items[0].Tags)
	assert.Equal(t, "c2", items[1].Category.ID)
	assert.Empty(t, items[2].Category.ID)
}

func TestHTTPGateway_PublicListingSendsNoToken(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	})

	items, err := gw.ListItems(context.Background(), models.CatalogPackage, true)

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestHTTPGateway_PublicCategoriesSendNoToken(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/category", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"data":[{"_id":"c1","name":"Blood"}]}`))
	})

	categories, err := gw.ListCategories(context.Background(), true)

	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Blood", categories[0].Name)
}

func TestHTTPGateway_CreateItemSendsCategoryID(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "c1", body["category"])
		assert.Equal(t, "Lipid Profile", body["name"])

		_, _ = w.Write([]byte(`{"_id":"p9","name":"Lipid Profile","type":"TEST","category":{"_id":"c1","name":"Heart"},"price":600}`))
	})

	created, err := gw.CreateItem(adminContext(), &models.CatalogItem{
		Name:     "Lipid Profile",
		Type:     models.CatalogTest,
		Category: models.Category{ID: "c1", Name: "Heart"},
		Price:    600,
	})

	require.NoError(t, err)
	assert.Equal(t, "p9", created.ID)
	assert.Equal(t, "Heart", created.Category.Name)
}

func TestHTTPGateway_ParametersAndDelete(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			assert.Equal(t, "/parameter", r.URL.Path)
			assert.Equal(t, "t1", r.URL.Query().Get("testId"))
			_, _ = w.Write([]byte(`[{"_id":"x1","name":"HDL","unit":"mg/dL"}]`))
		case http.MethodDelete:
			assert.Equal(t, "/category/c1", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		}
	})

	params, err := gw.ListParameters(adminContext(), "t1")
	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Equal(t, "mg/dL", params[0].Unit)

	require.NoError(t, gw.DeleteCategory(adminContext(), "c1"))
}

func TestHTTPGateway_NotFound(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Product not found"}`))
	})

	_, err := gw.GetItem(adminContext(), "nope")

	upstreamErr, ok := httpclient.AsUpstreamError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, upstreamErr.StatusCode)
	assert.Equal(t, "Product not found", upstreamErr.Message)
}
