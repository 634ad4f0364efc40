package gateway

import (
	httpclient "github.com/redtestlab/portal/internal/pkg/http"
	"github.com/redtestlab/portal/services/catalog"
)

// NewCatalogGW creates the catalog gateway
func NewCatalogGW(client *httpclient.Client) catalog.CatalogGW {
	return NewHTTPGateway(client)
}
