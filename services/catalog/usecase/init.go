package usecase

import (
	"github.com/redtestlab/portal/internal/pkg/logger"
	"github.com/redtestlab/portal/services/catalog"
)

// CatalogUC implements the catalog use case interface
type CatalogUC struct {
	catalogGW catalog.CatalogGW
	logger    *logger.ZapLogger
}

// NewCatalogUC creates a new catalog use case
func NewCatalogUC(catalogGW catalog.CatalogGW, log *logger.ZapLogger) *CatalogUC {
	return &CatalogUC{
		catalogGW: catalogGW,
		logger:    log,
	}
}
