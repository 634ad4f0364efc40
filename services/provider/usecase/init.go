package usecase

import (
	"time"

	"github.com/redtestlab/portal/internal/pkg/logger"
	"github.com/redtestlab/portal/internal/pkg/models"
	"github.com/redtestlab/portal/services/provider"
)

// ProviderUC implements the provider use case interface
type ProviderUC struct {
	providerRepo provider.ProviderRepo
	providerGW   provider.ProviderGW
	lockTTL      time.Duration
	logger       *logger.ZapLogger
}

// NewProviderUC creates a new provider use case
func NewProviderUC(
	cfg *models.Config,
	providerRepo provider.ProviderRepo,
	providerGW provider.ProviderGW,
	log *logger.ZapLogger,
) *ProviderUC {
	return &ProviderUC{
		providerRepo: providerRepo,
		providerGW:   providerGW,
		lockTTL:      cfg.Locks.PayoutTTL,
		logger:       log,
	}
}
