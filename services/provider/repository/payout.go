package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redtestlab/portal/internal/pkg/constants"
	"github.com/redtestlab/portal/internal/pkg/database"
	"github.com/redtestlab/portal/internal/pkg/models"
)

// ProviderRepo implements the provider repository on Redis
type ProviderRepo struct {
	redisClient *database.RedisClient
	lockTTL     time.Duration
}

// NewProviderRepository creates a new provider repository
func NewProviderRepository(cfg *models.Config, redisClient *database.RedisClient) *ProviderRepo {
	return &ProviderRepo{
		redisClient: redisClient,
		lockTTL:     cfg.Locks.PayoutTTL,
	}
}

func (r *ProviderRepo) AcquirePayoutLock(ctx context.Context, providerID, owner string) (bool, error) {
	ok, err := r.redisClient.AcquireLock(ctx, fmt.Sprintf(constants.KeyPayoutLock, providerID), owner, r.lockTTL)
	if err != nil {
		return false, fmt.Errorf("failed to acquire payout lock: %w", err)
	}
	return ok, nil
}

func (r *ProviderRepo) ReleasePayoutLock(ctx context.Context, providerID, owner string) error {
	if err := r.redisClient.ReleaseLock(ctx, fmt.Sprintf(constants.KeyPayoutLock, providerID), owner); err != nil {
		return fmt.Errorf("failed to release payout lock: %w", err)
	}
	return nil
}
