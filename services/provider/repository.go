package provider

import "context"

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/redtestlab/portal/services/provider ProviderRepo

// ProviderRepo holds the per-lab payout lock
type ProviderRepo interface {
	// AcquirePayoutLock reports false when a payout request of the lab is already running
	AcquirePayoutLock(ctx context.Context, providerID, owner string) (bool, error)
	ReleasePayoutLock(ctx context.Context, providerID, owner string) error
}
