package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/redtestlab/portal/internal/pkg/apperrors"
	"github.com/redtestlab/portal/internal/pkg/logger"
	"github.com/redtestlab/portal/internal/pkg/models"
	"github.com/redtestlab/portal/internal/pkg/requestcontext"
	"github.com/redtestlab/portal/internal/utils"
)

func (uc *ProviderUC) ListPayouts(ctx context.Context, providerID string) ([]*models.Payout, error) {
	return uc.providerGW.ListPayouts(ctx, providerID)
}

// RequestPayout withdraws coins from the lab's balance. One request per lab
// runs at a time and the amount is checked against the current balance.
func (uc *ProviderUC) RequestPayout(ctx context.Context, providerID string, req *models.PayoutRequest) (*models.Payout, error) {
	if req.Coins <= 0 {
		return nil, apperrors.Validation("Coins must be greater than zero")
	}

	// the balance check and the write finish before the lock can expire
	if uc.lockTTL > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.lockTTL)
		defer cancel()
	}

	owner := requestcontext.GetRequestID(ctx)
	if owner == "" {
		owner = uuid.NewString()
	}

	acquired, err := uc.providerRepo.AcquirePayoutLock(ctx, providerID, owner)
	if err != nil {
		return nil, fmt.Errorf("payout lock: %w", err)
	}
	if !acquired {
		return nil, apperrors.Conflict("A payout request is already being processed")
	}
	defer func() {
		if err := uc.providerRepo.ReleasePayoutLock(context.WithoutCancel(ctx), providerID, owner); err != nil {
			uc.logger.Warn("Failed to release payout lock",
				logger.String("provider_id", providerID),
				logger.Err(err))
		}
	}()

	profile, err := uc.providerGW.GetProfile(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if req.Coins > profile.CoinBalance {
		return nil, apperrors.Validation("You can withdraw at most %d coins", profile.CoinBalance)
	}

	payout, err := uc.providerGW.CreatePayout(ctx, &models.PayoutRequest{
		ProviderID: providerID,
		Coins:      req.Coins,
		Note:       utils.SanitizeString(req.Note),
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Payout requested",
		logger.String("provider_id", providerID),
		logger.Int64("coins", req.Coins),
		logger.String("payout_id", payout.ID))
	return payout, nil
}
