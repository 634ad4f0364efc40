package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/redtestlab/portal/internal/pkg/apperrors"
	"github.com/redtestlab/portal/internal/pkg/models"
	"github.com/redtestlab/portal/internal/utils"
)

// GetProfile returns the lab's own profile; requestedID may be empty
func (uc *ProviderUC) GetProfile(ctx context.Context, providerID, requestedID string) (*models.ServiceProvider, error) {
	if err := ownProfile(providerID, requestedID); err != nil {
		return nil, err
	}
	return uc.providerGW.GetProfile(ctx, providerID)
}

// UpdateProfile edits the lab's own profile
func (uc *ProviderUC) UpdateProfile(ctx context.Context, providerID, requestedID string, update *models.ProfileUpdate) (*models.ServiceProvider, error) {
	if err := ownProfile(providerID, requestedID); err != nil {
		return nil, err
	}

	update.Name = utils.SanitizeString(update.Name)
	update.Address = utils.SanitizeString(update.Address)
	update.BankDetails.IFSC = strings.ToUpper(strings.TrimSpace(update.BankDetails.IFSC))

	if update.Phone != "" {
		phone, err := utils.NormalizePhone(update.Phone)
		if err != nil {
			if errors.Is(err, utils.ErrInvalidPhone) {
				return nil, apperrors.Validation("Please enter a valid 10 digit mobile number")
			}
			return nil, err
		}
		update.Phone = phone
	}

	return uc.providerGW.UpdateProfile(ctx, providerID, update)
}

func ownProfile(providerID, requestedID string) error {
	if providerID == "" {
		return apperrors.New(apperrors.ErrUnauthorized, "Please log in again")
	}
	if requestedID != "" && requestedID != providerID {
		return apperrors.Forbidden("You can only access your own profile")
	}
	return nil
}
