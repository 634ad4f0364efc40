package provider

import (
	"context"

	"github.com/redtestlab/portal/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/redtestlab/portal/services/provider ProviderGW

// ProviderGW defines the lab API calls of the lab portal
type ProviderGW interface {
	GetProfile(ctx context.Context, providerID string) (*models.ServiceProvider, error)
	UpdateProfile(ctx context.Context, providerID string, update *models.ProfileUpdate) (*models.ServiceProvider, error)

	ListPrescriptions(ctx context.Context, providerID string) ([]*models.Prescription, error)
	UpdatePrescriptionStatus(ctx context.Context, prescriptionID string, update *models.PrescriptionStatusUpdate) (*models.Prescription, error)

	ListPayouts(ctx context.Context, providerID string) ([]*models.Payout, error)
	CreatePayout(ctx context.Context, req *models.PayoutRequest) (*models.Payout, error)
}
