package provider

import (
	"context"

	"github.com/redtestlab/portal/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/redtestlab/portal/services/provider ProviderUC

// ProviderUC defines the interface for the lab (service provider) portal.
// providerID is always the id of the logged-in lab.
type ProviderUC interface {
	GetProfile(ctx context.Context, providerID, requestedID string) (*models.ServiceProvider, error)
	UpdateProfile(ctx context.Context, providerID, requestedID string, update *models.ProfileUpdate) (*models.ServiceProvider, error)

	ListPrescriptions(ctx context.Context, providerID string, status models.PrescriptionStatus) ([]*models.Prescription, error)
	UpdatePrescriptionStatus(ctx context.Context, providerID, prescriptionID string, update *models.PrescriptionStatusUpdate) (*models.Prescription, error)

	ListPayouts(ctx context.Context, providerID string) ([]*models.Payout, error)
	RequestPayout(ctx context.Context, providerID string, req *models.PayoutRequest) (*models.Payout, error)
}
