package collection

import (
	"context"

	"github.com/redtestlab/portal/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/redtestlab/portal/services/collection CollectionUC

// CollectionUC drives the OTP-gated sample collection workflow of a delivery agent
type CollectionUC interface {
	// ListAssigned refreshes the agent's booking cache from the lab API.
	// An empty status returns every booking.
	ListAssigned(ctx context.Context, agentID string, status models.CollectionStatus) ([]*models.Booking, error)
	GetBooking(ctx context.Context, agentID, bookingID string) (*models.Booking, error)

	SendOTP(ctx context.Context, agentID, bookingID string) (*models.CollectionResult, error)
	ResendOTP(ctx context.Context, agentID, bookingID string) (*models.CollectionResult, error)
	VerifyOTP(ctx context.Context, agentID, bookingID, otp string) (*models.CollectionResult, error)
}
