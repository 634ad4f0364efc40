package collection

import (
	"context"

	"github.com/redtestlab/portal/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/redtestlab/portal/services/collection CollectionGW

// CollectionGW reaches the lab API and the event bus
type CollectionGW interface {
	// HTTP Gateway
	FetchAssignedBookings(ctx context.Context) ([]*models.Booking, error)
	SendOTP(ctx context.Context, req *models.SendOTPRequest) error
	VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest) error

	// NATS Gateway
	PublishStatusChanged(ctx context.Context, event *models.CollectionStatusEvent) error
}
