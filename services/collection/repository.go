package collection

import (
	"context"
	"errors"

	"github.com/redtestlab/portal/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/redtestlab/portal/services/collection CollectionRepo

// ErrBookingNotCached is returned when a booking is not in the agent's cache
var ErrBookingNotCached = errors.New("booking not in agent cache")

// CollectionRepo keeps the per-agent booking cache and the per-booking
// in-flight locks
type CollectionRepo interface {
	ReplaceAgentBookings(ctx context.Context, agentID string, bookings []*models.Booking) error
	GetAgentBooking(ctx context.Context, agentID, bookingID string) (*models.Booking, error)
	SaveAgentBooking(ctx context.Context, agentID string, booking *models.Booking) error

	// AcquireActionLock reports false when another action for the booking is running
	AcquireActionLock(ctx context.Context, bookingID, owner string) (bool, error)
	ReleaseActionLock(ctx context.Context, bookingID, owner string) error
}
