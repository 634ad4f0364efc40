package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redtestlab/portal/internal/pkg/constants"
	"github.com/redtestlab/portal/internal/pkg/database"
	"github.com/redtestlab/portal/internal/pkg/models"
	"github.com/redtestlab/portal/services/collection"
)

// CollectionRepo implements the collection repository on Redis
type CollectionRepo struct {
	redisClient *database.RedisClient
	cacheTTL    time.Duration
	lockTTL     time.Duration
}

// NewCollectionRepository creates a new collection repository
func NewCollectionRepository(cfg *models.Config, redisClient *database.RedisClient) *CollectionRepo {
	return &CollectionRepo{
		redisClient: redisClient,
		cacheTTL:    cfg.Collection.CacheTTL,
		lockTTL:     cfg.Locks.CollectionTTL,
	}
}

// ReplaceAgentBookings swaps the agent cache for bookings
func (r *CollectionRepo) ReplaceAgentBookings(ctx context.Context, agentID string, bookings []*models.Booking) error {
	fields := make(map[string]interface{}, len(bookings))
	for _, booking := range bookings {
		data, err := json.Marshal(booking)
		if err != nil {
			return fmt.Errorf("failed to marshal booking %s: %w", booking.ID, err)
		}
		fields[booking.ID] = data
	}

	key := fmt.Sprintf(constants.KeyAgentBookings, agentID)
	if err := r.redisClient.ReplaceHash(ctx, key, fields, r.cacheTTL); err != nil {
		return fmt.Errorf("failed to cache bookings: %w", err)
	}
	return nil
}

// GetAgentBooking reads one cached booking
func (r *CollectionRepo) GetAgentBooking(ctx context.Context, agentID, bookingID string) (*models.Booking, error) {
	key := fmt.Sprintf(constants.KeyAgentBookings, agentID)

	data, err := r.redisClient.HGet(ctx, key, bookingID)
	if err != nil {
		if errors.Is(err, database.ErrKeyNotFound) {
			return nil, collection.ErrBookingNotCached
		}
		return nil, fmt.Errorf("failed to read cached booking: %w", err)
	}

	var booking models.Booking
	if err := json.Unmarshal([]byte(data), &booking); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached booking: %w", err)
	}
	return &booking, nil
}

// SaveAgentBooking writes one booking back to the agent cache
func (r *CollectionRepo) SaveAgentBooking(ctx context.Context, agentID string, booking *models.Booking) error {
	data, err := json.Marshal(booking)
	if err != nil {
		return fmt.Errorf("failed to marshal booking %s: %w", booking.ID, err)
	}

	key := fmt.Sprintf(constants.KeyAgentBookings, agentID)
	if err := r.redisClient.HSet(ctx, key, booking.ID, data, r.cacheTTL); err != nil {
		return fmt.Errorf("failed to cache booking: %w", err)
	}
	return nil
}

// AcquireActionLock takes the in-flight lock of a booking
func (r *CollectionRepo) AcquireActionLock(ctx context.Context, bookingID, owner string) (bool, error) {
	ok, err := r.redisClient.AcquireLock(ctx, fmt.Sprintf(constants.KeyCollectionLock, bookingID), owner, r.lockTTL)
	if err != nil {
		return false, fmt.Errorf("failed to acquire collection lock: %w", err)
	}
	return ok, nil
}

// ReleaseActionLock frees the in-flight lock if owner still holds it
func (r *CollectionRepo) ReleaseActionLock(ctx context.Context, bookingID, owner string) error {
	if err := r.redisClient.ReleaseLock(ctx, fmt.Sprintf(constants.KeyCollectionLock, bookingID), owner); err != nil {
		return fmt.Errorf("failed to release collection lock: %w", err)
	}
	return nil
}
