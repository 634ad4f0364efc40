package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redtestlab/portal/internal/pkg/constants"
	"github.com/redtestlab/portal/internal/pkg/database"
	"github.com/redtestlab/portal/internal/pkg/middleware"
	"github.com/redtestlab/portal/internal/pkg/models"
)

// SessionRepo keeps portal sessions in Redis
type SessionRepo struct {
	redisClient *database.RedisClient
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(redisClient *database.RedisClient) *SessionRepo {
	return &SessionRepo{redisClient: redisClient}
}

// SaveSession stores session until ttl elapses
func (r *SessionRepo) SaveSession(ctx context.Context, session *models.Session, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	key := fmt.Sprintf(constants.KeySession, session.ID)
	if err := r.redisClient.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// GetSession loads a session, returning middleware.ErrSessionNotFound once
// it expired or was deleted
func (r *SessionRepo) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	data, err := r.redisClient.Get(ctx, fmt.Sprintf(constants.KeySession, sessionID))
	if err != nil {
		if errors.Is(err, database.ErrKeyNotFound) {
			return nil, middleware.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

// DeleteSession removes a session
func (r *SessionRepo) DeleteSession(ctx context.Context, sessionID string) error {
	if err := r.redisClient.Delete(ctx, fmt.Sprintf(constants.KeySession, sessionID)); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
