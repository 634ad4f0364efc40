package auth

import (
	"context"
	"time"

	"github.com/redtestlab/portal/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/redtestlab/portal/services/auth AuthRepo

// AuthRepo stores portal sessions
type AuthRepo interface {
	SaveSession(ctx context.Context, session *models.Session, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
