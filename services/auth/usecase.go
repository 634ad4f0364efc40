package auth

import (
	"context"

	"github.com/redtestlab/portal/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/redtestlab/portal/services/auth AuthUC

// AuthUC defines the interface for portal login and logout
type AuthUC interface {
	Login(ctx context.Context, role models.Role, req *models.LoginRequest) (*models.AuthResponse, error)
	Logout(ctx context.Context, sessionID string) error
}
