package auth

import (
	"context"

	"github.com/redtestlab/portal/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/redtestlab/portal/services/auth AuthGW

// AuthGW defines the lab API login calls
type AuthGW interface {
	Login(ctx context.Context, role models.Role, req *models.LoginRequest) (*models.UpstreamLoginResponse, error)
}
