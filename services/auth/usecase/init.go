package usecase

import (
	"time"

	"github.com/redtestlab/portal/internal/pkg/config"
	"github.com/redtestlab/portal/internal/pkg/logger"
	"github.com/redtestlab/portal/internal/pkg/models"
	"github.com/redtestlab/portal/services/auth"
)

// AuthUC implements the auth use case interface
type AuthUC struct {
	cfg        *models.Config
	authRepo   auth.AuthRepo
	authGW     auth.AuthGW
	logger     *logger.ZapLogger
	sessionTTL time.Duration
	now        func() time.Time
}

// NewAuthUC creates a new auth use case
func NewAuthUC(cfg *models.Config, authRepo auth.AuthRepo, authGW auth.AuthGW, log *logger.ZapLogger) *AuthUC {
	return &AuthUC{
		cfg:        cfg,
		authRepo:   authRepo,
		authGW:     authGW,
		logger:     log,
		sessionTTL: config.SessionTTL(cfg),
		now:        time.Now,
	}
}
