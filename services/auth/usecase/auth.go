package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/redtestlab/portal/internal/pkg/apperrors"
	"github.com/redtestlab/portal/internal/pkg/jwt"
	"github.com/redtestlab/portal/internal/pkg/logger"
	"github.com/redtestlab/portal/internal/pkg/models"
	"github.com/redtestlab/portal/internal/utils"
)

// Login signs in to the lab API as role and opens a portal session
func (uc *AuthUC) Login(ctx context.Context, role models.Role, req *models.LoginRequest) (*models.AuthResponse, error) {
	if !role.IsValid() {
		return nil, apperrors.NotFound("Unknown portal %q", role)
	}

	creds, err := normalizeCredentials(req)
	if err != nil {
		return nil, err
	}

	upstream, err := uc.authGW.Login(ctx, role, creds)
	if err != nil {
		uc.logger.Warn("Lab API login failed",
			logger.String("role", string(role)),
			logger.Err(err))
		return nil, err
	}

	now := uc.now()
	session := &models.Session{
		ID:            uuid.New().String(),
		Role:          role,
		SubjectID:     upstream.User.ID,
		DisplayName:   upstream.User.Name,
		UpstreamToken: upstream.Token,
		CreatedAt:     now,
		ExpiresAt:     now.Add(uc.sessionTTL),
	}

	if err := uc.authRepo.SaveSession(ctx, session, uc.sessionTTL); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	token, expiresAt, err := jwt.GenerateToken(session, uc.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	uc.logger.Info("Portal session opened",
		logger.String("role", string(role)),
		logger.String("subject_id", session.SubjectID),
		logger.String("session_id", session.ID))

	return &models.AuthResponse{
		Token:     token,
		SubjectID: session.SubjectID,
		Role:      role,
		ExpiresAt: expiresAt,
	}, nil
}

// Logout closes a portal session; closing an unknown session is not an error
func (uc *AuthUC) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return apperrors.New(apperrors.ErrUnauthorized, "Please log in again")
	}
	if err := uc.authRepo.DeleteSession(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to close session: %w", err)
	}
	return nil
}

func normalizeCredentials(req *models.LoginRequest) (*models.LoginRequest, error) {
	creds := &models.LoginRequest{
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: req.Password,
	}

	if creds.Password == "" {
		return nil, apperrors.Validation("Password is required")
	}

	switch {
	case creds.Email != "":
		if !utils.IsValidEmail(creds.Email) {
			return nil, apperrors.Validation("Please enter a valid email address")
		}
	case strings.TrimSpace(req.Phone) != "":
		phone, err := utils.NormalizePhone(req.Phone)
		if err != nil {
			if errors.Is(err, utils.ErrInvalidPhone) {
				return nil, apperrors.Validation("Please enter a valid 10 digit mobile number")
			}
			return nil, err
		}
		creds.Phone = phone
	default:
		return nil, apperrors.Validation("Email or phone is required")
	}

	return creds, nil
}
