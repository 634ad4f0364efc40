package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/redtestlab/portal/internal/pkg/models"
)

// Claims carries the portal session reference inside the token
type Claims struct {
	SessionID string      `json:"session_id"`
	SubjectID string      `json:"subject_id"`
	Role      models.Role `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken signs a portal token for session, expiring with it
func GenerateToken(session *models.Session, cfg *models.Config) (string, int64, error) {
	claims := Claims{
		SessionID: session.ID,
		SubjectID: session.SubjectID,
		Role:      session.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.JWT.Issuer,
			Subject:   session.SubjectID,
			IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, session.ExpiresAt.Unix(), nil
}

// ValidateToken validates a portal token and returns its claims
func ValidateToken(tokenString string, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.SessionID == "" || !claims.Role.IsValid() {
		return nil, errors.New("token carries no portal session")
	}

	return claims, nil
}

// ExpiresIn is the remaining lifetime of claims at now
func ExpiresIn(claims *Claims, now time.Time) time.Duration {
	if claims.ExpiresAt == nil {
		return 0
	}
	return claims.ExpiresAt.Sub(now)
}
