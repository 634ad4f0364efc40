package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/redtestlab/portal/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret-key-for-jwt-signing",
			Expiration: 60,
			Issuer:     "redlab-portal-test",
		},
	}
}

func newSession(role models.Role, ttl time.Duration) *models.Session {
	now := time.Now()
	return &models.Session{
		ID:        "sess-1",
		Role:      role,
		SubjectID: "agent-7",
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	roles := []models.Role{models.RoleAdmin, models.RoleDelivery, models.RoleUser, models.RoleService}
	cfg := getTestConfig()

	for _, role := range roles {
		t.Run(string(role), func(t *testing.T) {
			session := newSession(role, time.Hour)

			token, expiresAt, err := GenerateToken(session, cfg)
			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.Equal(t, session.ExpiresAt.Unix(), expiresAt)

			claims, err := ValidateToken(token, cfg.JWT.Secret)
			require.NoError(t, err)
			assert.Equal(t, "sess-1", claims.SessionID)
			assert.Equal(t, "agent-7", claims.SubjectID)
			assert.Equal(t, role, claims.Role)
			assert.Equal(t, cfg.JWT.Issuer, claims.Issuer)
			assert.InDelta(t, time.Hour.Seconds(), ExpiresIn(claims, time.Now()).Seconds(), 5)
		})
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := GenerateToken(newSession(models.RoleAdmin, time.Hour), getTestConfig())
	require.NoError(t, err)

	claims, err := ValidateToken(token, "another-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Expired(t *testing.T) {
	session := newSession(models.RoleUser, -time.Minute)

	token, _, err := GenerateToken(session, getTestConfig())
	require.NoError(t, err)

	_, err = ValidateToken(token, getTestConfig().JWT.Secret)
	assert.Error(t, err)
}

func TestValidateToken_Malformed(t *testing.T) {
	_, err := ValidateToken("not.a.token", "secret")
	assert.Error(t, err)
}

func TestValidateToken_MissingSession(t *testing.T) {
	cfg := getTestConfig()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(cfg.JWT.Secret))
	require.NoError(t, err)

	_, err = ValidateToken(signed, cfg.JWT.Secret)
	assert.Error(t, err)
}

func TestValidateToken_RejectsNoneAlgorithm(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{SessionID: "s", Role: models.RoleAdmin})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateToken(signed, "secret")
	assert.Error(t, err)
}
