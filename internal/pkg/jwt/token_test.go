package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmfalves/sentinela/internal/pkg/models"
)

var testJWTConfig = models.JWTConfig{
	Secret:     "test-secret",
	Expiration: 60,
	Issuer:     "sentinela-test",
}

func TestGenerateAndValidateToken(t *testing.T) {
	operativeID := uuid.New()

	token, expiresAt, err := GenerateToken(operativeID, models.RoleCommand, testJWTConfig)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := ValidateToken(token, testJWTConfig.Secret)
	require.NoError(t, err)
	assert.Equal(t, operativeID.String(), (*claims)["user_id"])
	assert.Equal(t, "command", (*claims)["role"])
	assert.Equal(t, "sentinela-test", (*claims)["iss"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := GenerateToken(uuid.New(), models.RoleOperational, testJWTConfig)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")

	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := testJWTConfig
	cfg.Expiration = -1

	token, _, err := GenerateToken(uuid.New(), models.RoleOperational, cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, cfg.Secret)

	assert.Error(t, err)
}
