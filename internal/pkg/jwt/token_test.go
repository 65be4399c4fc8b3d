package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prospecta/backend/internal/pkg/models"
)

func testJWTConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:          "test-secret",
		Expiration:      60,
		AdminExpiration: 120,
		Issuer:          "prospecta-test",
	}
}

func TestGenerateUserToken(t *testing.T) {
	cfg := testJWTConfig()

	token, expiresAt, err := GenerateUserToken("123456789", cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	now := time.Now().Unix()
	assert.Greater(t, expiresAt, now)
	assert.LessOrEqual(t, expiresAt, now+60*60+1)

	claims, err := ValidateToken(token, cfg.Secret)
	require.NoError(t, err)
	assert.Equal(t, "123456789", claims["phone"])
	assert.Equal(t, "prospecta-test", claims["iss"])
	_, hasAdmin := claims["admin"]
	assert.False(t, hasAdmin)
}

func TestGenerateAdminToken(t *testing.T) {
	cfg := testJWTConfig()

	token, _, err := GenerateAdminToken(cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(token, cfg.Secret)
	require.NoError(t, err)
	assert.Equal(t, true, claims["admin"])
	_, hasPhone := claims["phone"]
	assert.False(t, hasPhone)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := testJWTConfig()

	token, _, err := GenerateUserToken("123456789", cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(token, "other-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Expiration = -1

	token, _, err := GenerateUserToken("123456789", cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(token, cfg.Secret)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Garbage(t *testing.T) {
	claims, err := ValidateToken("not.a.token", "test-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
