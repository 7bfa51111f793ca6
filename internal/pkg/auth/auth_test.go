package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "storefront-backend"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.AccessTokenExpiry = time.Hour
	cfg.Auth.AdminEmail = "admin@example.com"
	cfg.Auth.AdminPassword = "adminpass"
	cfg.Auth.GenericPassword = "password"
	cfg.Auth.BcryptCost = 4
	return cfg
}

func TestAuthenticate(t *testing.T) {
	policy, err := NewCredentialPolicy(testConfig())
	require.NoError(t, err)

	assert.Equal(t, GrantAdmin, policy.Authenticate("admin@example.com", "adminpass"))
	assert.Equal(t, GrantAdmin, policy.Authenticate("Admin@Example.COM", "adminpass"))
	assert.Equal(t, GrantUser, policy.Authenticate("anyone@example.com", "password"))
	assert.Equal(t, GrantNone, policy.Authenticate("anyone@example.com", "wrong"))
	assert.Equal(t, GrantNone, policy.Authenticate("admin@example.com", "password"))
	assert.Equal(t, GrantNone, policy.Authenticate("admin@example.com", "wrong"))
}

func TestAccessTokenRoundTrip(t *testing.T) {
	manager := NewJWTManager(testConfig())

	token, err := manager.GenerateAccessToken("user-1", "shopper@example.com", false, "sess-1")
	require.NoError(t, err)

	claims, err := manager.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "shopper@example.com", claims.Email)
	assert.False(t, claims.IsAdmin)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.Equal(t, "user:user-1", claims.Subject)
}

func TestValidateAccessTokenRejectsTamperedToken(t *testing.T) {
	manager := NewJWTManager(testConfig())

	token, err := manager.GenerateAccessToken("user-1", "shopper@example.com", false, "sess-1")
	require.NoError(t, err)

	otherCfg := testConfig()
	otherCfg.JWT.Secret = "another-secret"
	other := NewJWTManager(otherCfg)

	_, err = other.ValidateAccessToken(token)
	assert.Error(t, err)

	_, err = manager.ValidateAccessToken(token + "x")
	assert.Error(t, err)
}

func TestValidateAccessTokenRejectsExpiredToken(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.AccessTokenExpiry = -time.Minute
	manager := NewJWTManager(cfg)

	token, err := manager.GenerateAccessToken("user-1", "shopper@example.com", false, "sess-1")
	require.NoError(t, err)

	_, err = manager.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc.def.ghi", ExtractTokenFromHeader("Bearer abc.def.ghi"))
	assert.Empty(t, ExtractTokenFromHeader("abc.def.ghi"))
	assert.Empty(t, ExtractTokenFromHeader("Bearer"))
	assert.Empty(t, ExtractTokenFromHeader(""))
}
