package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks the given keys for the test; Load treats an empty value as
// unset, so defaults apply regardless of the developer's shell
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t,
		"APP_PORT",
		"AUTH_ADMIN_EMAIL",
		"AUTH_GENERIC_PASSWORD",
		"AUTH_SIMULATED_LATENCY",
		"PRICING_TAX_RATE",
		"PRICING_FREE_SHIPPING_THRESHOLD",
		"PRICING_FLAT_SHIPPING_FEE",
	)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "admin@example.com", cfg.Auth.AdminEmail)
	assert.Equal(t, "password", cfg.Auth.GenericPassword)
	assert.Equal(t, time.Second, cfg.Auth.SimulatedLatency)
	assert.InDelta(t, 0.08, cfg.Pricing.TaxRate, 0.0001)
	assert.InDelta(t, 100, cfg.Pricing.FreeShippingThreshold, 0.0001)
	assert.InDelta(t, 12.99, cfg.Pricing.FlatShippingFee, 0.0001)
}

func TestLoadRespectsEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("PRICING_TAX_RATE", "0.1")
	t.Setenv("AUTH_SIMULATED_LATENCY", "250ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.InDelta(t, 0.1, cfg.Pricing.TaxRate, 0.0001)
	assert.Equal(t, 250*time.Millisecond, cfg.Auth.SimulatedLatency)
}

func TestValidateRejectsShortJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "too-short")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidateRejectsNegativeTaxRate(t *testing.T) {
	t.Setenv("PRICING_TAX_RATE", "-0.05")

	_, err := Load()
	assert.Error(t, err)
}

func TestGetDatabaseDSN(t *testing.T) {
	clearEnv(t, "DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD", "DB_SSL_MODE")

	cfg, err := Load()
	require.NoError(t, err)

	dsn := cfg.GetDatabaseDSN()
	assert.Contains(t, dsn, "host=localhost")
	assert.Contains(t, dsn, "dbname=storefront_db")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestGetRedisAddr(t *testing.T) {
	clearEnv(t, "REDIS_HOST", "REDIS_PORT")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())
}
