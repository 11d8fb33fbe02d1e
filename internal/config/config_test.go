package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/fidelopez89/cashea-backend-relojteca/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("RELAY_CASHEA__API_KEY", "cashea-key")
	t.Setenv("RELAY_SHOPIFY__STORE", "relojteca")
	t.Setenv("RELAY_SHOPIFY__ACCESS_TOKEN", "shpat_test")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Primary.Env)
	assert.False(t, cfg.Primary.IsDevelopment())
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 25*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "https://external.cashea.app", cfg.Cashea.BaseURL)
	assert.Equal(t, 8*time.Second, cfg.Cashea.Timeout)
	assert.False(t, cfg.Cashea.InsecureSkipVerify)
	assert.Equal(t, "2024-01", cfg.Shopify.APIVersion)
	assert.Equal(t, "https://relojteca.myshopify.com", cfg.Shopify.StoreURL())
}

func TestLoadConfig_PrefixedOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("RELAY_PRIMARY__ENV", "development")
	t.Setenv("RELAY_CASHEA__TIMEOUT", "3s")
	t.Setenv("RELAY_CASHEA__INSECURE_SKIP_VERIFY", "true")
	t.Setenv("RELAY_SHOPIFY__BASE_URL", "http://localhost:9999/")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.Primary.IsDevelopment())
	assert.Equal(t, 3*time.Second, cfg.Cashea.Timeout)
	assert.True(t, cfg.Cashea.InsecureSkipVerify)
	assert.Equal(t, "http://localhost:9999", cfg.Shopify.StoreURL())
}

func TestLoadConfig_LegacyVariableNames(t *testing.T) {
	t.Setenv("CASHEA_API_KEY", "legacy-key")
	t.Setenv("SHOPIFY_STORE", "legacy-store")
	t.Setenv("SHOPIFY_ACCESS_TOKEN", "legacy-token")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "legacy-key", cfg.Cashea.APIKey)
	assert.Equal(t, "legacy-store", cfg.Shopify.Store)
	assert.Equal(t, "legacy-token", cfg.Shopify.AccessToken)
}

func TestLoadConfig_PrefixedWinsOverLegacy(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CASHEA_API_KEY", "legacy-key")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "cashea-key", cfg.Cashea.APIKey)
}

func TestLoadConfig_MissingSecrets(t *testing.T) {
	t.Setenv("RELAY_SHOPIFY__STORE", "relojteca")
	t.Setenv("RELAY_CASHEA__API_KEY", "")
	t.Setenv("CASHEA_API_KEY", "")

	_, err := config.LoadConfig()
	require.Error(t, err)
}

func TestLoadConfig_RequestTimeoutMustCoverOutboundCalls(t *testing.T) {
	tests := []struct {
		name           string
		requestTimeout string
		wantErr        bool
	}{
		{"shorter than shopify alone", "100ms", true},
		{"equal to both calls", "16s", true},
		{"longer than both calls", "17s", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv("RELAY_SERVER__REQUEST_TIMEOUT", tt.requestTimeout)

			cfg, err := config.LoadConfig()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "server.request_timeout")
				return
			}
			require.NoError(t, err)
			assert.Greater(t, cfg.Server.RequestTimeout, cfg.Cashea.Timeout+cfg.Shopify.Timeout)
		})
	}
}

func TestLoggerConfig_NewLogger(t *testing.T) {
	logger := config.LoggerConfig{Level: "debug", Format: "text"}.NewLogger()
	require.NotNil(t, logger)
	assert.True(t, logger.Enabled(t.Context(), slog.LevelDebug))

	logger = config.LoggerConfig{Level: "warn"}.NewLogger()
	assert.False(t, logger.Enabled(t.Context(), slog.LevelInfo))
}
