package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig(t *testing.T) {
	t.Run("reads file config", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "")
		t.Setenv("GOOGLE_GEMINI_API_KEY", "")
		t.Setenv("APP_ENV", "")

		cfg, err := InitConfig()
		require.NoError(t, err)
		assert.Equal(t, "development", cfg.Mode)
		assert.Equal(t, "8080", cfg.Server.HTTPPort)
		assert.Equal(t, 90*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "gemini-1.5-flash", cfg.GenAI.Model)
		assert.Empty(t, cfg.GenAI.APIKey)
		assert.False(t, cfg.Itinerary.TrustModelHTML)
		assert.Equal(t, int64(65536), cfg.Itinerary.MaxFormBytes)
		assert.Equal(t, "9090", cfg.Observability.MetricsPort)
		assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:3000")
	})

	t.Run("api key from GEMINI_API_KEY", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "secret-key")

		cfg, err := InitConfig()
		require.NoError(t, err)
		assert.Equal(t, "secret-key", cfg.GenAI.APIKey)
	})

	t.Run("api key from legacy variable", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "")
		t.Setenv("GOOGLE_GEMINI_API_KEY", "legacy-key")

		cfg, err := InitConfig()
		require.NoError(t, err)
		assert.Equal(t, "legacy-key", cfg.GenAI.APIKey)
	})

	t.Run("mode from APP_ENV", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")

		cfg, err := InitConfig()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.Mode)
	})
}

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	applyDefaults(&cfg)

	assert.Equal(t, "development", cfg.Mode)
	assert.Equal(t, "8080", cfg.Server.HTTPPort)
	assert.Equal(t, "gemini-1.5-flash", cfg.GenAI.Model)
	assert.Equal(t, int64(64<<10), cfg.Itinerary.MaxFormBytes)
	assert.Equal(t, "trip-itinerary", cfg.Observability.ServiceName)
}
