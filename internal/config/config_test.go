package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://project.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "anon-key")
	t.Setenv("SUPABASE_SERVICE_ROLE_KEY", "service-key")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.AppPort)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.Equal(t, 30, cfg.RateLimitPerMinute)
	assert.Equal(t, 10*time.Second, cfg.ProviderTimeout)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "8080")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com,https://admin.example.com")
	t.Setenv("PROVIDER_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t,
		[]string{"https://app.example.com", "https://admin.example.com"},
		cfg.AllowedOrigins,
	)
	assert.Equal(t, 3*time.Second, cfg.ProviderTimeout)
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_ANON_KEY", "anon-key")
	t.Setenv("SUPABASE_SERVICE_ROLE_KEY", "service-key")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SUPABASE_URL")
}
