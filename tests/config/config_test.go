package config_test

import (
	"testing"
	"time"

	"github.com/naf3/admin-console-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.NotEmpty(t, cfg.Upstream.APIBaseURL)
	assert.NotEmpty(t, cfg.Upstream.AdminBaseURL)
	assert.Equal(t, "/auth/admin/login", cfg.Upstream.LoginPath)
	assert.Equal(t, 30*time.Second, cfg.Upstream.RequestTimeoutDuration())
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Contains(t, cfg.RateLimit.WhitelistPaths, "/health")
}

func TestLoad_UpstreamEnvOverride(t *testing.T) {
	t.Setenv("UPSTREAM_API_BASE_URL", "http://localhost:9999/api")
	t.Setenv("UPSTREAM_ADMIN_BASE_URL", "http://localhost:9999/admin")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/api", cfg.Upstream.APIBaseURL)
	assert.Equal(t, "http://localhost:9999/admin", cfg.Upstream.AdminBaseURL)
}

func TestServerTimeoutDurations(t *testing.T) {
	s := config.ServerConfig{ReadTimeout: 15, WriteTimeout: 45}

	assert.Equal(t, 15*time.Second, s.ReadTimeoutDuration())
	assert.Equal(t, 45*time.Second, s.WriteTimeoutDuration())
}
