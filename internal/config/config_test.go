package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("REMOTE_API_BASE_URL", "https://api.example.com/")
}

func TestFromEnv_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "")
	t.Setenv("REMOTE_API_TIMEOUT", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_MAX_CONNS", "")
	t.Setenv("DB_MIN_CONNS", "")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "https://api.example.com", cfg.RemoteAPIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.RemoteAPITimeout)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.AllowedOrigins)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, 10, cfg.DBMaxConns)
	assert.Equal(t, 2, cfg.DBMinConns)
	assert.False(t, cfg.R2.Enabled())
}

func TestFromEnv_PoolSizes(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_MAX_CONNS", "20")
	t.Setenv("DB_MIN_CONNS", "4")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.DBMaxConns)
	assert.Equal(t, 4, cfg.DBMinConns)

	t.Setenv("DB_MAX_CONNS", "-1")
	_, err = FromEnv()
	assert.Error(t, err)

	t.Setenv("DB_MAX_CONNS", "2")
	t.Setenv("DB_MIN_CONNS", "5")
	_, err = FromEnv()
	assert.Error(t, err)
}

func TestFromEnv_MissingSecret(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_SECRET", "")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestFromEnv_InvalidRemoteURL(t *testing.T) {
	setRequired(t)
	t.Setenv("REMOTE_API_BASE_URL", "not a url")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestFromEnv_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "9090")
	t.Setenv("REMOTE_API_TIMEOUT", "3s")
	t.Setenv("ALLOWED_ORIGINS", "https://admin.example.com, https://ops.example.com")
	t.Setenv("R2_ENDPOINT", "https://r2.example.com")
	t.Setenv("R2_ACCESS_KEY", "ak")
	t.Setenv("R2_SECRET_KEY", "sk")
	t.Setenv("R2_BUCKET_NAME", "menus")
	t.Setenv("R2_PUBLIC_BASE_URL", "https://cdn.example.com/")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 3*time.Second, cfg.RemoteAPITimeout)
	assert.Equal(t, []string{"https://admin.example.com", "https://ops.example.com"}, cfg.AllowedOrigins)
	assert.True(t, cfg.R2.Enabled())
	assert.Equal(t, "https://cdn.example.com", cfg.R2.PublicBaseURL)
}
