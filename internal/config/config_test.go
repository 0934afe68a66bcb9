package config_test

import (
	"testing"
	"time"

	"alexis/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("TOKEN_TTL", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.AppPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "alexis.db", cfg.DatabaseDSN)
	assert.Equal(t, 60*time.Minute, cfg.TokenTTL)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_GeneratesEphemeralSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	first, err := config.Load()
	require.NoError(t, err)
	second, err := config.Load()
	require.NoError(t, err)

	assert.True(t, first.EphemeralSecret)
	assert.Len(t, first.JWTSecret, 64)
	assert.NotEqual(t, first.JWTSecret, second.JWTSecret)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", "configured-secret")
	t.Setenv("TOKEN_TTL", "15m")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("APP_ENV", "production")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "configured-secret", cfg.JWTSecret)
	assert.False(t, cfg.EphemeralSecret)
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")

	_, err := config.Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported DB_DRIVER")
}
