package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/rooms")
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.IsProduction)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 15*time.Minute, cfg.JWTAccessTokenTTL)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, "07:00", cfg.WorkingHoursStart)
	assert.Equal(t, "18:00", cfg.WorkingHoursEnd)
	assert.Equal(t, "Europe/Copenhagen", cfg.Location.String())
	assert.Equal(t, 10, cfg.LoginRatePerMinute)
}

func TestLoadRequiresDSN(t *testing.T) {
	t.Setenv("DB_DSN", "")
	t.Setenv("JWT_SECRET", "secret")

	_, err := Load()
	assert.EqualError(t, err, "DB_DSN is required")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"ttl", "JWT_ACCESS_TOKEN_TTL", "soon"},
		{"bcrypt", "BCRYPT_COST", "twelve"},
		{"timezone", "BOOKING_TIMEZONE", "Mars/Olympus"},
		{"rate", "LOGIN_RATE_PER_MINUTE", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadDBIgnoresServerSettings(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/rooms")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("APP_ENV", "prod")

	cfg, err := LoadDB()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/rooms", cfg.DBDSN)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, "info", cfg.LogLevel)

	_, err = Load()
	assert.EqualError(t, err, "JWT_SECRET is required")
}

func TestLoadDBRequiresDSN(t *testing.T) {
	t.Setenv("DB_DSN", "")

	_, err := LoadDB()
	assert.EqualError(t, err, "DB_DSN is required")
}
