package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/courts")
	t.Setenv("JWT_SECRET", "secret")
}

func TestFromEnvDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := fromEnv()
	require.NoError(t, err)

	assert.False(t, cfg.IsProduction)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Zero(t, cfg.DBMaxConns)
	assert.Equal(t, 15*time.Minute, cfg.JWTTTL)
}

func TestFromEnvOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_ENV", "prod")
	t.Setenv("PROD_ORIGINS", "https://courts.example.com")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("TIMEZONE", "America/La_Paz")
	t.Setenv("SHUTDOWN_TIMEOUT", "10s")
	t.Setenv("DB_MAX_CONNS", "8")

	cfg, err := fromEnv()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "America/La_Paz", cfg.Location.String())
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 8, cfg.DBMaxConns)
}

func TestFromEnvErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing dsn", env: map[string]string{"DB_DSN": "", "JWT_SECRET": "s"}},
		{name: "missing secret", env: map[string]string{"DB_DSN": "d", "JWT_SECRET": ""}},
		{name: "bad timezone", env: map[string]string{"DB_DSN": "d", "JWT_SECRET": "s", "TIMEZONE": "Mars/Olympus"}},
		{name: "bad timeout", env: map[string]string{"DB_DSN": "d", "JWT_SECRET": "s", "SHUTDOWN_TIMEOUT": "soon"}},
		{name: "prod without origins", env: map[string]string{"DB_DSN": "d", "JWT_SECRET": "s", "APP_ENV": "prod", "PROD_ORIGINS": ""}},
		{name: "bad jwt ttl", env: map[string]string{"DB_DSN": "d", "JWT_SECRET": "s", "JWT_ACCESS_TOKEN_TTL": "forever"}},
		{name: "bad max conns", env: map[string]string{"DB_DSN": "d", "JWT_SECRET": "s", "DB_MAX_CONNS": "many"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := fromEnv()
			assert.Error(t, err)
		})
	}
}
