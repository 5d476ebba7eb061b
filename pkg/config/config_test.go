package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-tool-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("TOOL_API_KEY", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.False(t, cfg.DB.Enabled(), "sin DATABASE_URL se usa el backend en memoria")
	assert.Empty(t, cfg.Auth.ToolAPIKey)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_DesdeEntorno(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/inventory?sslmode=disable")
	t.Setenv("DB_MAX_CONNS", "4")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("TOOL_API_KEY", "s3cret")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.True(t, cfg.DB.Enabled())
	assert.Equal(t, int32(4), cfg.DB.MaxConns)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, "s3cret", cfg.Auth.ToolAPIKey)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoad_ValorInvalidoUsaDefault(t *testing.T) {
	t.Setenv("HTTP_PORT", "no-es-numero")
	t.Setenv("DB_AUTO_MIGRATE", "tal-vez")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.False(t, cfg.DB.AutoMigrate)
}

func TestLoad_MaxConnsFueraDeRangoUsaDefault(t *testing.T) {
	for _, raw := range []string{"4294967297", "99999999999999999999", "0", "-3"} {
		t.Setenv("DB_MAX_CONNS", raw)

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, int32(10), cfg.DB.MaxConns, raw)
	}
}

func TestDBConfig_EnabledIgnoraEspacios(t *testing.T) {
	assert.False(t, config.DBConfig{DatabaseURL: "   "}.Enabled())
}
