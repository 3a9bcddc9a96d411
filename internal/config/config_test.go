package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trafficapi/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "random", cfg.Source.Driver)
	assert.Equal(t, 5*time.Second, cfg.Request.Timeout)
	assert.Equal(t, 7, cfg.Request.DefaultSpanDays)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, map[string]string{
		"unique_visitors": "Unique Visitors",
		"page_views":      "Page Views",
		"visits":          "Visitors",
	}, cfg.Catalog.Names)
	assert.False(t, cfg.Metrics.Enabled)
	assert.False(t, cfg.Cache.Enabled)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SOURCE_DRIVER", "badger")
	t.Setenv("BADGER_DIR", "/tmp/metrics")
	t.Setenv("REQUEST_TIMEOUT", "250ms")
	t.Setenv("METRIC_NAMES", "signups:Sign Ups")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("CACHE_ENABLED", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "badger", cfg.Source.Driver)
	assert.Equal(t, "/tmp/metrics", cfg.Badger.Dir)
	assert.Equal(t, 250*time.Millisecond, cfg.Request.Timeout)
	assert.Equal(t, map[string]string{"signups": "Sign Ups"}, cfg.Catalog.Names)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowOrigins)
	assert.True(t, cfg.Cache.Enabled)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := config.DatabaseConfig{
		Host:     "db",
		Port:     5433,
		User:     "u",
		Password: "p",
		DBName:   "metrics",
		SSLMode:  "require",
		MaxConns: 8,
	}

	assert.Equal(t,
		"host=db port=5433 user=u password=p dbname=metrics sslmode=require pool_max_conns=8",
		cfg.DSN())
}
