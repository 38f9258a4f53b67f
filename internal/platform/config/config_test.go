package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://localhost/currencies")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("RATES_REFRESH_CRON", "0 6 * * *")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/currencies", cfg.DatabaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "0 6 * * *", cfg.RatesRefreshCron)
	assert.Equal(t, "10-M", cfg.RateLimit)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadAdminConfig_Defaults(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "")
	t.Setenv("LOG_LEVEL", "loud")

	cfg, err := LoadAdminConfig()

	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "currency-admin", cfg.AdminSubject)
}

func TestLoadAdminConfig_Timeout(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "5s")

	cfg, err := LoadAdminConfig()

	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}
