package app

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/harvest/internal/advisory/weather"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	for _, key := range []string{"ADVISORY_DATABASE_FILE", "WEATHER_BASE_URL", "WEATHER_TIMEOUT", "REDIS_ADDR", "WEATHER_CACHE_TTL", "PORT"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	require.Equal(t, "advisory.db", cfg.DatabaseFile)
	require.Equal(t, weather.DefaultBaseURL, cfg.WeatherBaseURL)
	require.Equal(t, 5*time.Second, cfg.WeatherTimeout)
	require.Equal(t, 10*time.Minute, cfg.CacheTTL)
	require.Equal(t, 8001, cfg.Port)
	require.Empty(t, cfg.RedisAddr)
	require.NoError(t, cfg.Validate())

	t.Setenv("WEATHER_TIMEOUT", "2")
	t.Setenv("WEATHER_CACHE_TTL", "1h")
	t.Setenv("REDIS_ADDR", "redis:6379")

	cfg = LoadConfig()
	require.Equal(t, 2*time.Second, cfg.WeatherTimeout)
	require.Equal(t, time.Hour, cfg.CacheTTL)
	require.Equal(t, "redis:6379", cfg.RedisAddr)
}

func TestConfigValidate(t *testing.T) {
	require.Error(t, Config{Port: 0, WeatherTimeout: time.Second}.Validate())
	require.Error(t, Config{Port: 8001}.Validate())
	require.NoError(t, Config{Port: 8001, WeatherTimeout: time.Second}.Validate())
}
