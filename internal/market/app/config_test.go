package app

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"JWT_SECRET", "JWT_ISSUER", "JWT_AUDIENCE", "JWT_LEEWAY", "ACCESS_TOKEN_TTL", "BOOTSTRAP_TOKEN", "MARKET_DATABASE_FILE",
		"MARKET_PEPPER_FILE", "ALLOWED_ORIGINS", "ENV", "PORT", "HOUSEKEEPING_INTERVAL",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	require.Equal(t, "harvest-market", cfg.JWTIssuer)
	require.Equal(t, "harvest-market", cfg.JWTAudience)
	require.Zero(t, cfg.JWTLeeway)
	require.Equal(t, 30*time.Minute, cfg.AccessTokenTTL)
	require.Equal(t, "market.db", cfg.DatabaseFile)
	require.Equal(t, 8000, cfg.Port)
	require.Equal(t, time.Hour, cfg.HousekeepingInterval)
	require.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.AllowedOrigins)
	require.Equal(t, 5, cfg.RateLimits.Strict.RequestsPerWindow)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9100")
	t.Setenv("ACCESS_TOKEN_TTL", "45")
	t.Setenv("JWT_LEEWAY", "30s")
	t.Setenv("HOUSEKEEPING_INTERVAL", "15m")
	t.Setenv("ALLOWED_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("RATELIMIT_STRICT_REQUESTS", "50")

	cfg := LoadConfig()
	require.Equal(t, 9100, cfg.Port)
	require.Equal(t, 45*time.Minute, cfg.AccessTokenTTL)
	require.Equal(t, 30*time.Second, cfg.JWTLeeway)
	require.Equal(t, 15*time.Minute, cfg.HousekeepingInterval)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	require.Equal(t, 50, cfg.RateLimits.Strict.RequestsPerWindow)
}

func TestLoadConfigIgnoresGarbage(t *testing.T) {
	t.Setenv("PORT", "eighty")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "soon")

	cfg := LoadConfig()
	require.Equal(t, 8000, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
}

func TestConfigValidate(t *testing.T) {
	base := Config{Port: 8000, AccessTokenTTL: time.Minute}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "dev without secret", mutate: func(c *Config) { c.Env = "dev" }},
		{name: "prod without secret", mutate: func(c *Config) { c.Env = "prod" }, wantErr: "JWT_SECRET is required"},
		{name: "prod short secret", mutate: func(c *Config) { c.Env = "prod"; c.JWTSecret = "short" }, wantErr: "at least 32 bytes"},
		{name: "prod long secret", mutate: func(c *Config) { c.Env = "prod"; c.JWTSecret = strings.Repeat("x", 32) }},
		{name: "bad port", mutate: func(c *Config) { c.Env = "dev"; c.Port = 0 }, wantErr: "invalid PORT"},
		{name: "bad ttl", mutate: func(c *Config) { c.Env = "dev"; c.AccessTokenTTL = 0 }, wantErr: "ACCESS_TOKEN_TTL"},
		{name: "negative leeway", mutate: func(c *Config) { c.Env = "dev"; c.JWTLeeway = -time.Second }, wantErr: "JWT_LEEWAY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestSigningSecret(t *testing.T) {
	secret, ephemeral, err := Config{JWTSecret: "configured", Env: "prod"}.signingSecret()
	require.NoError(t, err)
	require.False(t, ephemeral)
	require.Equal(t, []byte("configured"), secret)

	secret, ephemeral, err = Config{Env: "dev"}.signingSecret()
	require.NoError(t, err)
	require.True(t, ephemeral)
	require.NotEmpty(t, secret)

	_, _, err = Config{Env: "prod"}.signingSecret()
	require.Error(t, err)
}
