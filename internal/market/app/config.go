package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/harvest/internal/market/service"
	"github.com/aussiebroadwan/harvest/pkg/cryptox"
	"github.com/aussiebroadwan/harvest/pkg/httpx"
	"github.com/aussiebroadwan/harvest/pkg/jwtx"
)

// minSecretLength is the shortest JWT secret accepted outside dev.
const minSecretLength = 32

type Config struct {
	JWTSecret      string        // Required outside dev: HS256 signing secret
	JWTIssuer      string        // Optional: iss claim (default: harvest-market)
	JWTAudience    string        // Optional: aud claim (default: harvest-market)
	JWTLeeway      time.Duration // Optional: clock skew allowed on exp/nbf (default: 0)
	AccessTokenTTL time.Duration // Optional: access token lifetime (default: 30m)
	BootstrapToken string        // Optional: enables POST /v1/bootstrap when set

	DatabaseFile         string        // Optional: path to SQLite database file (default: ./market.db)
	PepperFile           string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	AllowedOrigins       []string      // Optional: CORS origins
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8000)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)

	RateLimits httpx.RateLimitProfiles
}

func LoadConfig() Config {
	return Config{
		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTIssuer:      getEnvOrDefault("JWT_ISSUER", "harvest-market"),
		JWTAudience:    getEnvOrDefault("JWT_AUDIENCE", service.DefaultAudience),
		JWTLeeway:      getEnvDurationOrDefault("JWT_LEEWAY", 0),
		AccessTokenTTL: getEnvDurationOrDefault("ACCESS_TOKEN_TTL", jwtx.DefaultAccessTokenTTL),
		BootstrapToken: os.Getenv("BOOTSTRAP_TOKEN"),

		DatabaseFile: getEnvOrDefault("MARKET_DATABASE_FILE", "market.db"),
		PepperFile:   getEnvOrDefault("MARKET_PEPPER_FILE", "pepper"),
		AllowedOrigins: getEnvListOrDefault("ALLOWED_ORIGINS", []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
		}),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8000),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),

		RateLimits: httpx.RateLimitProfilesFromEnv(),
	}
}

// IsDev reports whether the service runs in a local development environment.
func (c Config) IsDev() bool {
	return c.Env == "dev" || c.Env == "test"
}

// Validate rejects configurations that must not reach production.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if c.AccessTokenTTL <= 0 {
		return errors.New("ACCESS_TOKEN_TTL must be positive")
	}
	if c.JWTLeeway < 0 {
		return errors.New("JWT_LEEWAY must not be negative")
	}
	if c.IsDev() {
		return nil
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required outside dev")
	}
	if len(c.JWTSecret) < minSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d bytes", minSecretLength)
	}
	return nil
}

// signingSecret returns the configured secret, or a random one in dev. A
// random secret invalidates every token on restart.
func (c Config) signingSecret() ([]byte, bool, error) {
	if c.JWTSecret != "" {
		return []byte(c.JWTSecret), false, nil
	}
	if !c.IsDev() {
		return nil, false, errors.New("JWT_SECRET is required outside dev")
	}
	s, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return nil, false, err
	}
	return []byte(s), true, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Plain integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}

// getEnvListOrDefault splits a comma separated value, dropping empty entries.
func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
