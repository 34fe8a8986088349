package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/harvest/internal/advisory/http"
	"github.com/aussiebroadwan/harvest/internal/advisory/service"
	"github.com/aussiebroadwan/harvest/internal/advisory/store/drivers/sqlite"
	"github.com/aussiebroadwan/harvest/internal/advisory/weather"
	"github.com/aussiebroadwan/harvest/pkg/cachex"
	"github.com/aussiebroadwan/harvest/pkg/slogx"
	"github.com/redis/go-redis/v9"
)

// BuildVersion is overridden at build time via -ldflags.
var BuildVersion = "v0.1.0"

// Application is the crop advisory service.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db    *sqlite.Store
	redis redis.UniversalClient

	server *http.Server
}

func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "advisory-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	db, err := sqlite.NewStore(fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.DatabaseFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}
	app.db = db

	weatherClient := &weather.Client{
		BaseURL:    cfg.WeatherBaseURL,
		APIKey:     cfg.WeatherAPIKey,
		HTTPClient: &http.Client{Timeout: cfg.WeatherTimeout},
		CacheTTL:   cfg.CacheTTL,
	}
	if cfg.WeatherAPIKey == "" {
		app.logger.Warn("WEATHER_API_KEY not set, every advisory uses the default reading")
	}

	var cachePinger httpapi.Pinger
	if cfg.RedisAddr != "" {
		app.redis, err = cachex.NewClient(cachex.Config{Addrs: []string{cfg.RedisAddr}, Password: cfg.RedisPassword})
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		cache := cachex.New(app.redis, "weather")
		weatherClient.Cache = cache
		cachePinger = cache
		app.logger.Info("weather cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.CacheTTL)
	}

	router := httpapi.NewRouter(BuildVersion, db, cachePinger, app.logger, cfg.RateLimits, cfg.AllowedOrigins)
	router.AdvisoryService = &service.AdvisoryService{Store: db, Weather: weatherClient}
	router.ApplyRoutes()

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
	return app, nil
}

// Run serves until SIGINT/SIGTERM or a server error.
func (app *Application) Run() error {
	app.logger.Info("advisory service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}
	return nil
}

func (app *Application) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		_ = app.server.Close()
	}

	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error("error closing redis", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("advisory service stopped")
	return nil
}
