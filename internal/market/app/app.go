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

	httpapi "github.com/aussiebroadwan/harvest/internal/market/http"
	"github.com/aussiebroadwan/harvest/internal/market/service"
	"github.com/aussiebroadwan/harvest/internal/market/store"
	"github.com/aussiebroadwan/harvest/internal/market/store/drivers/sqlite"
	"github.com/aussiebroadwan/harvest/pkg/cryptox"
	"github.com/aussiebroadwan/harvest/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags.
var BuildVersion = "v0.1.0"

// Application encapsulates the marketplace service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db     store.Store
	tokens *service.TokenIssuer
	hasher *cryptox.Hasher

	gate                *service.Gate
	authService         *service.AuthService
	userService         *service.UserService
	approvalService     *service.ApprovalService
	bootstrapService    *service.BootstrapService
	profileService      *service.ProfileService
	productService      *service.ProductService
	orderService        *service.OrderService
	appointmentService  *service.AppointmentService
	prebookingService   *service.PrebookingService
	ratingService       *service.RatingService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "market-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	pepper, err := cryptox.LoadPepper(cfg.PepperFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load pepper: %w", err)
	}
	app.hasher = cryptox.NewHasher(pepper)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initTokens(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("market service starting", "port", app.cfg.Port, "version", BuildVersion)

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

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down market service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("market service stopped")
	return nil
}

func (app *Application) initDatabase() error {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(dsn)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

func (app *Application) initTokens() error {
	secret, ephemeral, err := app.cfg.signingSecret()
	if err != nil {
		return err
	}
	if ephemeral {
		app.logger.Warn("JWT_SECRET not set, using an ephemeral signing secret")
	}

	app.tokens, err = service.NewTokenIssuer(service.TokenIssuerConfig{
		Secret:   secret,
		Issuer:   app.cfg.JWTIssuer,
		Audience: app.cfg.JWTAudience,
		TTL:      app.cfg.AccessTokenTTL,
		Leeway:   app.cfg.JWTLeeway,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize token issuer: %w", err)
	}
	return nil
}

func (app *Application) initServices() {
	app.gate = &service.Gate{Tokens: app.tokens, Store: app.db}
	app.authService = &service.AuthService{
		Store:  app.db,
		Hasher: app.hasher,
		Tokens: app.tokens,
	}
	app.userService = &service.UserService{Store: app.db}
	app.approvalService = &service.ApprovalService{Store: app.db}
	app.bootstrapService = &service.BootstrapService{
		Auth:  app.authService,
		Token: app.cfg.BootstrapToken,
	}
	app.profileService = &service.ProfileService{Store: app.db}
	app.productService = &service.ProductService{Store: app.db}
	app.orderService = &service.OrderService{Store: app.db}
	app.appointmentService = &service.AppointmentService{Store: app.db}
	app.prebookingService = &service.PrebookingService{Store: app.db}
	app.ratingService = &service.RatingService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)

	if app.cfg.BootstrapToken != "" {
		app.logger.Info("bootstrap enabled", "token_fingerprint", cryptox.FingerprintToken(app.cfg.BootstrapToken))
	}
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		BuildVersion,
		app.db,
		app.logger,
		app.cfg.RateLimits,
		app.cfg.AllowedOrigins,
	)

	router.Gate = app.gate
	router.AuthService = app.authService
	router.UserService = app.userService
	router.ApprovalService = app.approvalService
	router.BootstrapService = app.bootstrapService
	router.ProfileService = app.profileService
	router.ProductService = app.productService
	router.OrderService = app.orderService
	router.AppointmentService = app.appointmentService
	router.PrebookingService = app.prebookingService
	router.RatingService = app.ratingService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
