package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/tasknest/tasknest/internal/http"
	"github.com/tasknest/tasknest/internal/service"
	"github.com/tasknest/tasknest/internal/store"
	"github.com/tasknest/tasknest/internal/store/sqlite"
	"github.com/tasknest/tasknest/pkg/cryptox"
	"github.com/tasknest/tasknest/pkg/jwtx"
	"github.com/tasknest/tasknest/pkg/slogx"
)

// BuildVersion should be set at build time via ldflags.
const BuildVersion = "v0.1.0"

// Application wires the whole service together: store, signing keys,
// services, and the HTTP server.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	keys     *jwtx.KeyPair
	signer   *jwtx.Signer
	verifier *jwtx.Verifier

	authService         *service.AuthService
	taskService         *service.TaskService
	adminService        *service.AdminService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "tasknest",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	cryptox.SetPepperPath(cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	// Signing keys are ephemeral: a restart invalidates every outstanding
	// token, session and pending alike.
	keys, err := jwtx.NewEphemeralKeyPair()
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to generate signing keys: %w", err)
	}
	app.keys = keys
	app.signer = jwtx.NewSigner(keys)
	app.verifier = jwtx.NewVerifier(keys, cfg.Issuer)

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("task tracker starting", "port", app.cfg.Port, "version", BuildVersion, "mfa_required", app.cfg.MFARequired)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
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

// Shutdown drains in-flight requests, stops housekeeping, and closes the
// database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down task tracker...")

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

	app.logger.Info("task tracker stopped")
	return nil
}

func (app *Application) initDatabase() error {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
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

func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:       app.db,
		Signer:      app.signer,
		Issuer:      app.cfg.Issuer,
		SessionTTL:  app.cfg.SessionTTL,
		PendingTTL:  app.cfg.PendingTTL,
		MFARequired: app.cfg.MFARequired,
	}
	app.taskService = &service.TaskService{Store: app.db}
	app.adminService = &service.AdminService{Store: app.db}
	app.housekeepingService = &service.HousekeepingService{
		Store:     app.db,
		Logger:    app.logger,
		Interval:  app.cfg.HousekeepingInterval,
		Retention: app.cfg.LoginHistoryRetention,
	}
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(app.verifier, app.db, app.logger)

	router.AuthService = app.authService
	router.TaskService = app.taskService
	router.AdminService = app.adminService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
