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

	httpapi "github.com/aussiebroadwan/tabtodo/internal/todo/http"
	"github.com/aussiebroadwan/tabtodo/internal/todo/service"
	"github.com/aussiebroadwan/tabtodo/internal/todo/store/drivers/sqlite"
	"github.com/aussiebroadwan/tabtodo/pkg/cryptox"
	"github.com/aussiebroadwan/tabtodo/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"

	tokenSecretSize = 32
)

// Application is the todo service with all of its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db     *sqlite.Store
	tokens *service.TokenService
	api    *service.API

	server *http.Server
	router *httpapi.Router
}

// New creates an Application: database opened and migrated, token signer
// ready, routes applied. The server is not started.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg:    cfg,
		logger: newLogger(cfg),
	}

	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initHTTP()
	return app, nil
}

func newLogger(cfg Config) *slog.Logger {
	return slogx.New(slogx.Config{
		Service: "todo-service",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
}

// Handler returns the fully wired HTTP handler.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("todo service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.db.Close()
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

// Shutdown gracefully stops the server and closes the database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down todo service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("todo service stopped")
	return nil
}

func openDatabase(file string) (*sqlite.Store, error) {
	db, err := sqlite.NewStore(sqlite.FileDSN(file))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}
	return db, nil
}

func (app *Application) initDatabase() error {
	db, err := openDatabase(app.cfg.DatabaseFile)
	if err != nil {
		return err
	}
	app.db = db

	app.logger.Info("database migrations applied successfully", "file", app.cfg.DatabaseFile)
	return nil
}

// tokenSecret returns the configured secret, falling back to the secret
// file which is generated on first start.
func (app *Application) tokenSecret() ([]byte, error) {
	if app.cfg.TokenSecret != "" {
		return []byte(app.cfg.TokenSecret), nil
	}

	secret, err := cryptox.LoadOrGenerateSecret(app.cfg.TokenSecretFile, tokenSecretSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load token secret: %w", err)
	}
	return cryptox.DecodeSecret(secret), nil
}

func (app *Application) initServices() error {
	secret, err := app.tokenSecret()
	if err != nil {
		return err
	}

	tokens, err := service.NewTokenService(secret, app.cfg.Issuer, app.cfg.TokenTTL)
	if err != nil {
		return fmt.Errorf("failed to initialize token service: %w", err)
	}
	app.tokens = tokens
	app.api = service.NewAPI(app.db, tokens)
	return nil
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(app.api, app.db, BuildVersion, app.logger)
	router.ApplyRoutes()
	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

// Migrate applies pending migrations to the configured database and reports
// the resulting schema version.
func Migrate(cfg Config) (uint, error) {
	logger := newLogger(cfg)

	db, err := openDatabase(cfg.DatabaseFile)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	version, dirty, err := db.MigrationVersion()
	if err != nil {
		return 0, fmt.Errorf("failed to read migration version: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("database %s is dirty at version %d", cfg.DatabaseFile, version)
	}

	logger.Info("database migrated", "file", cfg.DatabaseFile, "version", version)
	return version, nil
}
