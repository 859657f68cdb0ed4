package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/GioNegri/PedagogIA2/internal/config"
	"github.com/GioNegri/PedagogIA2/internal/generation"
	"github.com/GioNegri/PedagogIA2/internal/platform/gemini"
	"github.com/GioNegri/PedagogIA2/internal/platform/postgres"
	"github.com/GioNegri/PedagogIA2/internal/service"
	"github.com/GioNegri/PedagogIA2/internal/service/auth"
	"github.com/GioNegri/PedagogIA2/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	accountStore store.AccountStore
	allowlist    store.Allowlist
	historyStore store.HistoryStore

	// Service interfaces
	accountService   service.AccountService
	allowlistService service.AllowlistService
	historyService   service.HistoryService
	contentService   service.ContentService
	generator        generation.Generator
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Initialize stores
	app.accountStore = postgres.NewPostgresAccountStore(db, logger)
	app.allowlist = postgres.NewPostgresAllowlist(db, logger)
	app.historyStore = postgres.NewPostgresHistoryStore(db, logger)

	// Create the LLM generator
	var err error
	app.generator, err = gemini.NewGeminiGenerator(
		ctx,
		logger.With("component", "llm_generator"),
		cfg.LLM,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}
	logger.Info("LLM generator initialized")

	// Initialize services
	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)
	verifier := auth.NewBcryptVerifier()

	app.accountService = service.NewAccountService(
		app.accountStore,
		app.allowlist,
		hasher,
		verifier,
		db,
		logger,
	)
	app.allowlistService = service.NewAllowlistService(app.allowlist, logger)
	app.historyService = service.NewHistoryService(app.historyStore, logger)
	app.contentService = service.NewContentService(app.generator, app.historyService, logger)

	// Seed the allowlist with the configured bootstrap emails so a fresh
	// deployment has at least one registrable account.
	if emails := cfg.Allowlist.BootstrapEmailList(); len(emails) > 0 {
		if err := app.allowlistService.EnsureBootstrap(ctx, emails); err != nil {
			return nil, fmt.Errorf("failed to seed allowlist: %w", err)
		}
		logger.Info("allowlist bootstrap completed", "entries", len(emails))
	}

	logger.Info("application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}

	app.logger.Info("application shutdown completed")
}
