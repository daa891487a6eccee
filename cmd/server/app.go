package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/planner-api/internal/api/middleware"
	"github.com/phrazzld/planner-api/internal/config"
	"github.com/phrazzld/planner-api/internal/platform/postgres"
	"github.com/phrazzld/planner-api/internal/service"
	"github.com/phrazzld/planner-api/internal/service/auth"
	"github.com/phrazzld/planner-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores
	userStore    store.UserStore
	projectStore store.ProjectStore
	taskStore    store.TaskStore

	// Services
	jwtService      auth.JWTService
	userService     service.UserService
	projectService  service.ProjectService
	taskService     service.TaskService
	scheduleService service.ScheduleService

	// authLimiter throttles register, login and refresh per client IP
	authLimiter *middleware.RateLimiter
}

// newApplication creates a new application instance with all dependencies initialized.
// It accepts core dependencies like configuration, logger, and database connection that
// must be established before application initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.projectStore = postgres.NewPostgresProjectStore(db, logger)
	app.taskStore = postgres.NewPostgresTaskStore(db, logger)

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	app.userService, err = service.NewUserService(app.userStore, hasher, hasher, db, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	app.projectService, err = service.NewProjectService(app.projectStore, app.taskStore, db, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create project service: %w", err)
	}

	app.taskService, err = service.NewTaskService(app.projectStore, app.taskStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	app.scheduleService, err = service.NewScheduleService(app.projectStore, app.taskStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create schedule service: %w", err)
	}

	app.authLimiter = middleware.NewRateLimiter(
		cfg.RateLimit.AuthRequestsPerMinute,
		cfg.RateLimit.AuthBurst,
	)

	logger.Info("Application initialized successfully")
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
		closeDB(app.db, app.logger)
	}
	app.logger.Info("Application shutdown completed")
}
