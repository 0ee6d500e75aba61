package main

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/phrazzld/post-api/internal/api"
	"github.com/phrazzld/post-api/internal/config"
	"github.com/phrazzld/post-api/internal/platform/postgres"
	"github.com/phrazzld/post-api/internal/service"
)

// application bundles the long-lived dependencies of the running server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB
	router http.Handler
}

// newApplication connects to the database and wires stores, services,
// and the HTTP router together.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := setupAppDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	postStore := postgres.NewPostgresPostStore(db, logger)
	tokenStore := postgres.NewPostgresTokenStore(db, logger)
	postService := service.NewPostService(postStore, logger)

	return &application{
		config: cfg,
		logger: logger,
		db:     db,
		router: api.NewRouter(postService, tokenStore, logger),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
