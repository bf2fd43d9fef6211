package app

import (
	"database/sql"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/licitacal/config"
	"github.com/guttosm/licitacal/internal/api"
	"github.com/guttosm/licitacal/internal/service"
	"github.com/guttosm/licitacal/internal/storage"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres().
//   - Builds the holiday repository and the calendar service.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close the DB connection.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	router := NewRouter(db, cfg)

	cleanup := func() {
		_ = db.Close()
	}
	return router, cleanup, nil
}

// NewRouter wires the HTTP stack on top of an already open database.
func NewRouter(db *sql.DB, cfg config.Config) *gin.Engine {
	svc := NewService(db, cfg)
	router := api.NewRouter(api.NewHandler(svc))
	api.NewHealthHandler(db.PingContext).Register(router)
	return router
}

// NewService builds the CalendarService used by both the API and the CLI modes.
func NewService(db *sql.DB, cfg config.Config) service.CalendarService {
	repo := storage.NewHolidaysRepository(db)
	return service.NewCalendarService(repo, service.Options{FallbackGenerated: cfg.Calendar.FallbackGenerated})
}
