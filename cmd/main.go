package main

//
//  @title           licitacal API
//  @version         1.0
//  @description     Chilean holiday calendar and licitación deadline timelines.
//  @termsOfService  https://github.com/guttosm/licitacal
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/licitacal
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        feriados
//  @tag.description Stored and generated Chilean holidays
//
//  @tag.name        timeline
//  @tag.description Business-day arithmetic and licitación deadlines
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/licitacal/config"
	"github.com/guttosm/licitacal/internal/app"
	"github.com/guttosm/licitacal/internal/ingestion"
	"github.com/guttosm/licitacal/internal/logger"
)

// options are the parsed command-line flags.
type options struct {
	mode     string
	from     int
	to       int
	file     string
	parallel int
	force    bool
	port     string
}

// parseFlags reads args (without the program name) using cfg for defaults.
func parseFlags(args []string, cfg config.Config) (options, error) {
	var o options
	fs := flag.NewFlagSet("licitacal", flag.ContinueOnError)
	fs.StringVar(&o.mode, "mode", "api", "Mode: api, seed, import or migrate")
	fs.IntVar(&o.from, "from", cfg.Calendar.SeedFrom, "First year to seed (seed mode)")
	fs.IntVar(&o.to, "to", cfg.Calendar.SeedTo, "Last year to seed (seed mode)")
	fs.StringVar(&o.file, "file", "", "Path to a fecha;nombre CSV file (import mode)")
	fs.IntVar(&o.parallel, "parallel", 0, "How many years to seed concurrently (0=auto up to CPU, max 4)")
	fs.BoolVar(&o.force, "force", false, "Regenerate years that already have stored feriados (deletes them first)")
	fs.StringVar(&o.port, "port", cfg.Server.Port, "Port for API mode")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	switch o.mode {
	case "api", "migrate", "seed":
	case "import":
		if o.file == "" {
			return options{}, errors.New("--file is required in import mode")
		}
	default:
		return options{}, fmt.Errorf("unknown mode %q", o.mode)
	}
	if o.mode == "seed" && o.from > o.to {
		return options{}, fmt.Errorf("--from %d is after --to %d", o.from, o.to)
	}
	return o, nil
}

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Error().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// runJob executes one of the non-server modes against an open connection.
func runJob(ctx context.Context, o options) error {
	db, err := app.InitPostgres(config.AppConfig)
	if err != nil {
		return fmt.Errorf("db connect: %w", err)
	}
	defer func() { _ = db.Close() }()

	switch o.mode {
	case "migrate":
		if err := app.RunMigrations(db); err != nil {
			return err
		}
		logger.L().Info().Msg("migrations applied")
	case "seed":
		res, err := ingestion.SeedYears(ctx, db, o.from, o.to, o.parallel, o.force)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		logger.L().Info().Int("years", res.Years).Int("skipped", res.Skipped).Int("inserted", res.Inserted).Msg("seed completed successfully")
	case "import":
		n, err := ingestion.ImportFile(ctx, o.file, db)
		if err != nil {
			return fmt.Errorf("import %s: %w", o.file, err)
		}
		logger.L().Info().Str("file", o.file).Int("inserted", n).Msg("import completed successfully")
	}
	return nil
}

// main is the entry point of the licitacal application.
//
// Modes (selected via --mode flag):
//   - api:     Starts the REST API (default).
//   - migrate: Applies the embedded database migrations.
//   - seed:    Stores the generated holidays for --from..--to.
//   - import:  Loads extra holidays from --file.
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	o, err := parseFlags(os.Args[1:], config.AppConfig)
	if err != nil {
		logger.L().Fatal().Err(err).Msg("invalid flags")
	}

	if o.mode != "api" {
		logger.L().Info().Str("mode", o.mode).Msg("running job")
		if err := runJob(ctx, o); err != nil {
			logger.L().Fatal().Err(err).Str("mode", o.mode).Msg("job failed")
		}
		return
	}

	logger.L().Info().Msg("starting API server")
	router, cleanup, err := app.InitializeApp()
	if err != nil {
		logger.L().Fatal().Err(err).Msg("app init error")
	}

	server := startServer(router, o.port)
	gracefulShutdown(ctx, server, cleanup)
}
