package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/guttosm/licitacal/config"
	"github.com/guttosm/licitacal/internal/logger"

	_ "github.com/lib/pq" // PostgreSQL driver for database/sql
)

// sqlOpener is an indirection for unit testing; defaults to sql.Open
var sqlOpener = sql.Open

// retryInterval is the first wait between ping attempts; tests shrink it.
var retryInterval = 500 * time.Millisecond

const (
	maxRetryInterval = 5 * time.Second
	pingTimeout      = 3 * time.Second
)

// InitPostgres initializes a PostgreSQL connection using the provided configuration.
//
// Behavior:
//   - Opens a database handle with the DSN from cfg.Postgres.
//   - Pings the database, retrying with exponential backoff up to
//     cfg.Postgres.ConnectRetries extra attempts (a database container may
//     still be starting).
//   - Returns the live connection if successful.
//
// Example usage:
//
//	db, err := app.InitPostgres(config.AppConfig)
//	if err != nil {
//	    log.Fatalf("❌ failed to connect: %v", err)
//	}
//	defer db.Close()
func InitPostgres(cfg config.Config) (*sql.DB, error) {
	db, err := sqlOpener("postgres", cfg.Postgres.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	retries := cfg.Postgres.ConnectRetries
	if retries < 0 {
		retries = 0
	}
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = retryInterval
	eb.MaxInterval = maxRetryInterval
	b := backoff.WithMaxRetries(eb, uint64(retries))

	ping := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		defer cancel()
		return db.PingContext(ctx)
	}
	notify := func(err error, wait time.Duration) {
		logger.L().Warn().Err(err).Dur("retry_in", wait).Str("host", cfg.Postgres.Host).Msg("postgres not ready")
	}

	if err := backoff.RetryNotify(ping, b, notify); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return db, nil
}

// postgresOpener is an indirection used by InitializeApp; overridden in tests to avoid real connections.
var postgresOpener = InitPostgres
