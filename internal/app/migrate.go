package app

import (
	"database/sql"
	"fmt"

	goose "github.com/pressly/goose/v3"

	"github.com/guttosm/licitacal/db/migrations"
)

// gooseUp is an indirection for unit testing.
var gooseUp = goose.Up

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := gooseUp(db, "."); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
