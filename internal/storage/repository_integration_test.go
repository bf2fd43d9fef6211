//go:build integration
// +build integration

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/lib/pq"
	goose "github.com/pressly/goose/v3"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/guttosm/licitacal/db/migrations"
	"github.com/guttosm/licitacal/internal/calendar"
)

// startPostgres spins up a Postgres container and returns a DSN and terminate func.
func startPostgres(t *testing.T) (dsn string, terminate func()) {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "licitacal",
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "postgres", func(host string, port nat.Port) string {
			return fmt.Sprintf("host=%s port=%s user=postgres password=postgres dbname=licitacal sslmode=disable", host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Fatalf("container start: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://postgres:postgres@%s:%s/licitacal?sslmode=disable", host, port.Port())
	terminate = func() { _ = container.Terminate(context.Background()) }
	return dsn, terminate
}

func openAndMigrate(t *testing.T, dsn string) *sql.DB {
	t.Helper()
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		t.Fatalf("dialect: %v", err)
	}
	if err := goose.Up(db, "."); err != nil {
		t.Fatalf("migrate up: %v", err)
	}
	return db
}

func TestRepository_Integration(t *testing.T) {
	dsn, terminate := startPostgres(t)
	defer terminate()
	db := openAndMigrate(t, dsn)
	defer db.Close()

	ctx := context.Background()
	repo := NewHolidaysRepository(db)

	t.Run("bulk seed is idempotent", func(t *testing.T) {
		n, err := repo.InsertBatch(ctx, calendar.HolidaysForYear(2026))
		if err != nil || n != calendar.HolidaysPerYear {
			t.Fatalf("first seed: n=%d err=%v", n, err)
		}
		n, err = repo.InsertBatch(ctx, calendar.HolidaysForYear(2026))
		if err != nil || n != 0 {
			t.Fatalf("second seed: n=%d err=%v", n, err)
		}
	})

	t.Run("list keeps date-only values", func(t *testing.T) {
		rows, err := repo.ListByYearRange(ctx, 2026, 2027)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(rows) != calendar.HolidaysPerYear {
			t.Fatalf("want %d rows got %d", calendar.HolidaysPerYear, len(rows))
		}
		want := calendar.HolidaysForYear(2026)
		for i, r := range rows {
			if r.Fecha != want[i].Date || r.Nombre != want[i].Name {
				t.Fatalf("row %d: got %s %q want %s %q", i, r.Fecha, r.Nombre, want[i].Date, want[i].Name)
			}
		}
	})

	t.Run("create update delete", func(t *testing.T) {
		f, err := repo.Create(ctx, calendar.MustParseDate("2027-12-31"), "Feriado bancario")
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if _, err := repo.Create(ctx, calendar.MustParseDate("2027-12-31"), "Otro"); !errors.Is(err, ErrDuplicateDate) {
			t.Fatalf("want ErrDuplicateDate got %v", err)
		}

		moved := calendar.MustParseDate("2028-01-02")
		updated, err := repo.Update(ctx, f.ID, &moved, nil)
		if err != nil || updated.Year != 2028 || updated.Fecha != moved {
			t.Fatalf("update: %+v err=%v", updated, err)
		}

		if err := repo.Delete(ctx, f.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if err := repo.Delete(ctx, f.ID); !errors.Is(err, ErrNotFound) {
			t.Fatalf("want ErrNotFound got %v", err)
		}
	})

	t.Run("count and replace year", func(t *testing.T) {
		n, err := repo.CountByYear(ctx, 2026)
		if err != nil || n != calendar.HolidaysPerYear {
			t.Fatalf("count: n=%d err=%v", n, err)
		}
		n, err = repo.ReplaceYear(ctx, 2026, calendar.HolidaysForYear(2026)[:2])
		if err != nil || n != 2 {
			t.Fatalf("replace: n=%d err=%v", n, err)
		}
		if n, _ := repo.CountByYear(ctx, 2026); n != 2 {
			t.Fatalf("want 2 rows after replace got %d", n)
		}
	})
}
