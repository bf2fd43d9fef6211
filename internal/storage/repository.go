package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/guttosm/licitacal/internal/calendar"
	"github.com/guttosm/licitacal/internal/domain/models"
	pq "github.com/lib/pq"
)

var (
	// ErrNotFound is returned when the requested holiday row does not exist.
	ErrNotFound = errors.New("feriado not found")
	// ErrDuplicateDate is returned when a holiday already exists on that date.
	ErrDuplicateDate = errors.New("a feriado already exists on that date")
)

// pgUniqueViolation is the SQLSTATE code raised by the fecha unique index.
const pgUniqueViolation = "23505"

// HolidaysRepository defines contract for feriados_chile DB operations.
type HolidaysRepository interface {
	ListByYearRange(ctx context.Context, from, to int) ([]models.Feriado, error)
	GetByID(ctx context.Context, id int64) (*models.Feriado, error)
	Create(ctx context.Context, fecha calendar.Date, nombre string) (*models.Feriado, error)
	Update(ctx context.Context, id int64, fecha *calendar.Date, nombre *string) (*models.Feriado, error)
	Delete(ctx context.Context, id int64) error
	InsertBatch(ctx context.Context, holidays []calendar.Holiday) (int, error)
	CountByYear(ctx context.Context, year int) (int, error)
	ReplaceYear(ctx context.Context, year int, holidays []calendar.Holiday) (int, error)
}

type holidaysRepository struct {
	db *sql.DB
}

func NewHolidaysRepository(db *sql.DB) HolidaysRepository {
	return &holidaysRepository{db: db}
}

// ListByYearRange returns every stored holiday whose year is in [from, to],
// ordered by date.
func (r *holidaysRepository) ListByYearRange(ctx context.Context, from, to int) ([]models.Feriado, error) {
	if from > to {
		return []models.Feriado{}, nil
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, fecha, nombre, year FROM feriados_chile WHERE year >= $1 AND year <= $2 ORDER BY fecha`,
		from, to)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := make([]models.Feriado, 0, (to-from+1)*calendar.HolidaysPerYear)
	for rows.Next() {
		var f models.Feriado
		if err := rows.Scan(&f.ID, &f.Fecha, &f.Nombre, &f.Year); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// GetByID returns one holiday or ErrNotFound.
func (r *holidaysRepository) GetByID(ctx context.Context, id int64) (*models.Feriado, error) {
	var f models.Feriado
	err := r.db.QueryRowContext(ctx,
		`SELECT id, fecha, nombre, year FROM feriados_chile WHERE id = $1`, id).
		Scan(&f.ID, &f.Fecha, &f.Nombre, &f.Year)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Create stores a single holiday. The year column is derived from fecha.
func (r *holidaysRepository) Create(ctx context.Context, fecha calendar.Date, nombre string) (*models.Feriado, error) {
	f := models.Feriado{Fecha: fecha, Nombre: nombre, Year: fecha.Year}
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO feriados_chile (fecha, nombre, year) VALUES ($1, $2, $3) RETURNING id`,
		fecha, nombre, fecha.Year).Scan(&f.ID)
	if err != nil {
		return nil, translate(err)
	}
	return &f, nil
}

// Update applies a partial update; nil arguments keep the stored value.
func (r *holidaysRepository) Update(ctx context.Context, id int64, fecha *calendar.Date, nombre *string) (*models.Feriado, error) {
	// $1 is always id. Subsequent placeholders depend on provided fields.
	var sets []string
	args := []interface{}{id}
	if fecha != nil {
		args = append(args, *fecha)
		sets = append(sets, fmt.Sprintf("fecha = $%d", len(args)))
		args = append(args, fecha.Year)
		sets = append(sets, fmt.Sprintf("year = $%d", len(args)))
	}
	if nombre != nil {
		args = append(args, *nombre)
		sets = append(sets, fmt.Sprintf("nombre = $%d", len(args)))
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	query := fmt.Sprintf(
		`UPDATE feriados_chile SET %s WHERE id = $1 RETURNING id, fecha, nombre, year`,
		strings.Join(sets, ", "))

	var f models.Feriado
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&f.ID, &f.Fecha, &f.Nombre, &f.Year)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, translate(err)
	}
	return &f, nil
}

// Delete removes one holiday or returns ErrNotFound.
func (r *holidaysRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM feriados_chile WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// InsertBatch inserts holidays in a single transaction, keeping any row
// that already exists on the same date. It returns how many rows were new.
// Either every row is stored or none is.
func (r *holidaysRepository) InsertBatch(ctx context.Context, holidays []calendar.Holiday) (int, error) {
	if len(holidays) == 0 {
		return 0, nil
	}
	return r.inTx(ctx, func(tx *sql.Tx) (int, error) {
		return insertHolidays(ctx, tx, holidays)
	})
}

// CountByYear returns how many holidays are stored for year.
func (r *holidaysRepository) CountByYear(ctx context.Context, year int) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM feriados_chile WHERE year = $1`, year).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// ReplaceYear deletes every holiday stored for year and inserts holidays in
// the same transaction. On error the stored rows of year are left untouched.
// It returns how many rows were inserted.
func (r *holidaysRepository) ReplaceYear(ctx context.Context, year int, holidays []calendar.Holiday) (int, error) {
	for _, h := range holidays {
		if h.Date.Year != year {
			return 0, fmt.Errorf("holiday %s is outside year %d", h.Date, year)
		}
	}
	return r.inTx(ctx, func(tx *sql.Tx) (int, error) {
		if _, err := tx.ExecContext(ctx, `DELETE FROM feriados_chile WHERE year = $1`, year); err != nil {
			return 0, err
		}
		return insertHolidays(ctx, tx, holidays)
	})
}

// inTx runs fn in a transaction, committing on success and rolling back on
// any error.
func (r *holidaysRepository) inTx(ctx context.Context, fn func(tx *sql.Tx) (int, error)) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	n, err := fn(tx)
	if err != nil {
		_ = tx.Rollback()
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return n, nil
}

// insertHolidays runs the conflict-tolerant insert for every holiday on tx.
func insertHolidays(ctx context.Context, tx *sql.Tx, holidays []calendar.Holiday) (int, error) {
	if len(holidays) == 0 {
		return 0, nil
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO feriados_chile (fecha, nombre, year) VALUES ($1, $2, $3) ON CONFLICT (fecha) DO NOTHING`)
	if err != nil {
		return 0, err
	}
	defer func() { _ = stmt.Close() }()

	inserted := 0
	for _, h := range holidays {
		res, err := stmt.ExecContext(ctx, h.Date, h.Name, h.Date.Year)
		if err != nil {
			return 0, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		inserted += int(n)
	}
	return inserted, nil
}

// translate maps driver errors to the package sentinels.
func translate(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %s", ErrDuplicateDate, pqErr.Detail)
	}
	return err
}
