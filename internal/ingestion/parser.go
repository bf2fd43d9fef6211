package ingestion

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/guttosm/licitacal/internal/calendar"
	"github.com/guttosm/licitacal/internal/logger"
	"github.com/guttosm/licitacal/internal/storage"
)

const maxNameLength = 255

// expectedHeaders enforces strict column ordering for holiday import files.
var expectedHeaders = []string{"fecha", "nombre"}

// ImportFile loads a ";"-separated holiday file into storage and returns how
// many rows were inserted. Rows whose fecha is already stored are kept as-is.
// The file is stored in one transaction: on error nothing is written.
func ImportFile(ctx context.Context, path string, db *sql.DB) (int, error) {
	log := logger.Component("importer")
	n, err := parseAndPersistFile(ctx, path, repoCtor(db))
	if err != nil {
		log.Error().Str("file", path).Err(err).Msg("import failed")
		return 0, err
	}
	log.Info().Str("file", path).Int("inserted", n).Msg("import done")
	return n, nil
}

// parseAndPersistFile opens, validates, parses, and persists one file.
// Any malformed row fails the whole import with its line number.
func parseAndPersistFile(ctx context.Context, path string, repo storage.HolidaysRepository) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	holidays, err := ParseHolidays(f)
	if err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	n, err := repo.InsertBatch(ctx, holidays)
	if err != nil {
		return 0, fmt.Errorf("store %d rows: %w", len(holidays), err)
	}
	return n, nil
}

// ParseHolidays reads a "fecha;nombre" file. The header must match exactly;
// fecha is YYYY-MM-DD and nombre is 1..255 characters.
func ParseHolidays(r io.Reader) ([]calendar.Holiday, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read header: empty file")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	if len(header) != len(expectedHeaders) {
		return nil, fmt.Errorf("invalid header length: expected %d, got %d", len(expectedHeaders), len(header))
	}
	for i, h := range header {
		if strings.TrimSpace(h) != expectedHeaders[i] {
			return nil, fmt.Errorf("invalid header at col %d: expected %q, got %q", i+1, expectedHeaders[i], h)
		}
	}

	var out []calendar.Holiday
	lineNumber := 1
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read line after %d: %w", lineNumber, err)
		}
		lineNumber++

		if len(rec) != len(expectedHeaders) {
			return nil, fmt.Errorf("invalid column count on line %d: expected %d got %d", lineNumber, len(expectedHeaders), len(rec))
		}
		h, err := recordToHoliday(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		out = append(out, h)
	}
	return out, nil
}

func recordToHoliday(rec []string) (calendar.Holiday, error) {
	d, err := calendar.ParseDate(strings.TrimSpace(rec[0]))
	if err != nil {
		return calendar.Holiday{}, fmt.Errorf("invalid fecha: %v", err)
	}
	name := strings.TrimSpace(rec[1])
	if name == "" {
		return calendar.Holiday{}, fmt.Errorf("empty nombre")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return calendar.Holiday{}, fmt.Errorf("nombre longer than %d characters", maxNameLength)
	}
	return calendar.Holiday{Date: d, Name: name}, nil
}
