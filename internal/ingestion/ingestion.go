package ingestion

import (
	"context"
	"database/sql"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/licitacal/internal/calendar"
	"github.com/guttosm/licitacal/internal/logger"
	"github.com/guttosm/licitacal/internal/storage"
)

const (
	maxSeedParallel = 4
	minSeedYear     = 2000
	maxSeedYear     = 2100
)

// repoCtor is an indirection for creating the repository; tests can override this.
var repoCtor = func(db *sql.DB) storage.HolidaysRepository {
	return storage.NewHolidaysRepository(db)
}

// SeedResult summarizes one SeedYears run.
type SeedResult struct {
	Years    int // years processed
	Skipped  int // years left untouched because rows already existed
	Inserted int // rows inserted across all years
}

// SeedYears stores the generated Chilean holidays for every year in [from, to].
//
// Behavior:
//   - Years are processed concurrently, at most min(NumCPU, 4) at a time unless
//     parallel > 0 (clamped to 1..4).
//   - A year that already has stored rows is skipped, unless force is set, in
//     which case its rows are replaced in a single transaction.
//   - The first error cancels the remaining years and is returned.
func SeedYears(ctx context.Context, db *sql.DB, from, to, parallel int, force bool) (SeedResult, error) {
	if from > to {
		return SeedResult{}, fmt.Errorf("invalid year range %d..%d", from, to)
	}
	if from < minSeedYear || to > maxSeedYear {
		return SeedResult{}, fmt.Errorf("year range %d..%d outside %d..%d", from, to, minSeedYear, maxSeedYear)
	}

	repo := repoCtor(db)
	log := logger.Component("seeder")

	maxParallel := maxSeedParallel
	if parallel > 0 {
		if parallel < maxParallel {
			maxParallel = parallel
		}
	} else if c := runtime.NumCPU(); c < maxParallel {
		maxParallel = c
	}

	total := to - from + 1
	log.Info().Int("from", from).Int("to", to).Int("max_parallel", maxParallel).Bool("force", force).Msg("seed start")

	var inserted, skipped atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxParallel)

	for y := from; y <= to; y++ {
		year := y
		if err := gctx.Err(); err != nil {
			return SeedResult{}, waitOr(g, err)
		}
		select {
		case sem <- struct{}{}:
		case <-gctx.Done():
			return SeedResult{}, waitOr(g, gctx.Err())
		}

		g.Go(func() error {
			defer func() { <-sem }()
			start := time.Now()

			existing, err := repo.CountByYear(gctx, year)
			if err != nil {
				log.Error().Int("year", year).Err(err).Msg("count existing failed")
				return fmt.Errorf("year %d: count existing: %w", year, err)
			}
			if existing > 0 && !force {
				skipped.Add(1)
				log.Info().Int("year", year).Int("existing", existing).Bool("skipped", true).Msg("already seeded")
				return nil
			}
			holidays := calendar.HolidaysForYear(year)
			var n int
			if existing > 0 {
				n, err = repo.ReplaceYear(gctx, year, holidays)
			} else {
				n, err = repo.InsertBatch(gctx, holidays)
			}
			if err != nil {
				log.Error().Int("year", year).Bool("replace", existing > 0).Dur("elapsed", time.Since(start)).Err(err).Msg("year failed")
				return fmt.Errorf("year %d: store: %w", year, err)
			}
			inserted.Add(int64(n))
			log.Info().Int("year", year).Int("rows", n).Dur("elapsed", time.Since(start)).Msg("year done")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return SeedResult{}, err
	}

	res := SeedResult{Years: total, Skipped: int(skipped.Load()), Inserted: int(inserted.Load())}
	log.Info().Int("years", res.Years).Int("skipped", res.Skipped).Int("inserted", res.Inserted).Msg("seed done")
	return res, nil
}

// waitOr waits for in-flight workers and prefers their error over fallback.
func waitOr(g *errgroup.Group, fallback error) error {
	if err := g.Wait(); err != nil {
		return err
	}
	return fallback
}
