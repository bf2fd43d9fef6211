package service

import (
	"context"
	"fmt"

	"github.com/guttosm/licitacal/internal/calendar"
	"github.com/guttosm/licitacal/internal/domain/models"
	"github.com/guttosm/licitacal/internal/logger"
	"github.com/guttosm/licitacal/internal/storage"
)

// businessDaysPerYear is a conservative lower bound of business days in a
// calendar year, used to size the holiday lookup window of long walks.
const businessDaysPerYear = 200

// CalendarService defines business logic around holidays, business days
// and licitación timelines. Handlers depend on this interface only.
type CalendarService interface {
	Timeline(ctx context.Context, publication calendar.Date) (calendar.Timeline, error)
	AddBusinessDays(ctx context.Context, start calendar.Date, n int) (calendar.Date, error)
	GeneratedHolidays(year int) []calendar.Holiday
	ListHolidays(ctx context.Context, year int) ([]models.Feriado, error)
	CreateHoliday(ctx context.Context, fecha calendar.Date, nombre string) (*models.Feriado, error)
	UpdateHoliday(ctx context.Context, id int64, fecha *calendar.Date, nombre *string) (*models.Feriado, error)
	DeleteHoliday(ctx context.Context, id int64) error
	SeedYear(ctx context.Context, year int) (int, error)
}

// Options tunes a CalendarService.
type Options struct {
	// FallbackGenerated fills years without stored feriados with the
	// generated Chilean holidays.
	FallbackGenerated bool
}

type calendarService struct {
	repo storage.HolidaysRepository
	opts Options
}

func NewCalendarService(repo storage.HolidaysRepository, opts Options) CalendarService {
	return &calendarService{repo: repo, opts: opts}
}

// Timeline computes the licitación deadlines for a publication date using
// the holidays stored for the publication year and the following one.
func (s *calendarService) Timeline(ctx context.Context, publication calendar.Date) (calendar.Timeline, error) {
	holidays, err := s.holidays(ctx, publication.Year, publication.Year+1)
	if err != nil {
		return calendar.Timeline{}, err
	}
	return calendar.CalculateLicitacionTimeline(publication, holidays), nil
}

// AddBusinessDays advances start by n business days. n must be >= 0.
func (s *calendarService) AddBusinessDays(ctx context.Context, start calendar.Date, n int) (calendar.Date, error) {
	if n < 0 {
		return calendar.Date{}, fmt.Errorf("business day count must be non-negative, got %d", n)
	}
	holidays, err := s.holidays(ctx, start.Year, start.Year+1+n/businessDaysPerYear)
	if err != nil {
		return calendar.Date{}, err
	}
	return calendar.AddBusinessDays(start, n, holidays), nil
}

func (s *calendarService) GeneratedHolidays(year int) []calendar.Holiday {
	return calendar.HolidaysForYear(year)
}

func (s *calendarService) ListHolidays(ctx context.Context, year int) ([]models.Feriado, error) {
	rows, err := s.repo.ListByYearRange(ctx, year, year)
	if err != nil {
		return nil, fmt.Errorf("list feriados %d: %w", year, err)
	}
	return rows, nil
}

func (s *calendarService) CreateHoliday(ctx context.Context, fecha calendar.Date, nombre string) (*models.Feriado, error) {
	f, err := s.repo.Create(ctx, fecha, nombre)
	if err != nil {
		return nil, fmt.Errorf("create feriado %s: %w", fecha, err)
	}
	logger.L().Info().Int64("id", f.ID).Str("fecha", fecha.String()).Msg("feriado created")
	return f, nil
}

func (s *calendarService) UpdateHoliday(ctx context.Context, id int64, fecha *calendar.Date, nombre *string) (*models.Feriado, error) {
	f, err := s.repo.Update(ctx, id, fecha, nombre)
	if err != nil {
		return nil, fmt.Errorf("update feriado %d: %w", id, err)
	}
	logger.L().Info().Int64("id", id).Msg("feriado updated")
	return f, nil
}

func (s *calendarService) DeleteHoliday(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete feriado %d: %w", id, err)
	}
	logger.L().Info().Int64("id", id).Msg("feriado deleted")
	return nil
}

// SeedYear stores the generated holidays of year, keeping rows that already
// exist on the same dates. It returns how many rows were inserted.
func (s *calendarService) SeedYear(ctx context.Context, year int) (int, error) {
	n, err := s.repo.InsertBatch(ctx, calendar.HolidaysForYear(year))
	if err != nil {
		return 0, fmt.Errorf("seed feriados %d: %w", year, err)
	}
	logger.L().Info().Int("year", year).Int("inserted", n).Msg("feriados seeded")
	return n, nil
}

// holidays loads stored holidays for [from, to]. Years with no stored rows
// are filled from the generator when FallbackGenerated is set.
func (s *calendarService) holidays(ctx context.Context, from, to int) ([]calendar.Holiday, error) {
	rows, err := s.repo.ListByYearRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("fetch feriados %d-%d: %w", from, to, err)
	}
	out := models.ToHolidays(rows)
	if !s.opts.FallbackGenerated {
		return out, nil
	}

	stored := make(map[int]bool, to-from+1)
	for _, r := range rows {
		stored[r.Year] = true
	}
	for y := from; y <= to; y++ {
		if stored[y] {
			continue
		}
		logger.L().Warn().Int("year", y).Msg("no stored feriados, using generated holidays")
		out = append(out, calendar.HolidaysForYear(y)...)
	}
	return out, nil
}
