package calendar

import (
	"fmt"
	"time"
)

// Stage names of a licitación timeline, in deadline order.
const (
	StageSolicitudBases  = "fecha_limite_solicitud_bases"
	StageConsultas       = "fecha_limite_consultas"
	StageInicioPropuesta = "fecha_inicio_propuestas"
	StageLimitePropuesta = "fecha_limite_propuestas"
	StageEvaluacion      = "fecha_limite_evaluacion"
)

// Business-day offsets between timeline stages.
const (
	offsetSolicitudBases  = 5
	offsetConsultas       = 3
	offsetInicioPropuesta = 1
	offsetLimitePropuesta = 5
	offsetEvaluacion      = 3
)

// Timeline holds the five deadlines derived from a publication date.
type Timeline struct {
	FechaLimiteSolicitudBases Date `json:"fecha_limite_solicitud_bases" example:"2026-04-13"`
	FechaLimiteConsultas      Date `json:"fecha_limite_consultas" example:"2026-04-16"`
	FechaInicioPropuestas     Date `json:"fecha_inicio_propuestas" example:"2026-04-17"`
	FechaLimitePropuestas     Date `json:"fecha_limite_propuestas" example:"2026-04-23"`
	FechaLimiteEvaluacion     Date `json:"fecha_limite_evaluacion" example:"2026-04-28"`
}

// Stage is one named deadline of a Timeline.
type Stage struct {
	Name string
	Date Date
}

// Stages returns the deadlines in order.
func (t Timeline) Stages() []Stage {
	return []Stage{
		{StageSolicitudBases, t.FechaLimiteSolicitudBases},
		{StageConsultas, t.FechaLimiteConsultas},
		{StageInicioPropuesta, t.FechaInicioPropuestas},
		{StageLimitePropuesta, t.FechaLimitePropuestas},
		{StageEvaluacion, t.FechaLimiteEvaluacion},
	}
}

// OrderError reports a timeline stage that is not strictly after the
// stage (or publication date) preceding it.
type OrderError struct {
	Stage    string
	Date     Date
	Previous string
	PrevDate Date
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("%s (%s) must be after %s (%s)", e.Stage, e.Date, e.Previous, e.PrevDate)
}

// Validate checks that every stage is set and strictly later than the one
// before it, the first one being later than publication.
func (t Timeline) Validate(publication Date) error {
	prevName, prev := "fecha_publicacion", publication
	for _, s := range t.Stages() {
		if s.Date.IsZero() || !s.Date.After(prev) {
			return &OrderError{Stage: s.Name, Date: s.Date, Previous: prevName, PrevDate: prev}
		}
		prevName, prev = s.Name, s.Date
	}
	return nil
}

// IsWeekend reports whether d is a Saturday or a Sunday.
func IsWeekend(d Date) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsHoliday reports whether d matches any entry of holidays.
// holidays may be unsorted and contain duplicates.
func IsHoliday(d Date, holidays []Holiday) bool {
	for _, h := range holidays {
		if h.Date == d {
			return true
		}
	}
	return false
}

// IsBusinessDay reports whether d is neither a weekend day nor a holiday.
func IsBusinessDay(d Date, holidays []Holiday) bool {
	return !IsWeekend(d) && !IsHoliday(d, holidays)
}

// AddBusinessDays walks forward from start and returns the n-th business
// day after it. The start day itself is never counted.
//
// Only non-negative counts are supported; n <= 0 returns start unchanged.
// Callers accepting external input must reject negative counts themselves.
func AddBusinessDays(start Date, n int, holidays []Holiday) Date {
	d := start
	for counted := 0; counted < n; {
		d = d.AddDays(1)
		if IsBusinessDay(d, holidays) {
			counted++
		}
	}
	return d
}

// CalculateLicitacionTimeline derives the five licitación deadlines from a
// publication date.
//
// Each offset counts from the previous stage, except fecha_limite_propuestas,
// which counts from fecha_limite_consultas (the same base as
// fecha_inicio_propuestas): the end of the proposal window does not depend
// on its start.
func CalculateLicitacionTimeline(publication Date, holidays []Holiday) Timeline {
	bases := AddBusinessDays(publication, offsetSolicitudBases, holidays)
	consultas := AddBusinessDays(bases, offsetConsultas, holidays)
	inicio := AddBusinessDays(consultas, offsetInicioPropuesta, holidays)
	limite := AddBusinessDays(consultas, offsetLimitePropuesta, holidays)
	evaluacion := AddBusinessDays(limite, offsetEvaluacion, holidays)

	return Timeline{
		FechaLimiteSolicitudBases: bases,
		FechaLimiteConsultas:      consultas,
		FechaInicioPropuestas:     inicio,
		FechaLimitePropuestas:     limite,
		FechaLimiteEvaluacion:     evaluacion,
	}
}
