package models

import "github.com/guttosm/licitacal/internal/calendar"

// Feriado represents one row of the feriados_chile table.
//
// Fields:
//   - ID: surrogate key.
//   - Fecha: the holiday date (unique across the table).
//   - Nombre: human-readable holiday name.
//   - Year: calendar year of Fecha, stored to allow year-range lookups.
//
// swagger:model Feriado
type Feriado struct {
	ID     int64         `json:"id" example:"12"`
	Fecha  calendar.Date `json:"fecha" swaggertype:"string" example:"2026-09-18"`
	Nombre string        `json:"nombre" example:"Fiestas Patrias"`
	Year   int           `json:"year" example:"2026"`
}

// Holiday converts the row into the calendar core representation.
func (f Feriado) Holiday() calendar.Holiday {
	return calendar.Holiday{Date: f.Fecha, Name: f.Nombre}
}

// ToHolidays converts stored rows into the holiday list consumed by the
// business-day calculator.
func ToHolidays(rows []Feriado) []calendar.Holiday {
	out := make([]calendar.Holiday, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Holiday())
	}
	return out
}
