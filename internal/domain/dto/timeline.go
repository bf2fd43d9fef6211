package dto

import "github.com/guttosm/licitacal/internal/calendar"

// TimelineData is a computed licitación timeline together with the
// publication date that seeded it.
type TimelineData struct {
	FechaPublicacion calendar.Date `json:"fecha_publicacion" swaggertype:"string" example:"2026-04-06"`
	calendar.Timeline
}

// TimelineResponse is the body of GET /api/v1/timeline.
type TimelineResponse struct {
	Data TimelineData `json:"data"`
}

// ValidateTimelineRequest is the body of POST /api/v1/timeline/validar:
// a (possibly hand-edited) timeline to check against the ordering rule.
type ValidateTimelineRequest struct {
	FechaPublicacion          string `json:"fecha_publicacion" binding:"required,isodate" example:"2026-04-06"`
	FechaLimiteSolicitudBases string `json:"fecha_limite_solicitud_bases" binding:"required,isodate" example:"2026-04-13"`
	FechaLimiteConsultas      string `json:"fecha_limite_consultas" binding:"required,isodate" example:"2026-04-16"`
	FechaInicioPropuestas     string `json:"fecha_inicio_propuestas" binding:"required,isodate" example:"2026-04-17"`
	FechaLimitePropuestas     string `json:"fecha_limite_propuestas" binding:"required,isodate" example:"2026-04-23"`
	FechaLimiteEvaluacion     string `json:"fecha_limite_evaluacion" binding:"required,isodate" example:"2026-04-28"`
}

// ValidateTimelineData reports whether the submitted timeline is ordered.
type ValidateTimelineData struct {
	Valid bool   `json:"valid" example:"false"`
	Stage string `json:"stage,omitempty" example:"fecha_limite_propuestas"`
	Error string `json:"error,omitempty" example:"fecha_limite_propuestas (2026-04-17) must be after fecha_inicio_propuestas (2026-04-17)"`
}

// ValidateTimelineResponse is the body of POST /api/v1/timeline/validar.
type ValidateTimelineResponse struct {
	Data ValidateTimelineData `json:"data"`
}

// BusinessDaysData is the result of a business-day advance.
type BusinessDaysData struct {
	Desde calendar.Date `json:"desde" swaggertype:"string" example:"2026-04-10"`
	Dias  int           `json:"dias" example:"1"`
	Fecha calendar.Date `json:"fecha" swaggertype:"string" example:"2026-04-13"`
}

// BusinessDaysResponse is the body of GET /api/v1/dias-habiles.
type BusinessDaysResponse struct {
	Data BusinessDaysData `json:"data"`
}

// TimelineQuery is the query string of GET /api/v1/timeline.
type TimelineQuery struct {
	FechaPublicacion string `form:"fecha_publicacion" binding:"required,isodate"`
}

// BusinessDaysQuery is the query string of GET /api/v1/dias-habiles.
type BusinessDaysQuery struct {
	Desde string `form:"desde" binding:"required,isodate"`
	Dias  *int   `form:"dias" binding:"required,min=0,max=3650"`
}
