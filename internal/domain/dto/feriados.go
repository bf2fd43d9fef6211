package dto

import (
	"github.com/guttosm/licitacal/internal/calendar"
	"github.com/guttosm/licitacal/internal/domain/models"
)

// ActionBulkSeed is the POST /api/v1/feriados action that loads the
// generated holidays of a year into storage.
const ActionBulkSeed = "bulk_seed"

// CreateFeriadoRequest is the body of POST /api/v1/feriados.
//
// When Action is "bulk_seed" only Year is read; otherwise Fecha and Nombre
// describe a single holiday to create.
type CreateFeriadoRequest struct {
	Action string `json:"action,omitempty" binding:"omitempty,oneof=bulk_seed" example:"bulk_seed"`
	Year   int    `json:"year,omitempty" binding:"omitempty,min=2000,max=2100" example:"2026"`
	Fecha  string `json:"fecha,omitempty" binding:"omitempty,isodate" example:"2026-09-18"`
	Nombre string `json:"nombre,omitempty" binding:"omitempty,max=255" example:"Fiestas Patrias"`
}

// UpdateFeriadoRequest is the body of PUT /api/v1/feriados. Nil fields are
// left untouched.
type UpdateFeriadoRequest struct {
	ID     int64   `json:"id" binding:"required,gt=0" example:"12"`
	Fecha  *string `json:"fecha,omitempty" binding:"omitempty,isodate" example:"2026-09-18"`
	Nombre *string `json:"nombre,omitempty" binding:"omitempty,min=1,max=255" example:"Fiestas Patrias"`
}

// DeleteFeriadoRequest is the body of DELETE /api/v1/feriados.
type DeleteFeriadoRequest struct {
	ID int64 `json:"id" binding:"required,gt=0" example:"12"`
}

// FeriadosData wraps a holiday listing.
type FeriadosData struct {
	Feriados []models.Feriado `json:"feriados"`
}

// FeriadosResponse is the body of GET /api/v1/feriados.
type FeriadosResponse struct {
	Data FeriadosData `json:"data"`
}

// FeriadoResponse wraps a single stored holiday.
type FeriadoResponse struct {
	Data models.Feriado `json:"data"`
}

// SeedData reports how many generated holidays were newly stored.
type SeedData struct {
	Year     int `json:"year" example:"2026"`
	Inserted int `json:"inserted" example:"16"`
}

// SeedResponse is the body of a bulk_seed POST.
type SeedResponse struct {
	Data SeedData `json:"data"`
}

// GeneratedData holds holidays computed on the fly, not persisted.
type GeneratedData struct {
	Year     int                `json:"year" example:"2026"`
	Feriados []calendar.Holiday `json:"feriados"`
}

// GeneratedResponse is the body of GET /api/v1/feriados/generar.
type GeneratedResponse struct {
	Data GeneratedData `json:"data"`
}

// YearQuery is the query string of the year-scoped holiday endpoints.
// A zero Year means the current year.
type YearQuery struct {
	Year int `form:"year" binding:"omitempty,min=2000,max=2100"`
}
