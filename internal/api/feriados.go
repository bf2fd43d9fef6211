package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/licitacal/internal/calendar"
	"github.com/guttosm/licitacal/internal/domain/dto"
	"github.com/guttosm/licitacal/internal/domain/models"
)

// ListFeriados godoc
// @Summary      List stored holidays
// @Description  Returns the holidays stored for a year, ordered by date
// @Tags         feriados
// @Produce      json
// @Param        year  query     int  false  "Year (defaults to the current year)"  example(2026)
// @Success      200   {object}  dto.FeriadosResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/v1/feriados [get]
func (h *Handler) ListFeriados(c *gin.Context) {
	var q dto.YearQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "invalid year", err)
		return
	}
	year := h.yearOrCurrent(q.Year)

	rows, err := h.svc.ListHolidays(c.Request.Context(), year)
	if err != nil {
		fail(c, "failed to list feriados", err)
		return
	}
	if rows == nil {
		rows = []models.Feriado{}
	}
	c.JSON(http.StatusOK, dto.FeriadosResponse{Data: dto.FeriadosData{Feriados: rows}})
}

// CreateFeriado godoc
// @Summary      Create a holiday or bulk seed a year
// @Description  With {"fecha","nombre"} stores one holiday (201). With {"action":"bulk_seed","year"} stores the generated holidays of that year, keeping existing dates (200).
// @Tags         feriados
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateFeriadoRequest  true  "Holiday or bulk seed action"
// @Success      201   {object}  dto.FeriadoResponse
// @Success      200   {object}  dto.SeedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/v1/feriados [post]
func (h *Handler) CreateFeriado(c *gin.Context) {
	var req dto.CreateFeriadoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body", err)
		return
	}

	if req.Action == dto.ActionBulkSeed {
		if req.Year == 0 {
			badRequest(c, "year is required for bulk_seed", nil)
			return
		}
		n, err := h.svc.SeedYear(c.Request.Context(), req.Year)
		if err != nil {
			fail(c, "failed to seed feriados", err)
			return
		}
		c.JSON(http.StatusOK, dto.SeedResponse{Data: dto.SeedData{Year: req.Year, Inserted: n}})
		return
	}

	nombre := strings.TrimSpace(req.Nombre)
	if req.Fecha == "" || nombre == "" {
		badRequest(c, "fecha and nombre are required", nil)
		return
	}
	fecha, err := calendar.ParseDate(req.Fecha)
	if err != nil {
		badRequest(c, "invalid fecha", err)
		return
	}

	f, err := h.svc.CreateHoliday(c.Request.Context(), fecha, nombre)
	if err != nil {
		fail(c, "failed to create feriado", err)
		return
	}
	c.JSON(http.StatusCreated, dto.FeriadoResponse{Data: *f})
}

// UpdateFeriado godoc
// @Summary      Update a holiday
// @Description  Partially updates a stored holiday; omitted fields are kept
// @Tags         feriados
// @Accept       json
// @Produce      json
// @Param        body  body      dto.UpdateFeriadoRequest  true  "Fields to change"
// @Success      200   {object}  dto.FeriadoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/v1/feriados [put]
func (h *Handler) UpdateFeriado(c *gin.Context) {
	var req dto.UpdateFeriadoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body", err)
		return
	}

	var fecha *calendar.Date
	if req.Fecha != nil {
		d, err := calendar.ParseDate(*req.Fecha)
		if err != nil {
			badRequest(c, "invalid fecha", err)
			return
		}
		fecha = &d
	}
	var nombre *string
	if req.Nombre != nil {
		n := strings.TrimSpace(*req.Nombre)
		if n == "" {
			badRequest(c, "nombre must not be blank", nil)
			return
		}
		nombre = &n
	}

	f, err := h.svc.UpdateHoliday(c.Request.Context(), req.ID, fecha, nombre)
	if err != nil {
		fail(c, "failed to update feriado", err)
		return
	}
	c.JSON(http.StatusOK, dto.FeriadoResponse{Data: *f})
}

// DeleteFeriado godoc
// @Summary      Delete a holiday
// @Tags         feriados
// @Accept       json
// @Produce      json
// @Param        body  body      dto.DeleteFeriadoRequest  true  "Holiday id"
// @Success      200   {object}  map[string]map[string]int64
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/v1/feriados [delete]
func (h *Handler) DeleteFeriado(c *gin.Context) {
	var req dto.DeleteFeriadoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body", err)
		return
	}
	if err := h.svc.DeleteHoliday(c.Request.Context(), req.ID); err != nil {
		fail(c, "failed to delete feriado", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"id": req.ID}})
}

// GenerateFeriados godoc
// @Summary      Generate holidays for a year
// @Description  Computes the Chilean national holidays of a year without storing them
// @Tags         feriados
// @Produce      json
// @Param        year  query     int  false  "Year (defaults to the current year)"  example(2026)
// @Success      200   {object}  dto.GeneratedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/feriados/generar [get]
func (h *Handler) GenerateFeriados(c *gin.Context) {
	var q dto.YearQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "invalid year", err)
		return
	}
	year := h.yearOrCurrent(q.Year)
	c.JSON(http.StatusOK, dto.GeneratedResponse{Data: dto.GeneratedData{Year: year, Feriados: h.svc.GeneratedHolidays(year)}})
}
