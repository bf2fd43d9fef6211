package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/licitacal/internal/calendar"
	"github.com/guttosm/licitacal/internal/domain/dto"
)

// GetTimeline godoc
// @Summary      Compute a licitación timeline
// @Description  Returns the five stage deadlines for a publication date, counted in Chilean business days
// @Tags         timeline
// @Produce      json
// @Param        fecha_publicacion  query     string  true  "Publication date YYYY-MM-DD"  example(2026-04-06)
// @Success      200                {object}  dto.TimelineResponse
// @Failure      400                {object}  dto.ErrorResponse
// @Failure      500                {object}  dto.ErrorResponse
// @Router       /api/v1/timeline [get]
func (h *Handler) GetTimeline(c *gin.Context) {
	var q dto.TimelineQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "fecha_publicacion is required in YYYY-MM-DD format", err)
		return
	}
	pub, err := calendar.ParseDate(q.FechaPublicacion)
	if err != nil {
		badRequest(c, "invalid fecha_publicacion", err)
		return
	}

	tl, err := h.svc.Timeline(c.Request.Context(), pub)
	if err != nil {
		fail(c, "failed to compute timeline", err)
		return
	}
	c.JSON(http.StatusOK, dto.TimelineResponse{Data: dto.TimelineData{FechaPublicacion: pub, Timeline: tl}})
}

// ValidateTimeline godoc
// @Summary      Validate a timeline
// @Description  Checks that every deadline is strictly after the previous stage. Returns 422 naming the first offending stage.
// @Tags         timeline
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ValidateTimelineRequest  true  "Timeline to check"
// @Success      200   {object}  dto.ValidateTimelineResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidateTimelineResponse
// @Router       /api/v1/timeline/validar [post]
func (h *Handler) ValidateTimeline(c *gin.Context) {
	var req dto.ValidateTimelineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body", err)
		return
	}

	var pub calendar.Date
	var tl calendar.Timeline
	fields := []struct {
		raw string
		dst *calendar.Date
	}{
		{req.FechaPublicacion, &pub},
		{req.FechaLimiteSolicitudBases, &tl.FechaLimiteSolicitudBases},
		{req.FechaLimiteConsultas, &tl.FechaLimiteConsultas},
		{req.FechaInicioPropuestas, &tl.FechaInicioPropuestas},
		{req.FechaLimitePropuestas, &tl.FechaLimitePropuestas},
		{req.FechaLimiteEvaluacion, &tl.FechaLimiteEvaluacion},
	}
	for _, f := range fields {
		d, err := calendar.ParseDate(f.raw)
		if err != nil {
			badRequest(c, "invalid date", err)
			return
		}
		*f.dst = d
	}

	if err := tl.Validate(pub); err != nil {
		data := dto.ValidateTimelineData{Valid: false, Error: err.Error()}
		var oe *calendar.OrderError
		if errors.As(err, &oe) {
			data.Stage = oe.Stage
		}
		c.JSON(http.StatusUnprocessableEntity, dto.ValidateTimelineResponse{Data: data})
		return
	}
	c.JSON(http.StatusOK, dto.ValidateTimelineResponse{Data: dto.ValidateTimelineData{Valid: true}})
}

// AddBusinessDays godoc
// @Summary      Add business days to a date
// @Description  Advances a date by N Chilean business days (weekends and holidays skipped)
// @Tags         timeline
// @Produce      json
// @Param        desde  query     string  true  "Start date YYYY-MM-DD"  example(2026-04-10)
// @Param        dias   query     int     true  "Business days to add (0..3650)"  example(1)
// @Success      200    {object}  dto.BusinessDaysResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      500    {object}  dto.ErrorResponse
// @Router       /api/v1/dias-habiles [get]
func (h *Handler) AddBusinessDays(c *gin.Context) {
	var q dto.BusinessDaysQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "desde (YYYY-MM-DD) and dias (0..3650) are required", err)
		return
	}
	desde, err := calendar.ParseDate(q.Desde)
	if err != nil {
		badRequest(c, "invalid desde", err)
		return
	}

	got, err := h.svc.AddBusinessDays(c.Request.Context(), desde, *q.Dias)
	if err != nil {
		fail(c, "failed to add business days", err)
		return
	}
	c.JSON(http.StatusOK, dto.BusinessDaysResponse{Data: dto.BusinessDaysData{Desde: desde, Dias: *q.Dias, Fecha: got}})
}
