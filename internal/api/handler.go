package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/licitacal/internal/middleware"
	"github.com/guttosm/licitacal/internal/service"
	"github.com/guttosm/licitacal/internal/storage"
)

// Handler provides HTTP handlers for the holiday and timeline endpoints.
//
// Responsibilities:
//   - Bind and validate query strings and JSON bodies
//   - Call the CalendarService with the request context
//   - Wrap results in the {"data": ...} envelope
//   - Map service errors to HTTP status codes
type Handler struct {
	svc service.CalendarService
	now func() time.Time
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.CalendarService): business logic used by every route.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.CalendarService) *Handler {
	return &Handler{svc: svc, now: time.Now}
}

// Register mounts the v1 routes on the given group.
func (h *Handler) Register(v1 *gin.RouterGroup) {
	v1.GET("/feriados", h.ListFeriados)
	v1.POST("/feriados", h.CreateFeriado)
	v1.PUT("/feriados", h.UpdateFeriado)
	v1.DELETE("/feriados", h.DeleteFeriado)
	v1.GET("/feriados/generar", h.GenerateFeriados)

	v1.GET("/timeline", h.GetTimeline)
	v1.POST("/timeline/validar", h.ValidateTimeline)
	v1.GET("/dias-habiles", h.AddBusinessDays)
}

func (h *Handler) yearOrCurrent(y int) int {
	if y == 0 {
		return h.now().Year()
	}
	return y
}

// badRequest answers 400 with the binding or parsing error as details.
func badRequest(c *gin.Context, msg string, err error) {
	middleware.AbortWithError(c, http.StatusBadRequest, msg, err)
}

// fail maps a service error to its HTTP status:
// storage.ErrNotFound → 404, storage.ErrDuplicateDate → 409, otherwise 500.
func fail(c *gin.Context, msg string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, storage.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, storage.ErrDuplicateDate):
		status = http.StatusConflict
	}
	middleware.AbortWithError(c, status, msg, err)
}
