package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/licitacal/internal/calendar"
	"github.com/guttosm/licitacal/internal/domain/models"
	"github.com/guttosm/licitacal/internal/service"
	"github.com/guttosm/licitacal/internal/storage"
)

// mockCalendarService records calls and returns canned values.
type mockCalendarService struct {
	rows     []models.Feriado
	feriado  *models.Feriado
	inserted int
	err      error

	gotYear   int
	gotFecha  *calendar.Date
	gotNombre *string
	gotDays   int
}

func (m *mockCalendarService) Timeline(_ context.Context, pub calendar.Date) (calendar.Timeline, error) {
	if m.err != nil {
		return calendar.Timeline{}, m.err
	}
	return calendar.CalculateLicitacionTimeline(pub, nil), nil
}
func (m *mockCalendarService) AddBusinessDays(_ context.Context, start calendar.Date, n int) (calendar.Date, error) {
	m.gotDays = n
	if m.err != nil {
		return calendar.Date{}, m.err
	}
	return calendar.AddBusinessDays(start, n, nil), nil
}
func (m *mockCalendarService) GeneratedHolidays(year int) []calendar.Holiday {
	m.gotYear = year
	return calendar.HolidaysForYear(year)
}
func (m *mockCalendarService) ListHolidays(_ context.Context, year int) ([]models.Feriado, error) {
	m.gotYear = year
	return m.rows, m.err
}
func (m *mockCalendarService) CreateHoliday(_ context.Context, fecha calendar.Date, nombre string) (*models.Feriado, error) {
	m.gotFecha, m.gotNombre = &fecha, &nombre
	if m.err != nil {
		return nil, m.err
	}
	return &models.Feriado{ID: 7, Fecha: fecha, Nombre: nombre, Year: fecha.Year}, nil
}
func (m *mockCalendarService) UpdateHoliday(_ context.Context, id int64, fecha *calendar.Date, nombre *string) (*models.Feriado, error) {
	m.gotFecha, m.gotNombre = fecha, nombre
	if m.err != nil {
		return nil, m.err
	}
	return m.feriado, nil
}
func (m *mockCalendarService) DeleteHoliday(context.Context, int64) error { return m.err }
func (m *mockCalendarService) SeedYear(_ context.Context, year int) (int, error) {
	m.gotYear = year
	return m.inserted, m.err
}

var _ service.CalendarService = (*mockCalendarService)(nil)

func setupRouterWithMock(s service.CalendarService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	RegisterValidators()
	h := NewHandler(s)
	h.now = func() time.Time { return time.Date(2026, 4, 6, 12, 0, 0, 0, time.UTC) }
	r := gin.New()
	h.Register(r.Group("/api/v1"))
	return r
}

func do(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, body []byte, out any) {
	t.Helper()
	if err := json.Unmarshal(body, out); err != nil {
		t.Fatalf("invalid json %q: %v", body, err)
	}
}

func TestTimelineRoutes_TableDriven(t *testing.T) {
	cases := []struct {
		name   string
		svc    *mockCalendarService
		method string
		target string
		body   string
		status int
		assert func(t *testing.T, body []byte)
	}{
		{name: "timeline missing date", svc: &mockCalendarService{}, method: http.MethodGet, target: "/api/v1/timeline", status: http.StatusBadRequest},
		{name: "timeline bad format", svc: &mockCalendarService{}, method: http.MethodGet, target: "/api/v1/timeline?fecha_publicacion=06-04-2026", status: http.StatusBadRequest},
		{name: "timeline impossible day", svc: &mockCalendarService{}, method: http.MethodGet, target: "/api/v1/timeline?fecha_publicacion=2026-02-30", status: http.StatusBadRequest},
		{name: "timeline service error", svc: &mockCalendarService{err: errors.New("db down")}, method: http.MethodGet, target: "/api/v1/timeline?fecha_publicacion=2026-04-06", status: http.StatusInternalServerError},
		{
			name: "timeline ok", svc: &mockCalendarService{}, method: http.MethodGet, target: "/api/v1/timeline?fecha_publicacion=2026-04-06", status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out struct {
					Data map[string]string `json:"data"`
				}
				decode(t, body, &out)
				want := map[string]string{
					"fecha_publicacion":            "2026-04-06",
					"fecha_limite_solicitud_bases": "2026-04-13",
					"fecha_limite_consultas":       "2026-04-16",
					"fecha_inicio_propuestas":      "2026-04-17",
					"fecha_limite_propuestas":      "2026-04-23",
					"fecha_limite_evaluacion":      "2026-04-28",
				}
				for k, v := range want {
					if out.Data[k] != v {
						t.Fatalf("%s=%q want %q", k, out.Data[k], v)
					}
				}
			},
		},
		{name: "dias missing", svc: &mockCalendarService{}, method: http.MethodGet, target: "/api/v1/dias-habiles?desde=2026-04-10", status: http.StatusBadRequest},
		{name: "dias negative", svc: &mockCalendarService{}, method: http.MethodGet, target: "/api/v1/dias-habiles?desde=2026-04-10&dias=-1", status: http.StatusBadRequest},
		{name: "dias too large", svc: &mockCalendarService{}, method: http.MethodGet, target: "/api/v1/dias-habiles?desde=2026-04-10&dias=3651", status: http.StatusBadRequest},
		{name: "dias not a number", svc: &mockCalendarService{}, method: http.MethodGet, target: "/api/v1/dias-habiles?desde=2026-04-10&dias=abc", status: http.StatusBadRequest},
		{
			name: "dias zero", svc: &mockCalendarService{}, method: http.MethodGet, target: "/api/v1/dias-habiles?desde=2026-05-02&dias=0", status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				if !strings.Contains(string(body), `"fecha":"2026-05-02"`) {
					t.Fatalf("unexpected body: %s", body)
				}
			},
		},
		{
			name: "dias skips weekend", svc: &mockCalendarService{}, method: http.MethodGet, target: "/api/v1/dias-habiles?desde=2026-04-10&dias=1", status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out struct {
					Data struct {
						Desde string `json:"desde"`
						Dias  int    `json:"dias"`
						Fecha string `json:"fecha"`
					} `json:"data"`
				}
				decode(t, body, &out)
				if out.Data.Desde != "2026-04-10" || out.Data.Dias != 1 || out.Data.Fecha != "2026-04-13" {
					t.Fatalf("unexpected body: %+v", out.Data)
				}
			},
		},
		{
			name: "validar ok", svc: &mockCalendarService{}, method: http.MethodPost, target: "/api/v1/timeline/validar", status: http.StatusOK,
			body: `{"fecha_publicacion":"2026-04-06","fecha_limite_solicitud_bases":"2026-04-13","fecha_limite_consultas":"2026-04-16","fecha_inicio_propuestas":"2026-04-17","fecha_limite_propuestas":"2026-04-23","fecha_limite_evaluacion":"2026-04-28"}`,
			assert: func(t *testing.T, body []byte) {
				if !strings.Contains(string(body), `"valid":true`) {
					t.Fatalf("unexpected body: %s", body)
				}
			},
		},
		{
			name: "validar out of order", svc: &mockCalendarService{}, method: http.MethodPost, target: "/api/v1/timeline/validar", status: http.StatusUnprocessableEntity,
			body: `{"fecha_publicacion":"2026-04-06","fecha_limite_solicitud_bases":"2026-04-13","fecha_limite_consultas":"2026-04-16","fecha_inicio_propuestas":"2026-04-17","fecha_limite_propuestas":"2026-04-17","fecha_limite_evaluacion":"2026-04-28"}`,
			assert: func(t *testing.T, body []byte) {
				var out struct {
					Data struct {
						Valid bool   `json:"valid"`
						Stage string `json:"stage"`
					} `json:"data"`
				}
				decode(t, body, &out)
				if out.Data.Valid || out.Data.Stage != calendar.StageLimitePropuesta {
					t.Fatalf("unexpected body: %s", body)
				}
			},
		},
		{name: "validar missing field", svc: &mockCalendarService{}, method: http.MethodPost, target: "/api/v1/timeline/validar", body: `{"fecha_publicacion":"2026-04-06"}`, status: http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)
			w := do(r, tc.method, tc.target, tc.body)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d body=%s", tc.status, w.Code, w.Body.String())
			}
			if tc.assert != nil {
				tc.assert(t, w.Body.Bytes())
			}
		})
	}
}

func TestFeriadosRoutes_TableDriven(t *testing.T) {
	stored := &models.Feriado{ID: 3, Fecha: calendar.MustParseDate("2026-09-19"), Nombre: "Día de las Glorias del Ejército", Year: 2026}

	cases := []struct {
		name   string
		svc    *mockCalendarService
		method string
		target string
		body   string
		status int
		assert func(t *testing.T, m *mockCalendarService, body []byte)
	}{
		{
			name: "list defaults to current year", svc: &mockCalendarService{}, method: http.MethodGet, target: "/api/v1/feriados", status: http.StatusOK,
			assert: func(t *testing.T, m *mockCalendarService, body []byte) {
				if m.gotYear != 2026 {
					t.Fatalf("year=%d", m.gotYear)
				}
				if !strings.Contains(string(body), `"feriados":[]`) {
					t.Fatalf("empty list must serialize as []: %s", body)
				}
			},
		},
		{name: "list bad year", svc: &mockCalendarService{}, method: http.MethodGet, target: "/api/v1/feriados?year=1990", status: http.StatusBadRequest},
		{name: "list error", svc: &mockCalendarService{err: errors.New("db down")}, method: http.MethodGet, target: "/api/v1/feriados?year=2026", status: http.StatusInternalServerError},
		{
			name: "list rows", svc: &mockCalendarService{rows: []models.Feriado{*stored}}, method: http.MethodGet, target: "/api/v1/feriados?year=2026", status: http.StatusOK,
			assert: func(t *testing.T, _ *mockCalendarService, body []byte) {
				if !strings.Contains(string(body), `"fecha":"2026-09-19"`) {
					t.Fatalf("unexpected body: %s", body)
				}
			},
		},
		{
			name: "create", svc: &mockCalendarService{}, method: http.MethodPost, target: "/api/v1/feriados", body: `{"fecha":"2026-12-31","nombre":"  Feriado bancario "}`, status: http.StatusCreated,
			assert: func(t *testing.T, m *mockCalendarService, _ []byte) {
				if m.gotFecha.String() != "2026-12-31" || *m.gotNombre != "Feriado bancario" {
					t.Fatalf("unexpected args: %s %q", m.gotFecha, *m.gotNombre)
				}
			},
		},
		{name: "create missing nombre", svc: &mockCalendarService{}, method: http.MethodPost, target: "/api/v1/feriados", body: `{"fecha":"2026-12-31"}`, status: http.StatusBadRequest},
		{name: "create bad fecha", svc: &mockCalendarService{}, method: http.MethodPost, target: "/api/v1/feriados", body: `{"fecha":"31/12/2026","nombre":"x"}`, status: http.StatusBadRequest},
		{name: "create duplicate", svc: &mockCalendarService{err: storage.ErrDuplicateDate}, method: http.MethodPost, target: "/api/v1/feriados", body: `{"fecha":"2026-09-18","nombre":"x"}`, status: http.StatusConflict},
		{name: "create malformed json", svc: &mockCalendarService{}, method: http.MethodPost, target: "/api/v1/feriados", body: `{"fecha":`, status: http.StatusBadRequest},
		{
			name: "bulk seed", svc: &mockCalendarService{inserted: 16}, method: http.MethodPost, target: "/api/v1/feriados", body: `{"action":"bulk_seed","year":2027}`, status: http.StatusOK,
			assert: func(t *testing.T, m *mockCalendarService, body []byte) {
				if m.gotYear != 2027 || !strings.Contains(string(body), `"inserted":16`) {
					t.Fatalf("year=%d body=%s", m.gotYear, body)
				}
			},
		},
		{name: "bulk seed missing year", svc: &mockCalendarService{}, method: http.MethodPost, target: "/api/v1/feriados", body: `{"action":"bulk_seed"}`, status: http.StatusBadRequest},
		{name: "bulk seed year out of range", svc: &mockCalendarService{}, method: http.MethodPost, target: "/api/v1/feriados", body: `{"action":"bulk_seed","year":3000}`, status: http.StatusBadRequest},
		{name: "unknown action", svc: &mockCalendarService{}, method: http.MethodPost, target: "/api/v1/feriados", body: `{"action":"drop","year":2027}`, status: http.StatusBadRequest},
		{
			name: "update nombre only", svc: &mockCalendarService{feriado: stored}, method: http.MethodPut, target: "/api/v1/feriados", body: `{"id":3,"nombre":"Glorias"}`, status: http.StatusOK,
			assert: func(t *testing.T, m *mockCalendarService, _ []byte) {
				if m.gotFecha != nil || m.gotNombre == nil || *m.gotNombre != "Glorias" {
					t.Fatalf("unexpected args fecha=%v nombre=%v", m.gotFecha, m.gotNombre)
				}
			},
		},
		{name: "update missing id", svc: &mockCalendarService{}, method: http.MethodPut, target: "/api/v1/feriados", body: `{"nombre":"x"}`, status: http.StatusBadRequest},
		{name: "update blank nombre", svc: &mockCalendarService{}, method: http.MethodPut, target: "/api/v1/feriados", body: `{"id":3,"nombre":"   "}`, status: http.StatusBadRequest},
		{name: "update not found", svc: &mockCalendarService{err: storage.ErrNotFound}, method: http.MethodPut, target: "/api/v1/feriados", body: `{"id":99,"fecha":"2026-09-20"}`, status: http.StatusNotFound},
		{name: "delete ok", svc: &mockCalendarService{}, method: http.MethodDelete, target: "/api/v1/feriados", body: `{"id":3}`, status: http.StatusOK},
		{name: "delete not found", svc: &mockCalendarService{err: storage.ErrNotFound}, method: http.MethodDelete, target: "/api/v1/feriados", body: `{"id":3}`, status: http.StatusNotFound},
		{name: "delete bad id", svc: &mockCalendarService{}, method: http.MethodDelete, target: "/api/v1/feriados", body: `{"id":0}`, status: http.StatusBadRequest},
		{
			name: "generar", svc: &mockCalendarService{}, method: http.MethodGet, target: "/api/v1/feriados/generar?year=2027", status: http.StatusOK,
			assert: func(t *testing.T, _ *mockCalendarService, body []byte) {
				var out struct {
					Data struct {
						Year     int                `json:"year"`
						Feriados []calendar.Holiday `json:"feriados"`
					} `json:"data"`
				}
				decode(t, body, &out)
				if out.Data.Year != 2027 || len(out.Data.Feriados) != calendar.HolidaysPerYear {
					t.Fatalf("unexpected body: %s", body)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)
			w := do(r, tc.method, tc.target, tc.body)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d body=%s", tc.status, w.Code, w.Body.String())
			}
			if tc.status >= http.StatusBadRequest && !strings.Contains(w.Body.String(), `"error"`) {
				t.Fatalf("error responses carry an error field: %s", w.Body.String())
			}
			if tc.assert != nil {
				tc.assert(t, tc.svc, w.Body.Bytes())
			}
		})
	}
}

func TestIsoDateRule(t *testing.T) {
	RegisterValidators()
	RegisterValidators()
	type probe struct {
		D string `form:"d" binding:"required,isodate"`
	}
	cases := map[string]bool{
		"2026-04-06": true,
		"2024-02-29": true,
		"2026-02-29": false,
		"2026-4-6":   false,
		"":           false,
	}
	gin.SetMode(gin.TestMode)
	for in, ok := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/?d="+in, nil)
		var p probe
		err := c.ShouldBindQuery(&p)
		if (err == nil) != ok {
			t.Fatalf("isodate(%q) err=%v, want ok=%v", in, err, ok)
		}
	}
}
