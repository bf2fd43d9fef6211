// Package client is a small Go client for the licitacal HTTP API.
package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/tidwall/gjson"
)

const (
	dateLayout        = "2006-01-02"
	defaultTimeout    = 10 * time.Second
	defaultMaxRetries = 3
	defaultInterval   = 200 * time.Millisecond
)

// APIError is returned when the server answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Message    string
	Details    string
}

func (e *APIError) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("licitacal: %d %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("licitacal: %d %s: %s", e.StatusCode, e.Message, e.Details)
}

// Timeline mirrors the API's timeline payload. Dates are YYYY-MM-DD.
type Timeline struct {
	FechaPublicacion          string
	FechaLimiteSolicitudBases string
	FechaLimiteConsultas      string
	FechaInicioPropuestas     string
	FechaLimitePropuestas     string
	FechaLimiteEvaluacion     string
}

// Holiday is one stored feriado.
type Holiday struct {
	ID     int64
	Fecha  string
	Nombre string
	Year   int
}

type Client struct {
	http        *resty.Client
	maxRetries  uint64
	initialWait time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-attempt HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.SetTimeout(d) }
}

// WithMaxRetries sets how many times a failed call is retried on
// transport errors and 5xx responses. Zero disables retries.
func WithMaxRetries(n uint64) Option {
	return func(c *Client) { c.maxRetries = n }
}

// WithRetryInterval sets the first backoff wait.
func WithRetryInterval(d time.Duration) Option {
	return func(c *Client) { c.initialWait = d }
}

// New returns a client for the API served at baseURL (e.g. "http://localhost:8080").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		http:        resty.New().SetBaseURL(baseURL).SetTimeout(defaultTimeout).SetHeader("Accept", "application/json"),
		maxRetries:  defaultMaxRetries,
		initialWait: defaultInterval,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Timeline fetches the licitación timeline for a publication date.
func (c *Client) Timeline(ctx context.Context, fechaPublicacion string) (Timeline, error) {
	if err := checkDate(fechaPublicacion); err != nil {
		return Timeline{}, err
	}
	body, err := c.get(ctx, "/api/v1/timeline", map[string]string{"fecha_publicacion": fechaPublicacion})
	if err != nil {
		return Timeline{}, err
	}

	data := gjson.GetBytes(body, "data")
	if !data.Exists() {
		return Timeline{}, eris.New("response didn't contain any data key")
	}
	tl := Timeline{
		FechaPublicacion:          data.Get("fecha_publicacion").String(),
		FechaLimiteSolicitudBases: data.Get("fecha_limite_solicitud_bases").String(),
		FechaLimiteConsultas:      data.Get("fecha_limite_consultas").String(),
		FechaInicioPropuestas:     data.Get("fecha_inicio_propuestas").String(),
		FechaLimitePropuestas:     data.Get("fecha_limite_propuestas").String(),
		FechaLimiteEvaluacion:     data.Get("fecha_limite_evaluacion").String(),
	}
	if tl.FechaLimiteEvaluacion == "" {
		return Timeline{}, eris.New("response didn't contain a complete timeline")
	}
	return tl, nil
}

// AddBusinessDays asks the server for the date n business days after desde.
func (c *Client) AddBusinessDays(ctx context.Context, desde string, n int) (string, error) {
	if err := checkDate(desde); err != nil {
		return "", err
	}
	if n < 0 {
		return "", eris.Errorf("business day count must be non-negative, got %d", n)
	}
	body, err := c.get(ctx, "/api/v1/dias-habiles", map[string]string{"desde": desde, "dias": strconv.Itoa(n)})
	if err != nil {
		return "", err
	}
	res := gjson.GetBytes(body, "data.fecha")
	if !res.Exists() {
		return "", eris.New("response didn't contain data.fecha")
	}
	return res.String(), nil
}

// Holidays lists the holidays stored for year.
func (c *Client) Holidays(ctx context.Context, year int) ([]Holiday, error) {
	body, err := c.get(ctx, "/api/v1/feriados", map[string]string{"year": strconv.Itoa(year)})
	if err != nil {
		return nil, err
	}
	list := gjson.GetBytes(body, "data.feriados")
	if !list.IsArray() {
		return nil, eris.New("response didn't contain any feriados array")
	}
	out := make([]Holiday, 0, len(list.Array()))
	for _, f := range list.Array() {
		out = append(out, Holiday{
			ID:     f.Get("id").Int(),
			Fecha:  f.Get("fecha").String(),
			Nombre: f.Get("nombre").String(),
			Year:   int(f.Get("year").Int()),
		})
	}
	return out, nil
}

// get performs a GET with retries. Transport errors and 5xx are retried with
// exponential backoff; other non-2xx statuses fail immediately with *APIError.
func (c *Client) get(ctx context.Context, path string, query map[string]string) ([]byte, error) {
	requestID := uuid.NewString()
	var body []byte

	op := func() error {
		resp, err := c.http.R().
			SetContext(ctx).
			SetHeader("X-Request-ID", requestID).
			SetQueryParams(query).
			Get(path)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(eris.Wrapf(err, "GET %s", path))
			}
			return eris.Wrapf(err, "GET %s", path)
		}
		if resp.IsError() {
			apiErr := &APIError{
				StatusCode: resp.StatusCode(),
				Message:    gjson.GetBytes(resp.Body(), "error").String(),
				Details:    gjson.GetBytes(resp.Body(), "details").String(),
			}
			if apiErr.Message == "" {
				apiErr.Message = http.StatusText(resp.StatusCode())
			}
			if resp.StatusCode() < http.StatusInternalServerError {
				return backoff.Permanent(apiErr)
			}
			return apiErr
		}
		body = resp.Body()
		return nil
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = c.initialWait
	b := backoff.WithContext(backoff.WithMaxRetries(eb, c.maxRetries), ctx)
	if err := backoff.Retry(op, b); err != nil {
		return nil, err
	}
	return body, nil
}

func checkDate(s string) error {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return eris.Wrapf(err, "invalid date %q, expected YYYY-MM-DD", s)
	}
	return nil
}
