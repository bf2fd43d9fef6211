package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		ping func(context.Context) error
		path string
		want int
	}{
		{name: "healthz ok", path: "/healthz", want: http.StatusOK},
		{name: "healthz ignores db", ping: func(context.Context) error { return errors.New("down") }, path: "/healthz", want: http.StatusOK},
		{name: "readyz without ping", path: "/readyz", want: http.StatusOK},
		{name: "readyz ok", ping: func(context.Context) error { return nil }, path: "/readyz", want: http.StatusOK},
		{name: "readyz degraded", ping: func(context.Context) error { return errors.New("down") }, path: "/readyz", want: http.StatusServiceUnavailable},
		{name: "readyz gets deadline", ping: func(ctx context.Context) error {
			if _, ok := ctx.Deadline(); !ok {
				return errors.New("no deadline")
			}
			return nil
		}, path: "/readyz", want: http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			NewHealthHandler(tc.ping).Register(r)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
			if w.Code != tc.want {
				t.Fatalf("want %d got %d", tc.want, w.Code)
			}
		})
	}
}
