package middleware

import (
	"bufio"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/licitacal/internal/logger"
)

func TestToString(t *testing.T) {
	if s := toString(nil); s != "" {
		t.Fatalf("nil -> %q, want empty", s)
	}
	if s := toString("abc"); s != "abc" {
		t.Fatalf("string -> %q, want 'abc'", s)
	}
	if s := toString(123); s != "" {
		t.Fatalf("non-string -> %q, want empty", s)
	}
}

func TestRequestLogger_LevelsAndFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("LOG_PRETTY", "false")
	var buf bytes.Buffer
	logger.InitWithWriter(&buf)
	t.Cleanup(logger.Init)

	router := gin.New()
	router.Use(RequestID(), RequestLogger())
	router.GET("/ok/:id", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	router.GET("/bad", func(c *gin.Context) { AbortWithError(c, http.StatusBadRequest, "bad", assertErr{}) })
	router.GET("/fail", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, p := range []string{"/ok/7", "/bad", "/fail"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, p, nil))
		if w.Header().Get(RequestIDHeader) == "" {
			t.Fatalf("missing X-Request-ID header for %s", p)
		}
	}

	var entries []map[string]any
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		var e map[string]any
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			t.Fatalf("invalid log line %q: %v", sc.Text(), err)
		}
		if e["message"] == "http_request" {
			entries = append(entries, e)
		}
	}
	if len(entries) != 3 {
		t.Fatalf("want 3 request entries, got %d", len(entries))
	}

	wantLevels := []string{"info", "warn", "error"}
	for i, e := range entries {
		if e["level"] != wantLevels[i] {
			t.Fatalf("entry %d level=%v want %s", i, e["level"], wantLevels[i])
		}
		if e["component"] != "http" || e["request_id"] == "" {
			t.Fatalf("entry %d missing fields: %v", i, e)
		}
	}
	if entries[0]["route"] != "/ok/:id" || entries[0]["path"] != "/ok/7" {
		t.Fatalf("unexpected route/path: %v", entries[0])
	}
	if entries[1]["errors"] == nil {
		t.Fatalf("expected errors field on failed request: %v", entries[1])
	}
}
