package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"printdesk/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	l, err := New(config.LogConfig{Level: "warn", Format: "json"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("info must be disabled at warn level")
	}
	if !l.Core().Enabled(zapcore.WarnLevel) {
		t.Fatalf("warn must be enabled")
	}
}

func TestGinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)

	r := gin.New()
	r.Use(GinMiddleware(log), Recovery(log))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	cases := []struct {
		path    string
		status  int
		level   zapcore.Level
		message string
	}{
		{"/ok", http.StatusOK, zapcore.InfoLevel, "[http] request"},
		{"/missing", http.StatusNotFound, zapcore.WarnLevel, "[http] client error"},
		{"/panic", http.StatusInternalServerError, zapcore.ErrorLevel, "[http] server error"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			req.Header.Set("X-Actor", "Maya")
			r.ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			entries := logs.FilterMessage(tc.message).TakeAll()
			if len(entries) != 1 || entries[0].Level != tc.level {
				t.Fatalf("expected one %s entry %q, got %+v", tc.level, tc.message, entries)
			}
			if entries[0].ContextMap()["actor"] != "Maya" {
				t.Fatalf("actor field missing: %+v", entries[0].ContextMap())
			}
		})
	}
}
