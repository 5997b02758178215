package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lensboard/config"
	"lensboard/internal/dto"
	"lensboard/internal/middleware"
	cErr "lensboard/internal/pkg/error"
	"lensboard/internal/pkg/response"
	"lensboard/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type stubGenerations struct {
	items     []dto.TraceSummary
	err       error
	gotLimit  int
	callCount int
}

func (s *stubGenerations) ListGenerations(ctx context.Context, limit int) ([]dto.TraceSummary, error) {
	s.gotLimit = limit
	s.callCount++
	return s.items, s.err
}

func newTracesRouter(t *testing.T, stub *stubGenerations) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	trace, err := telemetry.NewTrace(nil)
	if err != nil {
		t.Fatalf("NewTrace: %v", err)
	}
	logger := zap.NewNop()
	recovery := middleware.NewRecovery(logger, &config.Configuration{})
	h := NewTracesHandler(logger, trace, stub)

	r := gin.New()
	r.Use(recovery.ErrorHandler())
	r.GET("/api/traces", h.List)
	return r
}

func TestTracesList(t *testing.T) {
	t.Parallel()

	stub := &stubGenerations{items: []dto.TraceSummary{
		{ID: "aaaaaaaa", Model: "gpt-4o", TotalTokens: 10},
		{ID: "bbbbbbbb", Model: "unknown"},
	}}
	r := newTracesRouter(t, stub)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/traces", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}
	if stub.gotLimit != 20 {
		t.Errorf("limit = %d, want default 20", stub.gotLimit)
	}

	// 回應是裸陣列，不包 envelope
	var items []dto.TraceSummary
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if len(items) != 2 || items[0].ID != "aaaaaaaa" {
		t.Errorf("items = %+v", items)
	}
}

func TestTracesListLimitClamped(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query string
		want  int
	}{
		{"limit=5", 5},
		{"limit=999", 200},
		{"limit=0", 1},
		{"limit=abc", 20},
	}
	for _, tt := range tests {
		stub := &stubGenerations{items: []dto.TraceSummary{{ID: "x"}}}
		r := newTracesRouter(t, stub)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/api/traces?"+tt.query, nil))

		if stub.gotLimit != tt.want {
			t.Errorf("query %q: limit = %d, want %d", tt.query, stub.gotLimit, tt.want)
		}
	}
}

func TestTracesListUpstreamFailure(t *testing.T) {
	t.Parallel()

	stub := &stubGenerations{err: cErr.ServiceUnavailable("Network error: connection refused")}
	r := newTracesRouter(t, stub)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/traces", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
	var body response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body.Code != cErr.SERVICE_UNAVAILABLE {
		t.Errorf("code = %d, want %d", body.Code, cErr.SERVICE_UNAVAILABLE)
	}
	if body.Description != "Network error: connection refused" {
		t.Errorf("description = %q", body.Description)
	}
}
