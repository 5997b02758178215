package generations

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"lensboard/config"
	cErr "lensboard/internal/pkg/error"
	"lensboard/internal/telemetry"

	"go.uber.org/zap"
)

func newTestService(t *testing.T, host, publicKey, secretKey string) Service {
	t.Helper()
	conf := &config.Configuration{}
	conf.Langfuse.Host = host
	conf.Langfuse.PublicKey = publicKey
	conf.Langfuse.SecretKey = secretKey

	trace, err := telemetry.NewTrace(nil)
	if err != nil {
		t.Fatalf("NewTrace: %v", err)
	}
	return NewLangfuseService(conf, zap.NewNop(), trace, telemetry.NewMetric(nil), http.DefaultClient)
}

func asAppErr(t *testing.T, err error) *cErr.Error {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	appErr, ok := err.(*cErr.Error)
	if !ok {
		t.Fatalf("error type = %T, want *cErr.Error", err)
	}
	return appErr
}

func TestListGenerations(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/public/observations" {
			t.Errorf("path = %q", r.URL.Path)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "pk-test" || pass != "sk-test" {
			t.Errorf("basic auth = %q/%q/%v", user, pass, ok)
		}
		q := r.URL.Query()
		if q.Get("limit") != "2" || q.Get("name") != "llm_generation" ||
			q.Get("type") != "GENERATION" || q.Get("order") != "desc" {
			t.Errorf("query = %v", q)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"id": "obs-aaaaaaaa", "model": "gpt-4o"},
				{"id": "obs-bbbbbbbb", "model": "claude-3"},
			},
		})
	}))
	defer srv.Close()

	svc := newTestService(t, srv.URL, "pk-test", "sk-test")
	items, err := svc.ListGenerations(context.Background(), 2)
	if err != nil {
		t.Fatalf("ListGenerations error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if items[0].ID != "aaaaaaaa" || items[0].Model != "gpt-4o" {
		t.Errorf("items[0] = %+v", items[0])
	}
}

func TestListGenerationsMissingConfig(t *testing.T) {
	t.Parallel()

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	svc := newTestService(t, srv.URL, "pk-test", "")
	_, err := svc.ListGenerations(context.Background(), 20)

	appErr := asAppErr(t, err)
	if appErr.HttpCode() != 503 {
		t.Errorf("HttpCode = %d, want 503", appErr.HttpCode())
	}
	want := "Missing Langfuse env: HOST=true, PK=true, SK=false"
	if appErr.ErrorDesc() != want {
		t.Errorf("ErrorDesc = %q, want %q", appErr.ErrorDesc(), want)
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Error("upstream was called despite missing config")
	}
}

func TestListGenerationsUpstreamError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal failure", http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := newTestService(t, srv.URL, "pk-test", "sk-test")
	_, err := svc.ListGenerations(context.Background(), 20)

	appErr := asAppErr(t, err)
	if appErr.HttpCode() != 503 {
		t.Errorf("HttpCode = %d, want 503", appErr.HttpCode())
	}
	if !strings.HasPrefix(appErr.ErrorDesc(), "HTTP 500:") {
		t.Errorf("ErrorDesc = %q, want HTTP 500 prefix", appErr.ErrorDesc())
	}
}

func TestListGenerationsNetworkError(t *testing.T) {
	t.Parallel()

	// 先關掉 server 再呼叫，模擬連線被拒
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	svc := newTestService(t, url, "pk-test", "sk-test")
	_, err := svc.ListGenerations(context.Background(), 20)

	appErr := asAppErr(t, err)
	if appErr.HttpCode() != 503 {
		t.Errorf("HttpCode = %d, want 503", appErr.HttpCode())
	}
	if !strings.HasPrefix(appErr.ErrorDesc(), "Network error: ") {
		t.Errorf("ErrorDesc = %q, want Network error prefix", appErr.ErrorDesc())
	}
}

func TestListGenerationsDecodeError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	svc := newTestService(t, srv.URL, "pk-test", "sk-test")
	_, err := svc.ListGenerations(context.Background(), 20)

	appErr := asAppErr(t, err)
	if !strings.HasPrefix(appErr.ErrorDesc(), "Unexpected error: ") {
		t.Errorf("ErrorDesc = %q, want Unexpected error prefix", appErr.ErrorDesc())
	}
}

func TestListGenerationsEmpty(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	}))
	defer srv.Close()

	svc := newTestService(t, srv.URL, "pk-test", "sk-test")
	_, err := svc.ListGenerations(context.Background(), 20)

	appErr := asAppErr(t, err)
	if appErr.ErrorDesc() != "No llm_generation observations found" {
		t.Errorf("ErrorDesc = %q", appErr.ErrorDesc())
	}
}

func TestListGenerationsTruncatesToLimit(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data := make([]map[string]any, 5)
		for i := range data {
			data[i] = map[string]any{"id": "obs", "model": "m"}
		}
		json.NewEncoder(w).Encode(map[string]any{"data": data})
	}))
	defer srv.Close()

	svc := newTestService(t, srv.URL, "pk-test", "sk-test")
	items, err := svc.ListGenerations(context.Background(), 3)
	if err != nil {
		t.Fatalf("ListGenerations error: %v", err)
	}
	if len(items) != 3 {
		t.Errorf("len(items) = %d, want 3", len(items))
	}
}

func TestListGenerationsSkipsMalformedRecords(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [{"id": "obs-aaaaaaaa"}, "not an object", {"id": "obs-bbbbbbbb"}]}`))
	}))
	defer srv.Close()

	svc := newTestService(t, srv.URL, "pk-test", "sk-test")
	items, err := svc.ListGenerations(context.Background(), 20)
	if err != nil {
		t.Fatalf("ListGenerations error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2 with malformed record skipped", len(items))
	}
	if items[0].ID != "aaaaaaaa" || items[1].ID != "bbbbbbbb" {
		t.Errorf("items = %+v", items)
	}
}
