package generations

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"lensboard/config"
	"lensboard/internal/core"
	"lensboard/internal/dto"
	cErr "lensboard/internal/pkg/error"
	"lensboard/internal/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const (
	observationsPath = "/api/public/observations"
	fetchTimeout     = 15 * time.Second
	bodyExcerptLen   = 200
)

type LangfuseService struct {
	conf       *config.Configuration
	logger     *zap.Logger
	trace      *telemetry.Trace
	metric     *telemetry.Metric
	HTTPClient *http.Client
}

// NewLangfuseService 建立 LangfuseService
func NewLangfuseService(
	conf *config.Configuration,
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	client *http.Client,
) Service {
	return &LangfuseService{
		conf:       conf,
		logger:     logger,
		trace:      trace,
		metric:     metric,
		HTTPClient: client,
	}
}

func (s *LangfuseService) ListGenerations(ctx context.Context, limit int) ([]dto.TraceSummary, error) {
	ctx, span, end := s.trace.WithSpan(ctx, "langfuse.observations.list")
	defer end(nil)

	meta := core.TraceFetchMeta{Limit: limit}
	lf := s.conf.Langfuse
	if !lf.Configured() {
		meta.Status = "missing_config"
		s.trace.ApplyTraceAttributes(span, meta)
		cause := cErr.ServiceUnavailable(fmt.Sprintf(
			"Missing Langfuse env: HOST=%t, PK=%t, SK=%t",
			lf.Host != "", lf.PublicKey != "", lf.SecretKey != "",
		))
		end(cause)
		s.logger.Error("langfuse config incomplete", zap.String("detail", cause.ErrorDesc()))
		return nil, cause
	}

	url := strings.TrimRight(lf.Host, "/") + observationsPath
	span.SetAttributes(attribute.String("http.url", url))

	// 單次請求上限 15 秒，不重試
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		end(err)
		return nil, cErr.ServiceUnavailable("Unexpected error: " + err.Error())
	}
	q := req.URL.Query()
	q.Set("limit", strconv.Itoa(limit))
	q.Set("name", "llm_generation")
	q.Set("type", "GENERATION")
	q.Set("order", "desc")
	req.URL.RawQuery = q.Encode()
	req.SetBasicAuth(lf.PublicKey, lf.SecretKey)

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		meta.Status = "network_error"
		s.trace.ApplyTraceAttributes(span, meta)
		s.countUpstream("network_error")
		cause := cErr.ServiceUnavailable("Network error: " + err.Error())
		end(cause)
		s.logger.Error("langfuse request failed", zap.Error(err))
		return nil, cause
	}
	defer resp.Body.Close()

	meta.HttpStatus = resp.StatusCode
	s.countUpstream(strconv.Itoa(resp.StatusCode))

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, bodyExcerptLen))
		meta.Status = "upstream_error"
		s.trace.ApplyTraceAttributes(span, meta)
		cause := cErr.ServiceUnavailable(fmt.Sprintf("HTTP %d: %s", resp.StatusCode, string(b)))
		end(cause)
		s.logger.Error("langfuse non-200 response",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(b)),
		)
		return nil, cause
	}

	var page observationPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		meta.Status = "decode_error"
		s.trace.ApplyTraceAttributes(span, meta)
		cause := cErr.ServiceUnavailable("Unexpected error: " + err.Error())
		end(cause)
		s.logger.Error("langfuse response decode failed", zap.Error(err))
		return nil, cause
	}

	// 上游已依 order=desc 排序，這裡只截 limit 筆、不重排
	raw := page.Data
	if len(raw) > limit {
		raw = raw[:limit]
	}

	items := make([]dto.TraceSummary, 0, len(raw))
	for i, rec := range raw {
		item, err := Normalize(rec, i)
		if err != nil {
			// 單筆失敗只跳過，不影響整批
			s.logger.Warn("skip malformed observation", zap.Int("index", i), zap.Error(err))
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		meta.Status = "empty"
		s.trace.ApplyTraceAttributes(span, meta)
		cause := cErr.ServiceUnavailable("No llm_generation observations found")
		end(cause)
		return nil, cause
	}

	meta.Count = len(items)
	meta.Status = "success"
	s.trace.ApplyTraceAttributes(span, meta)
	s.logger.Info("fetched llm generations",
		zap.Int("requested", limit),
		zap.Int("returned", len(items)),
	)
	return items, nil
}

func (s *LangfuseService) countUpstream(status string) {
	if s.metric != nil && s.metric.UpstreamRequestsTotal != nil {
		s.metric.UpstreamRequestsTotal.WithLabelValues(status).Inc()
	}
}
