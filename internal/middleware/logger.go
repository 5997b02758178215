package middleware

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"lensboard/config"
	"lensboard/internal/core"
	"lensboard/internal/fluentd"
	"lensboard/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Logger struct {
	logger        *zap.Logger
	trace         *telemetry.Trace
	config        *config.Configuration
	logRepository *fluentd.LogRepository
}

func NewLogger(
	logger *zap.Logger,
	trace *telemetry.Trace,
	config *config.Configuration,
	logRepository *fluentd.LogRepository,
) *Logger {
	return &Logger{
		logger:        logger,
		trace:         trace,
		config:        config,
		logRepository: logRepository,
	}
}

// LoggerHandler 記錄每個請求；不讀 body（/auth 的表單含 credential，不落地）
func (m *Logger) LoggerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		endpoint := c.FullPath()
		if strings.HasPrefix(endpoint, "/metrics") ||
			strings.HasPrefix(endpoint, "/version") ||
			strings.HasPrefix(endpoint, "/health") ||
			strings.HasPrefix(endpoint, "/static") {
			c.Next()
			return
		}

		_, span, end := m.trace.WithSpan(c.Request.Context(), string(core.SpanLoggerMiddleware))

		requestTime := time.Now().UTC()
		if _, exists := c.Get("requestDuration"); !exists {
			c.Set("requestDuration", requestTime)
		}

		method := c.Request.Method
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery
		traceID := span.SpanContext().TraceID()

		logFields := []zap.Field{
			zap.String("method", method),
			zap.String("path", path),
			zap.String("clientIP", c.ClientIP()),
		}
		if query != "" {
			logFields = append(logFields, zap.String("query", query))
		}
		logFields = append(logFields, zap.String("traceId", fmt.Sprintf("%x", traceID[:])))

		m.logger.Info("[Request] incoming", logFields...)
		end(nil)

		c.Next()

		duration := time.Since(requestTime)
		m.logger.Info("[Response] done",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", duration),
			zap.String("traceId", fmt.Sprintf("%x", traceID[:])),
		)

		// Fluentd access log
		if err := m.logRepository.LogAccess(fluentd.AccessLog{
			RequestID:   fmt.Sprintf("%x", traceID[:]),
			Method:      method,
			Path:        path,
			Status:      c.Writer.Status(),
			DurationMs:  float64(duration.Milliseconds()),
			ProjectName: m.config.App.Name,
			IPHash:      base64.RawStdEncoding.EncodeToString([]byte(c.ClientIP())),
			UserAgent:   c.Request.UserAgent(),
			RequestTS:   requestTime.Format("2006-01-02 15:04:05.999999 UTC"),
		}); err != nil {
			m.logger.Warn("fluentd access log failed", zap.Error(err))
		}
	}
}
