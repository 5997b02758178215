package handler

import (
	"net/http"

	"lensboard/internal/middleware"
	"lensboard/internal/pkg/response"
	"lensboard/internal/service/generations"
	"lensboard/internal/telemetry"
	"lensboard/utils/validate"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	defaultLimit = 20
	minLimit     = 1
	maxLimit     = 200
)

type TracesHandler struct {
	logger             *zap.Logger
	trace              *telemetry.Trace
	generationsService generations.Service
}

func NewTracesHandler(
	logger *zap.Logger,
	trace *telemetry.Trace,
	generationsService generations.Service,
) *TracesHandler {
	return &TracesHandler{
		logger:             logger,
		trace:              trace,
		generationsService: generationsService,
	}
}

// List 回傳標準化後的觀測摘要列表。
// limit 夾在 [1,200]，解析失敗用 20；fetcher 的任何失敗對外都是 503。
func (h *TracesHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	limit := validate.ClampIntQuery(c, "limit", defaultLimit, minLimit, maxLimit)

	items, err := h.generationsService.ListGenerations(ctx, limit)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}

	if identity, ok := middleware.IdentityFrom(c); ok {
		h.logger.Info("returning traces",
			zap.Int("count", len(items)),
			zap.Int64("userID", identity.ID),
		)
	}
	c.JSON(http.StatusOK, items)
}
