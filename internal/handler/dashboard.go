package handler

import (
	"net/http"

	"lensboard/internal/middleware"
	cErr "lensboard/internal/pkg/error"
	"lensboard/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	logger *zap.Logger
}

func NewDashboardHandler(logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{logger: logger}
}

// Dashboard 渲染儀表板，身份由 auth middleware 驗好放進 context
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		response.AbortWithError(c, cErr.Unauthorized("No token provided"))
		return
	}

	h.logger.Info("dashboard accessed",
		zap.Int64("userID", identity.ID),
		zap.String("email", identity.Email),
	)
	c.HTML(http.StatusOK, "index.html", gin.H{
		"user": identity,
	})
}
