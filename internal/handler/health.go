package handler

import (
	"net/http"

	"lensboard/config"
	"lensboard/internal/service"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	conf         *config.Configuration
	healthStatus *service.HealthService
}

func NewHealthHandler(conf *config.Configuration, status *service.HealthService) *HealthHandler {
	return &HealthHandler{conf: conf, healthStatus: status}
}

// Health 永遠 200；liveness 只在行程損毀時才會變動
func (h *HealthHandler) Health(c *gin.Context) {
	status := "healthy"
	if !h.healthStatus.IsLive() {
		status = "unhealthy"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  status,
		"version": h.conf.App.Version,
	})
}
