package router

import (
	"lensboard/internal/handler"
	"lensboard/internal/middleware"

	"github.com/gin-gonic/gin"
)

type DashboardRouter struct {
	auth             *middleware.Auth
	authHandler      *handler.AuthHandler
	dashboardHandler *handler.DashboardHandler
	tracesHandler    *handler.TracesHandler
}

func NewDashboardRouter(
	auth *middleware.Auth,
	authHandler *handler.AuthHandler,
	dashboardHandler *handler.DashboardHandler,
	tracesHandler *handler.TracesHandler,
) *DashboardRouter {
	return &DashboardRouter{
		auth:             auth,
		authHandler:      authHandler,
		dashboardHandler: dashboardHandler,
		tracesHandler:    tracesHandler,
	}
}

func (dr *DashboardRouter) RegisterRoutes(r *gin.Engine) {
	// 入口交接端點本身不需要既有 session
	r.POST("/auth", dr.authHandler.Login)

	secured := r.Group("", dr.auth.Handler())
	{
		secured.GET("/", dr.dashboardHandler.Dashboard)
		secured.GET("/api/traces", dr.tracesHandler.List)
	}
}
