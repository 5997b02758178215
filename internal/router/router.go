package router

import (
	"lensboard/config"
	"lensboard/internal/handler"
	"lensboard/internal/middleware"
	"lensboard/utils/path"
	"net/http"
	"path/filepath"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var ProviderSet = wire.NewSet(
	NewRouter,
	NewDashboardRouter,
)

// 透過依賴注入組裝 gin engine
func NewRouter(
	config *config.Configuration,
	traceEntry *middleware.TraceEntry,
	recovery *middleware.Recovery,
	cors *middleware.Cors,
	logger *middleware.Logger,
	healthHandler *handler.HealthHandler,
	dashboardRouter *DashboardRouter,
) *gin.Engine {

	switch config.App.Env {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()
	router.Use(traceEntry.Handler())
	router.Use(logger.LoggerHandler())
	router.Use(cors.CorsHandler())
	router.Use(recovery.ErrorHandler())

	root := path.RootPath()
	if ok, _ := path.Exists(filepath.Join(root, "templates")); ok {
		router.LoadHTMLGlob(filepath.Join(root, "templates", "*"))
	}
	if ok, _ := path.Exists(filepath.Join(root, "static")); ok {
		router.Static("/static", filepath.Join(root, "static"))
	}

	router.GET("/health", healthHandler.Health)

	// 列出已註冊路由，方便部署後確認
	router.GET("/test", func(c *gin.Context) {
		routes := make([]string, 0, len(router.Routes()))
		for _, r := range router.Routes() {
			routes = append(routes, r.Method+" "+r.Path)
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Router loaded",
			"routes":  routes,
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	dashboardRouter.RegisterRoutes(router)
	pprof.Register(router)
	return router
}
