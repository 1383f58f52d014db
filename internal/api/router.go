package api

import (
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/jengzang/solar-site-backend-go/internal/config"
	"github.com/jengzang/solar-site-backend-go/internal/handler"
	"github.com/jengzang/solar-site-backend-go/internal/middleware"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, regionHandler *handler.RegionHandler, chartHandler *handler.ChartHandler, logger *log.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(logger))

	// 健康检查
	r.GET("/health", regionHandler.Health)

	// API 路由组
	api := r.Group("/api/v1")
	{
		regions := api.Group("/regions")
		{
			regions.GET("", regionHandler.ListRegions)
			regions.GET("/ranking", regionHandler.GetRanking)
			regions.GET("/:id", regionHandler.GetRegion)
			regions.GET("/:id/metrics", regionHandler.GetMetrics)
			regions.GET("/:id/radar", regionHandler.GetRadar)
		}

		api.GET("/dashboard", regionHandler.GetDashboard)
		api.GET("/summary", regionHandler.GetSummary)
		api.GET("/scoring/weights", regionHandler.GetWeights)
		api.GET("/stats/columns", regionHandler.GetColumnStats)

		// 图表渲染接口，按客户端 IP 限流
		charts := api.Group("/charts")
		charts.Use(middleware.RateLimit(middleware.NewRateLimiter(cfg.RateLimit, cfg.RateLimitWindow)))
		{
			charts.GET("/top", chartHandler.GetTopChart)
			charts.GET("/radar/:id", chartHandler.GetRadarChart)
		}
	}

	return r
}
