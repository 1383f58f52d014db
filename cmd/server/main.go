package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot/vg"

	"github.com/jengzang/solar-site-backend-go/internal/api"
	"github.com/jengzang/solar-site-backend-go/internal/charts"
	"github.com/jengzang/solar-site-backend-go/internal/config"
	"github.com/jengzang/solar-site-backend-go/internal/dataset"
	"github.com/jengzang/solar-site-backend-go/internal/handler"
	"github.com/jengzang/solar-site-backend-go/internal/service"
	"github.com/jengzang/solar-site-backend-go/pkg/logger"
)

func main() {
	// 加载配置
	cfg := config.Load()

	if err := logger.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatal("Failed to configure logger: ", err)
	}
	gin.SetMode(gin.ReleaseMode)

	// 加载并评分数据集
	session, err := service.LoadSession(context.Background(), cfg.DatasetPath, dataset.Options{
		Sheet: cfg.DatasetSheet,
		Table: cfg.DatasetTable,
	})
	if err != nil {
		log.WithField("path", cfg.DatasetPath).Fatal("Failed to load dataset: ", err)
	}

	dashboardService := service.NewDashboardService(session, cfg.TopN)
	chartSize := charts.Size{
		Width:  vg.Length(cfg.ChartWidthCM) * vg.Centimeter,
		Height: vg.Length(cfg.ChartHeightCM) * vg.Centimeter,
	}

	// 初始化路由
	router := api.SetupRouter(
		cfg,
		handler.NewRegionHandler(dashboardService),
		handler.NewChartHandler(dashboardService, chartSize),
		log.StandardLogger(),
	)

	srv := &http.Server{
		Addr: cfg.Port,
		Handler: cors.Handler(cors.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"Content-Length", "X-Request-ID"},
			MaxAge:         300,
		})(router),
	}

	// 启动服务器
	go func() {
		log.Infof("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server shutdown: ", err)
	}

	log.Info("Server exiting")
}
