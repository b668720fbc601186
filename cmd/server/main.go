package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/shyamganesh19k-droid/Barcode/internal/bom"
	"github.com/shyamganesh19k-droid/Barcode/internal/config"
	"github.com/shyamganesh19k-droid/Barcode/internal/handlers"
	"github.com/shyamganesh19k-droid/Barcode/internal/label"
	"github.com/shyamganesh19k-droid/Barcode/internal/sweeper"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg := config.Load()

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		logger.Fatal("create output dir failed",
			zap.String("dir", cfg.OutputDir), zap.Error(err))
	}

	fonts := label.LoadFonts(cfg.FontDir, logger)
	renderer := label.NewRenderer(cfg.OutputDir, label.DefaultLayout, fonts, logger)
	catalog := bom.NewCatalog(cfg.WorkbookPath, bom.DefaultAliases)
	service := label.NewService(catalog, renderer, logger)

	sweep := sweeper.New(cfg.OutputDir, cfg.SweepMaxAge, logger)
	if err := sweep.Start(cfg.SweepSchedule); err != nil {
		logger.Fatal("start sweeper failed", zap.Error(err))
	}

	router := gin.Default()
	router.Use(handlers.RequestID())
	router.LoadHTMLGlob(cfg.TemplateGlob)
	router.Static("/static", cfg.StaticDir)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	handlers.NewAPI(service, logger).RegisterRoutes(router)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: router}
	go func() {
		logger.Info("label service listening",
			zap.String("port", cfg.Port), zap.String("workbook", cfg.WorkbookPath))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	sweep.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown incomplete", zap.Error(err))
	}
}
