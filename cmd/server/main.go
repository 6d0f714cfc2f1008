// cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andresuchdata/lotplan/internal/api"
	"github.com/andresuchdata/lotplan/internal/cache"
	"github.com/andresuchdata/lotplan/internal/config"
	"github.com/andresuchdata/lotplan/internal/repository"
	"github.com/andresuchdata/lotplan/internal/repository/postgres"
	"github.com/andresuchdata/lotplan/internal/service"
	"github.com/andresuchdata/lotplan/internal/storage"
	"github.com/andresuchdata/lotplan/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	logger.Configure(cfg.Log.Level, cfg.Log.Format)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize persistence
	var repo repository.PlanRepository
	if cfg.Database.Enabled {
		db, err := postgres.NewDB(&cfg.Database)
		if err != nil {
			logger.Log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		defer db.Close()
		repo = postgres.NewPlanRepository(db)
	} else {
		logger.Log.Warn().Msg("Database disabled, plan runs are kept in memory")
		repo = repository.NewMemoryPlanRepository()
	}

	planCache, err := cache.NewPlanCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Redis unavailable, plan cache disabled")
		planCache = cache.NewNoopPlanCache()
	}

	opts := service.PlanServiceOptions{
		MaxPeriods:    cfg.Solver.MaxPeriods,
		BatchWorkers:  cfg.Solver.BatchWorkers,
		ArchivePrefix: cfg.Storage.Prefix,
	}
	if cfg.Storage.Enabled {
		archive, err := storage.NewMinioClient(cfg.Storage)
		if err != nil {
			logger.Log.Warn().Err(err).Msg("Object storage unavailable, plan archive disabled")
		} else {
			opts.Archive = archive
		}
	}

	// Initialize services
	planService := service.NewPlanService(repo, planCache, opts)

	// Initialize HTTP server
	router := api.NewRouter(&api.Services{PlanService: planService}, cfg.Server.AllowedOrigins, cfg.Server.MaxBodyBytes)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
