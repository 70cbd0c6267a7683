package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parcel-tracker/internal/core/cache"
	"parcel-tracker/internal/core/config"
	"parcel-tracker/internal/core/database"
	"parcel-tracker/internal/core/logger"
	"parcel-tracker/internal/core/server"
	parceladapter "parcel-tracker/internal/features/parcels/adapters"
	parcelhandler "parcel-tracker/internal/features/parcels/handler"
	parcelservice "parcel-tracker/internal/features/parcels/service"
	ratehandler "parcel-tracker/internal/features/rates/handler"
	rateservice "parcel-tracker/internal/features/rates/service"
	trackinghandler "parcel-tracker/internal/features/tracking/handler"
	trackingservice "parcel-tracker/internal/features/tracking/service"

	"go.uber.org/zap"
)

const cachePrefix = "parcel-tracker:"

// @title Parcel Tracker API
// @version 1.0
// @description This API tracks parcels and synthesizes their tracking history.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	ctx := context.Background()

	pool, err := database.NewPool(ctx, cfg.Database)
	if err != nil {
		l.Fatal("Database connection failed", zap.Error(err))
	}
	defer pool.Close()
	l.Info("Database connection verified")

	redisCache, err := cache.NewRedisAdapter(cfg.Cache.RedisURL, cachePrefix)
	if err != nil {
		l.Fatal("Invalid Redis configuration", zap.Error(err))
	}
	defer redisCache.Close()
	if err := redisCache.Ping(ctx); err != nil {
		// Parcels are still served from Postgres while Redis is down.
		l.Warn("Redis unreachable, parcel cache degraded", zap.Error(err))
	}

	// Initialize Parcel Store, Service & Handler
	postgresRepo := parceladapter.NewPostgresRepository(pool)
	parcelRepo := parceladapter.NewCachedRepository(postgresRepo, redisCache, cfg.Cache.ParcelTTL(), logger.Named("parcel-cache"))
	activityLogger := parceladapter.NewPostgresActivityLogger(pool)

	parcelSvc := parcelservice.NewParcelService(parcelRepo, activityLogger, cfg.Parcels.DefaultETA(), logger.Named("parcels"))
	parcelHdl := parcelhandler.NewParcelHandler(parcelSvc)

	// Initialize Tracking Service & Handler
	trackingSvc := trackingservice.NewTrackingService(parcelSvc)
	trackingHdl := trackinghandler.NewTrackingHandler(trackingSvc)

	// Initialize Rate Service & Handler
	rateSvc := rateservice.NewRateService(cfg.Rates)
	rateHdl := ratehandler.NewRateHandler(rateSvc)

	srv := server.New(cfg)
	srv.AddHealthCheck("postgres", postgresRepo)
	srv.AddHealthCheck("redis", redisCache)

	// Register Routes
	parcelHdl.Register(srv.App)
	trackingHdl.Register(srv.App)
	rateHdl.Register(srv.App)

	go func() {
		if err := srv.Run(); err != nil {
			l.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	l.Info("Shutting down server")
	if err := srv.Shutdown(10 * time.Second); err != nil {
		l.Error("Server shutdown failed", zap.Error(err))
	}
}
