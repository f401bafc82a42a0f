package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gitlab.com/smartbusstop1/sbs.telemetry_server/src/production/SBS.ApiService/controllers"
	"gitlab.com/smartbusstop1/sbs.telemetry_server/src/production/SBS.ApiService/implementation/clock"
	"gitlab.com/smartbusstop1/sbs.telemetry_server/src/production/SBS.ApiService/implementation/dashboard"
	"gitlab.com/smartbusstop1/sbs.telemetry_server/src/production/SBS.ApiService/implementation/forwarder"
	"gitlab.com/smartbusstop1/sbs.telemetry_server/src/production/SBS.ApiService/implementation/pipeline"
	"gitlab.com/smartbusstop1/sbs.telemetry_server/src/production/SBS.ApiService/implementation/throttle"
	container "gitlab.com/smartbusstop1/sbs.telemetry_server/src/production/SBS.Container"
	implementation "gitlab.com/smartbusstop1/sbs.telemetry_server/src/production/SBS.Repository/Implementation"
)

func main() {
	// Initialize dependency injection container
	ctr, err := container.NewContainer()
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize container: %v", err))
	}
	defer ctr.Shutdown(context.Background())

	logger := ctr.GetLogger().WithService("api-service")
	logger.Info("Starting Smart Bus Stop API Service")

	// Get configuration
	config := ctr.GetConfig()

	// Create repositories on their collections
	statusColl, err := ctr.GetCollection(config.Mongo.StatusCollection)
	if err != nil {
		logger.FatalWithError(err, "Failed to get status collection")
	}
	settingsColl, err := ctr.GetCollection(config.Mongo.SettingsCollection)
	if err != nil {
		logger.FatalWithError(err, "Failed to get settings collection")
	}
	logsColl, err := ctr.GetCollection(config.Mongo.LogsCollection)
	if err != nil {
		logger.FatalWithError(err, "Failed to get logs collection")
	}

	statusRepo := implementation.NewMongoStatusRepository(statusColl)
	throttleRepo := implementation.NewMongoThrottleRepository(settingsColl)
	logRepo := implementation.NewMongoLogRepository(logsColl)

	// Assemble the ingestion pipeline
	timeSource := clock.NewFixedOffset(config.Time.UTCOffsetHours)
	gate := throttle.NewGate(throttleRepo, config.Throttle.Window, logger)
	fwd := forwarder.New(config.GetTelemetryURL(), config.Telemetry.Timeout)
	pipe := pipeline.New(statusRepo, logRepo, gate, fwd, timeSource, logger)
	renderer := dashboard.NewRenderer()

	// Health checker
	healthChecker, err := ctr.GetHealthChecker()
	if err != nil {
		logger.FatalWithError(err, "Failed to initialize health checker")
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Create controllers and register routes
	stationController := controllers.NewStationController(pipe, statusRepo, renderer, logger)
	healthController := controllers.NewHealthController(healthChecker)

	stationController.RegisterRoutes(router)
	healthController.RegisterRoutes(router)

	// Get port from configuration
	port := config.Server.Port

	// Create HTTP server with timeouts
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  config.Server.ReadTimeout,
		WriteTimeout: config.Server.WriteTimeout,
		IdleTimeout:  config.Server.IdleTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		logger.Info("HTTP server starting on port " + port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.FatalWithError(err, "Failed to start HTTP server")
		}
	}()

	logger.Info("API service running... press Ctrl+C to stop")

	// Wait for shutdown signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logger.Info("Shutting down...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorWithError(err, "Server forced to shutdown")
	}
}
