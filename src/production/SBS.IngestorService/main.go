package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	container "gitlab.com/smartbusstop1/sbs.telemetry_server/src/production/SBS.Container"
	"gitlab.com/smartbusstop1/sbs.telemetry_server/src/production/SBS.IngestorService/client"
	sbsingestor "gitlab.com/smartbusstop1/sbs.telemetry_server/src/production/SBS.IngestorService/ingestor"
)

func main() {
	// Initialize dependency injection container
	ctr, err := container.NewIngestorContainer()
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize container: %v", err))
	}
	defer ctr.Shutdown(context.Background())

	logger := ctr.GetLogger().WithService("mqtt-ingestor")
	logger.Info("Starting MQTT Ingestor Bridge")

	// Get configuration
	config := ctr.GetConfig()

	// Create API client
	apiClient := client.NewAPIClient(config.ApiServiceURL)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create and start MQTT ingestor
	ing := sbsingestor.New(config.MQTT, apiClient, logger)
	if err := ing.Start(ctx); err != nil {
		logger.FatalWithError(err, "Failed to start MQTT ingestor")
	}

	logger.Info("MQTT ingestor running... press Ctrl+C to stop")

	// Wait for shutdown signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logger.Info("Shutting down...")
	cancel()
	ing.Stop()
}
