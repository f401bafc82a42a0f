package container

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gitlab.com/smartbusstop1/sbs.telemetry_server/src/production/SBS.ApiService/health"
	config "gitlab.com/smartbusstop1/sbs.telemetry_server/src/production/SBS.Config"
	logger "gitlab.com/smartbusstop1/sbs.telemetry_server/src/production/SBS.Logger"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container manages dependencies and their lifecycle
type Container struct {
	config *config.Config
	logger *logger.Logger
	client *mongo.Client

	healthChecker *health.HealthChecker

	// Mutex for thread-safe access
	mu sync.RWMutex
}

// IngestorContainer manages dependencies for the MQTT ingestor bridge
type IngestorContainer struct {
	config *config.IngestorConfig
	logger *logger.Logger
}

// NewContainer creates a new dependency injection container
func NewContainer() (*Container, error) {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	log := logger.NewLogger(&cfg.Logging)

	return &Container{
		config: cfg,
		logger: log,
	}, nil
}

// NewIngestorContainer creates a new container for the MQTT ingestor bridge
func NewIngestorContainer() (*IngestorContainer, error) {
	cfg, err := config.LoadIngestorConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load ingestor configuration: %w", err)
	}

	log := logger.NewLogger(&cfg.Logging)

	return &IngestorContainer{
		config: cfg,
		logger: log,
	}, nil
}

// GetConfig returns the configuration
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetConfig returns the ingestor configuration
func (c *IngestorContainer) GetConfig() *config.IngestorConfig {
	return c.config
}

// GetLogger returns the logger
func (c *Container) GetLogger() *logger.Logger {
	return c.logger
}

// GetLogger returns the logger
func (c *IngestorContainer) GetLogger() *logger.Logger {
	return c.logger
}

// GetMongoClient returns the MongoDB client, connecting on first use
func (c *Container) GetMongoClient() (*mongo.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client == nil {
		client, err := health.ConnectMongoWithTimeout(&c.config.Mongo)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		c.client = client
	}

	return c.client, nil
}

// GetCollection returns a collection from the configured database
func (c *Container) GetCollection(name string) (*mongo.Collection, error) {
	client, err := c.GetMongoClient()
	if err != nil {
		return nil, err
	}
	return client.Database(c.config.Mongo.Database).Collection(name), nil
}

// GetHealthChecker returns the health checker
func (c *Container) GetHealthChecker() (*health.HealthChecker, error) {
	c.mu.Lock()
	if c.healthChecker != nil {
		c.mu.Unlock()
		return c.healthChecker, nil
	}
	c.mu.Unlock()

	// Connect without holding the lock to avoid deadlock
	client, err := c.GetMongoClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get mongo client for health checker: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.healthChecker == nil {
		c.healthChecker = health.NewHealthChecker(client)
	}

	return c.healthChecker, nil
}

// Shutdown gracefully shuts down the container
func (c *Container) Shutdown(ctx context.Context) error {
	c.logger.Info("Shutting down container...")

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := c.client.Disconnect(ctx); err != nil {
			c.logger.ErrorWithError(err, "Error closing MongoDB connection")
		}
		c.client = nil
	}

	c.logger.Info("Container shutdown complete")
	return nil
}

// Shutdown gracefully shuts down the ingestor container
func (c *IngestorContainer) Shutdown(ctx context.Context) error {
	c.logger.Info("Shutting down ingestor container...")
	c.logger.Info("Ingestor container shutdown complete")
	return nil
}
