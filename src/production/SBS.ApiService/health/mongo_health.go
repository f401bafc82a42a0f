package health

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	config "gitlab.com/smartbusstop1/sbs.telemetry_server/src/production/SBS.Config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ConnectMongoWithTimeout creates a MongoDB connection with a timeout context
func ConnectMongoWithTimeout(cfg *config.MongoConfig) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.URI)

	// Additional TLS configuration for Atlas
	clientOptions.SetTLSConfig(&tls.Config{
		MinVersion: tls.VersionTLS12,
	})

	clientOptions.SetServerSelectionTimeout(10 * time.Second)
	clientOptions.SetConnectTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to MongoDB: %w", err)
	}

	// Test the connection
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("unable to ping MongoDB: %w", err)
	}

	return client, nil
}

// HealthChecker provides health check functionality
type HealthChecker struct {
	client *mongo.Client
}

// NewHealthChecker creates a new health checker
func NewHealthChecker(client *mongo.Client) *HealthChecker {
	return &HealthChecker{client: client}
}

// PingMongo checks if the MongoDB connection is healthy
func (h *HealthChecker) PingMongo(ctx context.Context) error {
	if h.client == nil {
		return fmt.Errorf("mongo client is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return h.client.Ping(ctx, readpref.Primary())
}

// GetHealthStatus returns the current health status
func (h *HealthChecker) GetHealthStatus(ctx context.Context) map[string]interface{} {
	checks := make(map[string]interface{})

	dbStatus := "ok"
	if err := h.PingMongo(ctx); err != nil {
		dbStatus = "error"
		checks["mongo"] = map[string]interface{}{
			"status": dbStatus,
			"error":  err.Error(),
		}
	} else {
		checks["mongo"] = map[string]interface{}{
			"status": dbStatus,
		}
	}

	overallStatus := "ok"
	if dbStatus != "ok" {
		overallStatus = "degraded"
	}

	return map[string]interface{}{
		"status":    overallStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks":    checks,
	}
}
