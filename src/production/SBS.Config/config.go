package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig `json:"server"`

	// MongoDB configuration
	Mongo MongoConfig `json:"mongo"`

	// Throttle configuration for the history log
	Throttle ThrottleConfig `json:"throttle"`

	// Station local-time configuration
	Time TimeConfig `json:"time"`

	// External telemetry sink configuration
	Telemetry TelemetryConfig `json:"telemetry"`

	// Logging configuration
	Logging LoggingConfig `json:"logging"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port         string        `json:"port"`
	ReadTimeout  time.Duration `json:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout"`
	IdleTimeout  time.Duration `json:"idle_timeout"`
}

// MongoConfig holds document-store configuration
type MongoConfig struct {
	URI                string        `json:"uri"`
	Database           string        `json:"database"`
	StatusCollection   string        `json:"status_collection"`
	SettingsCollection string        `json:"settings_collection"`
	LogsCollection     string        `json:"logs_collection"`
	ConnectTimeout     time.Duration `json:"connect_timeout"`
}

// ThrottleConfig holds history-log throttling configuration
type ThrottleConfig struct {
	Window time.Duration `json:"window"`
}

// TimeConfig holds the fixed UTC offset the station reports in
type TimeConfig struct {
	UTCOffsetHours int `json:"utc_offset_hours"`
}

// TelemetryConfig holds external telemetry sink configuration
type TelemetryConfig struct {
	Host        string        `json:"host"`
	AccessToken string        `json:"access_token"`
	Timeout     time.Duration `json:"timeout"`
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level        string `json:"level"`
	Format       string `json:"format"` // json or text
	Output       string `json:"output"` // stdout, stderr, or file path
	EnableCaller bool   `json:"enable_caller"`
}

// MQTTConfig holds MQTT-related configuration for the ingestor bridge
type MQTTConfig struct {
	BrokerHost  string        `json:"broker_host"`
	BrokerPort  int           `json:"broker_port"`
	BrokerUser  string        `json:"broker_user"`
	BrokerPass  string        `json:"broker_pass"`
	UseTLS      bool          `json:"use_tls"`
	CACertPath  string        `json:"ca_cert_path"`
	Topic       string        `json:"topic"`
	ClientID    string        `json:"client_id"`
	SharedGroup string        `json:"shared_group"`
	KeepAlive   time.Duration `json:"keep_alive"`
	PingTimeout time.Duration `json:"ping_timeout"`
}

// IngestorConfig holds configuration for the MQTT ingestor bridge service
type IngestorConfig struct {
	MQTT          MQTTConfig    `json:"mqtt"`
	Logging       LoggingConfig `json:"logging"`
	ApiServiceURL string        `json:"api_service_url"`
}

// Load loads configuration from environment variables with fallback defaults
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	if err := godotenv.Load(); err != nil {
		// Silently ignore .env file loading errors
		// This allows the application to work with environment variables set directly
	}

	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getDuration("READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDuration("WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getDuration("IDLE_TIMEOUT", 120*time.Second),
		},
		Mongo: MongoConfig{
			URI:                getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database:           getEnv("DB_NAME", "smartbusstop"),
			StatusCollection:   getEnv("STATUS_COLL", "status"),
			SettingsCollection: getEnv("SETTINGS_COLL", "settings"),
			LogsCollection:     getEnv("LOGS_COLL", "logs"),
			ConnectTimeout:     getDuration("MONGO_CONNECT_TIMEOUT", 20*time.Second),
		},
		Throttle: ThrottleConfig{
			Window: getDuration("LOG_THROTTLE_WINDOW", 20*time.Second),
		},
		Time: TimeConfig{
			UTCOffsetHours: getInt("UTC_OFFSET_HOURS", 8),
		},
		Telemetry: TelemetryConfig{
			Host:        getEnv("TB_HOST", "eu.thingsboard.cloud"),
			AccessToken: getEnv("TB_ACCESS_TOKEN", ""),
			Timeout:     getDuration("TB_TIMEOUT", 2*time.Second),
		},
		Logging: LoggingConfig{
			Level:        getEnv("LOG_LEVEL", "info"),
			Format:       getEnv("LOG_FORMAT", "text"),
			Output:       getEnv("LOG_OUTPUT", "stdout"),
			EnableCaller: getBool("LOG_ENABLE_CALLER", false),
		},
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// LoadIngestorConfig loads configuration for the MQTT ingestor bridge
func LoadIngestorConfig() (*IngestorConfig, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	if err := godotenv.Load(); err != nil {
		// Silently ignore .env file loading errors
		// This allows the application to work with environment variables set directly
	}

	config := &IngestorConfig{
		MQTT: MQTTConfig{
			BrokerHost:  getEnv("BROKER_HOST", "localhost"),
			BrokerPort:  getInt("BROKER_PORT", 1883),
			BrokerUser:  getEnv("BROKER_USER", ""),
			BrokerPass:  getEnv("BROKER_PASS", ""),
			UseTLS:      getBool("BROKER_TLS", false),
			CACertPath:  getEnv("BROKER_CA_FILE", ""),
			Topic:       getEnv("MQTT_TOPIC", "busstop/telemetry"),
			ClientID:    getEnv("MQTT_CLIENT_ID", "busstop-ingestor"),
			SharedGroup: getEnv("MQTT_SHARED_GROUP", ""),
			KeepAlive:   getDuration("MQTT_KEEP_ALIVE", 30*time.Second),
			PingTimeout: getDuration("MQTT_PING_TIMEOUT", 10*time.Second),
		},
		Logging: LoggingConfig{
			Level:        getEnv("LOG_LEVEL", "info"),
			Format:       getEnv("LOG_FORMAT", "text"),
			Output:       getEnv("LOG_OUTPUT", "stdout"),
			EnableCaller: getBool("LOG_ENABLE_CALLER", false),
		},
		ApiServiceURL: getEnv("API_SERVICE_URL", "http://localhost:8080"),
	}

	if config.ApiServiceURL == "" {
		return nil, fmt.Errorf("API_SERVICE_URL is required")
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Mongo.URI == "" {
		return fmt.Errorf("MONGODB_URI is required")
	}
	if c.Throttle.Window <= 0 {
		return fmt.Errorf("LOG_THROTTLE_WINDOW must be positive")
	}
	if c.Telemetry.AccessToken == "" {
		log.Println("WARNING: TB_ACCESS_TOKEN is not set. Telemetry forwarding will be rejected by the sink!")
	}
	return nil
}

// GetTelemetryURL returns the full push URL for the external sink
func (c *Config) GetTelemetryURL() string {
	return fmt.Sprintf("https://%s/api/v1/%s/telemetry", c.Telemetry.Host, c.Telemetry.AccessToken)
}

// BrokerURL returns the MQTT broker URL
func (c *MQTTConfig) BrokerURL() string {
	scheme := "tcp"
	if c.UseTLS {
		scheme = "tcps"
	}
	return fmt.Sprintf("%s://%s:%d", scheme, c.BrokerHost, c.BrokerPort)
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("invalid %s: %v", key, err)
	}
	return intValue
}

func getBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if value == "1" || value == "true" || value == "TRUE" {
		return true
	}
	if value == "0" || value == "false" || value == "FALSE" {
		return false
	}
	log.Fatalf("invalid %s: %q (expected true/false or 1/0)", key, value)
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("invalid %s: %v", key, err)
	}
	return duration
}
