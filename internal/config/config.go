package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// StorageBackend names a Storage Port implementation
type StorageBackend string

const (
	BackendMemory   StorageBackend = "memory"
	BackendFile     StorageBackend = "file"
	BackendRedis    StorageBackend = "redis"
	BackendPostgres StorageBackend = "postgres"
)

// Config holds application configuration
type Config struct {
	StorageBackend StorageBackend
	DataDir        string
	RedisURL       string
	DatabaseURL    string
	RabbitMQURL    string
	Prefetch       int

	ServerPort  string
	FrontendURL string
	BasePath    string
	HostingMode string // "path" or "hash"

	DefaultLocale string
	ScanInterval  time.Duration
	StaleAfter    time.Duration

	EnableHSTS      bool
	WorkerDebugMode bool
	ServerDebugMode bool
	OTELEnabled     bool
	OTELEndpoint    string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		StorageBackend: StorageBackend(getEnv("STORAGE_BACKEND", "file")),
		DataDir:        getEnv("DATA_DIR", "data"),
		RedisURL:       getEnv("REDIS_URL", ""),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		RabbitMQURL:    getEnv("RABBITMQ_URL", ""),
		Prefetch:       getEnvInt("RABBITMQ_PREFETCH", 1),

		ServerPort:  getEnv("SERVER_PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		BasePath:    getEnv("BASE_PATH", ""),
		HostingMode: getEnv("HOSTING_MODE", "path"),

		DefaultLocale: getEnv("DEFAULT_LOCALE", "en"),
		ScanInterval:  getEnvDuration("SCAN_INTERVAL", time.Minute),
		StaleAfter:    getEnvDuration("NOTIFY_STALE_AFTER", time.Hour),

		EnableHSTS:      getEnvBool("ENABLE_HSTS", false),
		WorkerDebugMode: getEnvBool("WORKER_DEBUG_MODE", false),
		ServerDebugMode: getEnvBool("SERVER_DEBUG_MODE", false),
		OTELEnabled:     getEnvBool("OTEL_ENABLED", false),
		OTELEndpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}

	switch cfg.StorageBackend {
	case BackendMemory, BackendFile:
	case BackendRedis:
		if cfg.RedisURL == "" {
			return nil, fmt.Errorf("REDIS_URL is required when STORAGE_BACKEND=redis")
		}
	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required when STORAGE_BACKEND=postgres")
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q (want memory, file, redis, or postgres)", cfg.StorageBackend)
	}

	if cfg.HostingMode != "path" && cfg.HostingMode != "hash" {
		return nil, fmt.Errorf("unknown HOSTING_MODE %q (want path or hash)", cfg.HostingMode)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
