package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Supported storage backends.
const (
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
	StorageMemory   = "memory"
)

// Process configuration resolved from the environment.
type Config struct {
	Host        string
	Port        string
	Storage     string
	DBPath      string
	DatabaseURL string
	RedisURL    string
	RedisPrefix string
	SeedPath    string
	LogLevel    string
	LogFormat   string
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadDotEnv loads a .env file from the working directory when present.
// It reports whether a file was loaded.
func LoadDotEnv() bool {
	return godotenv.Load() == nil
}

// Load reads and validates the configuration from the environment.
func Load() (Config, error) {
	cfg := Config{
		Host:        Get("LISTEN_HOST", "127.0.0.1"),
		Port:        Get("PORT", "8080"),
		Storage:     strings.ToLower(Get("STORAGE", StorageSQLite)),
		DBPath:      Get("DB_PATH", "data/carexpress.db"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
		RedisPrefix: os.Getenv("REDIS_PREFIX"),
		SeedPath:    os.Getenv("SEED_PATH"),
		LogLevel:    Get("LOG_LEVEL", "info"),
		LogFormat:   Get("LOG_FORMAT", "text"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// Validate reports missing or inconsistent settings.
func (c Config) Validate() error {
	if n, err := strconv.Atoi(c.Port); err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("PORT must be a TCP port number, got %q", c.Port)
	}

	switch c.Storage {
	case StorageSQLite:
		if strings.TrimSpace(c.DBPath) == "" {
			return errors.New("DB_PATH is required for sqlite storage")
		}
	case StoragePostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return errors.New("DATABASE_URL is required for postgres storage")
		}
	case StorageRedis:
		if strings.TrimSpace(c.RedisURL) == "" {
			return errors.New("REDIS_URL is required for redis storage")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("STORAGE must be one of sqlite, postgres, redis, memory; got %q", c.Storage)
	}

	return nil
}

// Addr is the listen address of the HTTP server.
func (c Config) Addr() string { return c.Host + ":" + c.Port }
