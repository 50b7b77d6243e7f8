// Package config loads runtime settings from the environment and an optional
// .env file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/mmynk/splitbeam/internal/storage"
	"github.com/mmynk/splitbeam/internal/storage/memory"
	"github.com/mmynk/splitbeam/internal/storage/rediskv"
	"github.com/mmynk/splitbeam/internal/storage/sqlite"
)

// Storage backends.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendNone   = "none"
)

type Config struct {
	Storage StorageConfig
	Redis   RedisConfig

	MetricsAddr string
	LogLevel    string
}

type StorageConfig struct {
	Backend string
	DBPath  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// Load reads the configuration. A missing .env file is not an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	cfg := &Config{
		Storage: StorageConfig{
			Backend: strings.ToLower(getEnv("SPLITBEAM_STORAGE", BackendSQLite)),
			DBPath:  getEnv("SPLITBEAM_DB_PATH", "./data/splitbeam.db"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("SPLITBEAM_REDIS_ADDR", "localhost:6379"),
			Password: getEnv("SPLITBEAM_REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("SPLITBEAM_REDIS_DB", 0),
			Prefix:   getEnv("SPLITBEAM_REDIS_PREFIX", "splitbeam:"),
		},
		MetricsAddr: getEnv("SPLITBEAM_METRICS_ADDR", ":9090"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendMemory, BackendNone:
	case BackendSQLite:
		if c.Storage.DBPath == "" {
			return fmt.Errorf("SPLITBEAM_DB_PATH is required for the sqlite backend")
		}
	case BackendRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("SPLITBEAM_REDIS_ADDR is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	return nil
}

// OpenKV opens the configured storage backend. The "none" backend yields a
// nil KV, which the state layer treats as no durable storage.
func (c *Config) OpenKV() (storage.KV, error) {
	switch c.Storage.Backend {
	case BackendMemory:
		return memory.New(), nil
	case BackendSQLite:
		store, err := sqlite.New(c.Storage.DBPath)
		if err != nil {
			return nil, err
		}
		return store, nil
	case BackendRedis:
		store, err := rediskv.New(rediskv.Config{
			Addr:     c.Redis.Addr,
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
			Prefix:   c.Redis.Prefix,
		})
		if err != nil {
			return nil, err
		}
		return store, nil
	case BackendNone:
		return nil, nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		slog.Warn("Invalid integer, using default", "key", key, "default", defaultValue)
		return defaultValue
	}

	return value
}
