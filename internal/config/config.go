package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Addr          string
	Environment   string
	DataFile      string
	DatabaseURL   string
	RunMigrations bool
	MigrationsDir string
	HolidayFile   string
	SessionSecret string
	CloudLatency  time.Duration
}

func Load() Config {
	return Config{
		Addr:          getEnv("APP_ADDR", ":8080"),
		Environment:   getEnv("APP_ENV", "development"),
		DataFile:      getEnv("DATA_FILE", "data/planner.json"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		RunMigrations: getEnvBool("RUN_MIGRATIONS", true),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "migrations"),
		HolidayFile:   getEnv("HOLIDAY_FILE", ""),
		SessionSecret: getEnv("SESSION_SECRET", "dev-session-secret"),
		CloudLatency:  getEnvDuration("CLOUD_LATENCY", 800*time.Millisecond),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DataFile) == "" && strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATA_FILE or DATABASE_URL is required")
	}
	if c.Environment == "production" && c.SessionSecret == "dev-session-secret" {
		return fmt.Errorf("SESSION_SECRET must be changed in production")
	}
	if c.CloudLatency < 0 {
		return fmt.Errorf("CLOUD_LATENCY must be non-negative")
	}
	return nil
}
