package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	// Database
	DatabaseURL     string
	Storage         string
	DBMaxOpenConns  int
	DBMaxIdleConns  int
	DBConnLifetime  time.Duration
	DBConnIdleLimit time.Duration

	// Auth (both optional; identity falls back to the x-user-id header)
	JWTSecret  string
	AdminToken string

	// Profile
	UsernameChangeCooldown time.Duration

	// Observability
	SentryDSN string
	AppEnv    string

	// Server
	Port        string
	CORSOrigins string
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using process environment")
	}

	return &Config{
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		Storage:         getEnv("STORAGE", StoragePostgres),
		DBMaxOpenConns:  parseInt(getEnv("DB_MAX_OPEN_CONNS", "25"), 25),
		DBMaxIdleConns:  parseInt(getEnv("DB_MAX_IDLE_CONNS", "10"), 10),
		DBConnLifetime:  parseDuration(getEnv("DB_CONN_MAX_LIFETIME", "30m"), 30*time.Minute),
		DBConnIdleLimit: parseDuration(getEnv("DB_CONN_MAX_IDLE_TIME", "5m"), 5*time.Minute),

		JWTSecret:  getEnv("JWT_SECRET", ""),
		AdminToken: getEnv("ADMIN_TOKEN", ""),

		UsernameChangeCooldown: parseDuration(getEnv("USERNAME_CHANGE_COOLDOWN", "720h"), 30*24*time.Hour),

		SentryDSN: getEnv("SENTRY_DSN", ""),
		AppEnv:    getEnv("APP_ENV", "development"),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func (c *Config) Validate() error {
	switch c.Storage {
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL environment variable is required")
		}
	case StorageMemory:
	default:
		return errors.New("STORAGE must be postgres or memory")
	}
	return nil
}

// ModerationOpen reports whether moderation routes run without any guard.
func (c *Config) ModerationOpen() bool {
	return c.AdminToken == "" && c.JWTSecret == ""
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
