package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Environment
	Environment string

	// Database
	DatabaseURL string

	// Redis
	RedisURL string

	// Server
	Port        string
	FrontendURL string

	// Evaluation Settings
	CacheTTLSeconds    int
	RateLimitPerMinute int

	// History
	HistoryEnabled        bool
	HistoryRetentionDays  int
	RetentionSweepMinutes int

	// Security
	JWTSecret            string
	AdminSessionTTLHours int
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		// Environment
		Environment: getEnv("APP_ENV", "development"),

		// Database
		DatabaseURL: getEnv("DATABASE_URL", "postgres://localhost:5432/formulalab?sslmode=disable"),

		// Redis
		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379/0"),

		// Server
		Port:        getEnv("APP_PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),

		// Evaluation Settings
		CacheTTLSeconds:    getEnvInt("CACHE_TTL_SECONDS", 300),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 120),

		// History
		HistoryEnabled:        getEnvBool("HISTORY_ENABLED", true),
		HistoryRetentionDays:  getEnvInt("HISTORY_RETENTION_DAYS", 90),
		RetentionSweepMinutes: getEnvInt("RETENTION_SWEEP_MINUTES", 60),

		// Security
		JWTSecret:            getEnv("JWT_SECRET", "change-me-in-production"),
		AdminSessionTTLHours: getEnvInt("ADMIN_SESSION_TTL_HOURS", 12),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
