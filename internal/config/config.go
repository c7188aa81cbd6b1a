package config

import (
	"os"
	"strconv"
)

// Config carries everything the sync server reads from the environment.
// Defaults favor local development: sqlite on disk, in-memory cache.
type Config struct {
	AppEnv string
	Port   string

	// DBDriver is "sqlite" or "postgres". Postgres needs DatabaseURL.
	DBDriver    string
	DatabaseURL string
	SQLitePath  string

	// CacheBackend is "memory" or "redis".
	CacheBackend  string
	RedisHost     string
	RedisPort     string
	RedisPassword string

	// StatsCacheTTLSeconds bounds how stale the analytics endpoint may be.
	StatsCacheTTLSeconds int

	CORSOrigins []string
}

// Load reads the configuration from environment variables. Callers run
// godotenv.Load beforehand so a local .env file is honored.
func Load() Config {
	cfg := Config{
		AppEnv:               getEnv("APP_ENV", "development"),
		Port:                 getEnv("PORT", "8080"),
		DBDriver:             getEnv("DB_DRIVER", "sqlite"),
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		SQLitePath:           getEnv("SQLITE_PATH", "garaje.db"),
		CacheBackend:         getEnv("CACHE_BACKEND", "memory"),
		RedisHost:            getEnv("REDIS_HOST", "localhost"),
		RedisPort:            getEnv("REDIS_PORT", "6379"),
		RedisPassword:        os.Getenv("REDIS_PASSWORD"),
		StatsCacheTTLSeconds: getEnvInt("STATS_CACHE_TTL_SECONDS", 300),
		CORSOrigins:          []string{getEnv("CORS_ORIGIN", "*")},
	}

	if cfg.DatabaseURL != "" && os.Getenv("DB_DRIVER") == "" {
		cfg.DBDriver = "postgres"
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
