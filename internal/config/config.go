package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server
	Port int
	Env  string

	// CORS
	AllowedOrigins []string

	// Upstream league-data provider
	SleeperBaseURL string
	FetchTimeout   time.Duration

	// Optional shared cache / config store
	RedisURL string

	// League
	DefaultLeagueID string
	MaxChainDepth   int
	ChainCacheTTL   time.Duration

	// Championship counting via roster ID 1. Kept for compatibility with the
	// historical dashboard numbers; see AggregatedUserStats.Championships.
	LegacyChampionshipHeuristic bool
}

// Load loads configuration from environment variables.
// It returns an error if critical configuration is missing.
func Load() (*Config, error) {
	cfg := &Config{
		Port: getEnvInt("PORT", 8080),
		Env:  getEnv("ENV", "development"),

		SleeperBaseURL: getEnv("SLEEPER_BASE_URL", "https://api.sleeper.app/v1"),
		FetchTimeout:   getEnvDuration("FETCH_TIMEOUT", 10*time.Second),

		RedisURL: getEnv("REDIS_URL", ""),

		MaxChainDepth: getEnvInt("MAX_CHAIN_DEPTH", 25),
		ChainCacheTTL: getEnvDuration("CHAIN_CACHE_TTL", 6*time.Hour),

		LegacyChampionshipHeuristic: getEnvBool("LEGACY_CHAMPIONSHIP_HEURISTIC", true),
	}

	// CORS
	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	rawOrigins := strings.Split(origins, ",")
	for _, o := range rawOrigins {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	// Critical configuration - fail if missing
	var err error
	if cfg.DefaultLeagueID, err = getEnvRequired("LEAGUE_ID"); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvRequired(key string) (string, error) {
	if value := os.Getenv(key); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("missing required environment variable: %s", key)
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
