package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string
	Environment string
	DBUser      string
	DBPassword  string
	DBHost      string
	DBPort      string
	DBName      string
	DBMaxConns  int
	APIKey      string // API key for authentication

	// TrustedProxies lists proxy IPs whose X-Forwarded-For header is honored
	TrustedProxies []string

	// Plan generation tuning
	CandidateLimit  int // max recipes returned by a corpus query
	TopPicks        int // scored candidates eligible for the random pick
	RecipeCacheSize int // LRU entries for corpus query results

	// Abuse limits
	RateLimitMaxRequests   int // per-IP requests allowed per window
	RateLimitWindowMinutes int // window length in minutes
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "INFO"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		ServiceName: getEnv("SERVICE_NAME", "mealplan-api"),
		Version:     getEnv("VERSION", "dev"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBName:      getEnv("DB_NAME", "mealplan"),
		APIKey:      getEnv("API_KEY", ""),
	}

	if proxies := getEnv("TRUSTED_PROXIES", ""); proxies != "" {
		for _, proxy := range strings.Split(proxies, ",") {
			if trimmed := strings.TrimSpace(proxy); trimmed != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, trimmed)
			}
		}
	}

	port, err := getEnvInt("PORT", 8080)
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	if cfg.DBMaxConns, err = getEnvInt("DB_MAX_CONNS", DefaultDBMaxConns); err != nil {
		return nil, err
	}

	if cfg.CandidateLimit, err = getEnvInt("CANDIDATE_LIMIT", DefaultCandidateLimit); err != nil {
		return nil, err
	}
	if cfg.TopPicks, err = getEnvInt("TOP_PICKS", DefaultTopPicks); err != nil {
		return nil, err
	}
	if cfg.RecipeCacheSize, err = getEnvInt("RECIPE_CACHE_SIZE", DefaultRecipeCacheSize); err != nil {
		return nil, err
	}
	if cfg.RateLimitMaxRequests, err = getEnvInt("RATE_LIMIT_MAX_REQUESTS", DefaultRateLimitMaxRequests); err != nil {
		return nil, err
	}
	if cfg.RateLimitWindowMinutes, err = getEnvInt("RATE_LIMIT_WINDOW_MINUTES", DefaultRateLimitWindowMinutes); err != nil {
		return nil, err
	}

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	if cfg.CandidateLimit <= 0 {
		return nil, fmt.Errorf("CANDIDATE_LIMIT must be positive, got %d", cfg.CandidateLimit)
	}
	if cfg.TopPicks <= 0 {
		return nil, fmt.Errorf("TOP_PICKS must be positive, got %d", cfg.TopPicks)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
