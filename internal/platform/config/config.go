package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// External rate provider
	RateAPIURL       string
	RateAPIKey       string
	RateFetchTimeout time.Duration

	// Requests per minute per client IP
	RateLimit int64
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RATE_API_URL", "https://api.exchangerate.host")
	viper.SetDefault("RATE_API_KEY", "")
	viper.SetDefault("RATE_FETCH_TIMEOUT", "10s")
	viper.SetDefault("RATE_LIMIT", 120)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.RateAPIURL = viper.GetString("RATE_API_URL")
	cfg.RateAPIKey = viper.GetString("RATE_API_KEY")
	if cfg.RateAPIKey == "" {
		log.Println("Warning: RATE_API_KEY not set. The rate provider may reject requests.")
	}

	timeoutStr := viper.GetString("RATE_FETCH_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 10 * time.Second
		if timeoutStr != "" {
			log.Printf("Warning: Invalid value for RATE_FETCH_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout.String())
		}
	}
	cfg.RateFetchTimeout = timeout

	cfg.RateLimit = viper.GetInt64("RATE_LIMIT")
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 120
		log.Printf("Warning: RATE_LIMIT must be positive. Defaulting to %d requests per minute.\n", cfg.RateLimit)
	}

	return cfg, nil
}
