package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	DatabaseURL      string
	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration

	PinterestClientID     string
	PinterestClientSecret string
	PinterestRedirectURI  string
	PinterestAPIBaseURL   string
	PinterestOAuthURL     string

	AppBaseURL string

	PublisherEnabled  bool
	PublisherInterval time.Duration

	PinRateLimitWindow time.Duration
	PinRateLimitMax    int
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	accessExpiry := 15 * time.Minute
	if exp := os.Getenv("JWT_ACCESS_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			accessExpiry = parsed
		}
	}

	refreshExpiry := 168 * time.Hour // 7 days
	if exp := os.Getenv("JWT_REFRESH_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			refreshExpiry = parsed
		}
	}

	publisherInterval := 1 * time.Minute
	if iv := os.Getenv("PUBLISHER_INTERVAL"); iv != "" {
		if parsed, err := time.ParseDuration(iv); err == nil {
			publisherInterval = parsed
		}
	}

	rateWindow := 1 * time.Hour
	if w := os.Getenv("PIN_RATE_LIMIT_WINDOW"); w != "" {
		if parsed, err := time.ParseDuration(w); err == nil {
			rateWindow = parsed
		}
	}

	rateMax := 50
	if m := os.Getenv("PIN_RATE_LIMIT_MAX"); m != "" {
		if parsed, err := strconv.Atoi(m); err == nil && parsed > 0 {
			rateMax = parsed
		}
	}

	return &Config{
		Port:             getEnv("PORT", "8080"),
		DatabaseURL:      getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=pinflow port=5432 sslmode=disable"),
		JWTSecret:        getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTAccessExpiry:  accessExpiry,
		JWTRefreshExpiry: refreshExpiry,

		PinterestClientID:     getEnv("PINTEREST_CLIENT_ID", ""),
		PinterestClientSecret: getEnv("PINTEREST_CLIENT_SECRET", ""),
		PinterestRedirectURI:  getEnv("PINTEREST_REDIRECT_URI", "http://localhost:8080/api/pinterest/auth/callback"),
		PinterestAPIBaseURL:   getEnv("PINTEREST_API_BASE_URL", "https://api.pinterest.com/v5"),
		PinterestOAuthURL:     getEnv("PINTEREST_OAUTH_URL", "https://www.pinterest.com/oauth/"),

		AppBaseURL: getEnv("APP_BASE_URL", "http://localhost:5173"),

		PublisherEnabled:  getEnv("PUBLISHER_ENABLED", "true") == "true",
		PublisherInterval: publisherInterval,

		PinRateLimitWindow: rateWindow,
		PinRateLimitMax:    rateMax,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
