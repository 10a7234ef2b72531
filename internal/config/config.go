package config

import (
	"fmt"
	"os"
	"time"
)

// Config contains all runtime settings for the server. It is built once at
// process start and handed to constructors so nothing reads the environment
// after startup.
type Config struct {
	Port string

	// Sarvam AI provider. An empty APIKey is tolerated at startup; each
	// upstream call then fails with a configuration fault.
	SarvamAPIKey    string
	SarvamBaseURL   string
	UpstreamTimeout time.Duration

	MongoURI      string
	MongoDatabase string

	JWTSecret      string
	AdminAPIKey    string
	GoogleClientID string
}

// Load reads environment variables and applies defaults.
func Load() (Config, error) {
	cfg := Config{
		Port:            envOrDefault("PORT", "8080"),
		SarvamAPIKey:    os.Getenv("API_KEY"),
		SarvamBaseURL:   envOrDefault("SARVAM_API_BASE_URL", "https://api.sarvam.ai"),
		UpstreamTimeout: 30 * time.Second,
		MongoURI:        envOrDefault("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase:   envOrDefault("MONGODB_DATABASE", "odiaaudiogen"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		AdminAPIKey:     os.Getenv("API_ADMIN_KEY"),
		GoogleClientID:  os.Getenv("GOOGLE_CLIENT_ID"),
	}

	var err error
	cfg.UpstreamTimeout, err = durationFromEnv("UPSTREAM_TIMEOUT", cfg.UpstreamTimeout)
	if err != nil {
		return Config{}, err
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationFromEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
