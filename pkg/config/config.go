package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const defaultJWTSecret = "your-secret-key-change-me"

// Config holds application configuration
type Config struct {
	DatabaseURL    string
	JWTSecret      string
	Environment    string
	Port           string
	AllowedOrigins []string
	LogLevel       string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env")
	}

	cfg := &Config{
		// Empty means the API runs without accounts or the provider directory
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		JWTSecret:      getEnv("JWT_SECRET", defaultJWTSecret),
		Environment:    getEnv("ENVIRONMENT", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:8081")),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}

	if cfg.IsProduction() && cfg.JWTSecret == defaultJWTSecret {
		return nil, errors.New("production environment detected, but JWT_SECRET not set")
	}

	return cfg, nil
}

// IsProduction reports whether ENVIRONMENT is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// SetupLogging configures the global logger from the config
func (c *Config) SetupLogging() error {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return errors.Wrapf(err, "LOG_LEVEL %q", c.LogLevel)
	}
	log.SetLevel(level)
	if c.IsProduction() {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
