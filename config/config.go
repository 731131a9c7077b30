package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"

	apperrors "sjsage522/freebiefinder/pkg/errors"
)

// Config represents the application configuration
type Config struct {
	// HTTP server configuration
	Port           string
	AllowedOrigins []string

	// Craigslist connector configuration
	CraigslistURL string

	// Search defaults
	DefaultPostal      string
	DefaultRadiusMiles float64

	// Environment
	Environment string
}

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() Config {
	radius, err := strconv.ParseFloat(getEnv("DEFAULT_RADIUS_MILES", "25"), 64)
	if err != nil {
		radius = 25
	}

	return Config{
		Port:               getEnv("PORT", "8080"),
		AllowedOrigins:     splitOrigins(getEnv("ALLOWED_ORIGINS", "*")),
		CraigslistURL:      getEnv("CRAIGSLIST_URL", "https://lasvegas.craigslist.org"),
		DefaultPostal:      getEnv("DEFAULT_POSTAL", "89101"),
		DefaultRadiusMiles: radius,
		Environment:        getEnv("FREEBIE_ENVIRONMENT", "development"),
	}
}

// Validate checks that the loaded configuration is usable
func (c Config) Validate() error {
	if c.Port == "" {
		return apperrors.NewConfiguration("PORT must not be empty", nil)
	}
	u, err := url.Parse(c.CraigslistURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return apperrors.NewConfiguration("CRAIGSLIST_URL must be an absolute URL", err)
	}
	if c.DefaultRadiusMiles < 5 || c.DefaultRadiusMiles > 100 {
		return apperrors.NewConfiguration("DEFAULT_RADIUS_MILES must be between 5 and 100", nil)
	}
	return nil
}

// splitOrigins parses the comma-separated allowed-origins list
func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
