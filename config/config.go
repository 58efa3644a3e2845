// Package config provides configuration management for the multilingual site.
package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the complete application configuration.
type Config struct {
	Server ServerConfig
	Site   SiteConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port        string
	RateLimit   int
	RateWindow  time.Duration
	CORSOrigins []string
}

// SiteConfig holds the locale and message store settings.
type SiteConfig struct {
	// MessagesDir is the root of the global/pages/components message tree.
	MessagesDir   string
	Locales       []string
	DefaultLocale string
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string
	Pretty bool
}

// Load creates a Config from environment variables.
// A .env file in the working directory is read first when present; variables
// already set in the environment take precedence over it.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			RateLimit:   getEnvInt("RATE_LIMIT", 100),
			RateWindow:  getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins: parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
		},
		Site: SiteConfig{
			MessagesDir:   getEnv("MESSAGES_DIR", "messages"),
			Locales:       parseList(getEnv("SUPPORTED_LOCALES", "en,et,ru")),
			DefaultLocale: strings.ToLower(getEnv("DEFAULT_LOCALE", "en")),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
	}
}

// Validate checks the cross-field rules of the configuration.
func (c Config) Validate() error {
	if len(c.Site.Locales) == 0 {
		return fmt.Errorf("config: SUPPORTED_LOCALES must list at least one locale")
	}
	if !slices.Contains(c.Site.Locales, c.Site.DefaultLocale) {
		return fmt.Errorf("config: DEFAULT_LOCALE %q is not in SUPPORTED_LOCALES %v", c.Site.DefaultLocale, c.Site.Locales)
	}
	if strings.TrimSpace(c.Site.MessagesDir) == "" {
		return fmt.Errorf("config: MESSAGES_DIR cannot be empty")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

// parseList splits a comma separated value, lowercasing and dropping blanks and duplicates.
func parseList(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		v := strings.ToLower(strings.TrimSpace(p))
		if v == "" || slices.Contains(result, v) {
			continue
		}
		result = append(result, v)
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
