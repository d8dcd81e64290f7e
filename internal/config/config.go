package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP server
	Port string

	// Backend API
	APIBaseURL string
	APITimeout time.Duration

	// Backend selection: "api" talks to the real backend, "memory" runs
	// an in-process demo store.
	DataBackend string

	// Initial theme preference, mutated only via the toggle action.
	DefaultTheme string
}

func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "8081"),
		APIBaseURL:   getEnv("API_BASE_URL", "http://localhost:5000/api"),
		APITimeout:   getEnvDuration("API_TIMEOUT", 10*time.Second),
		DataBackend:  getEnv("DATA_BACKEND", "api"),
		DefaultTheme: getEnv("DEFAULT_THEME", "light"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DataBackend {
	case "api", "memory":
	default:
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of [api memory]", c.DataBackend))
	}

	if c.DataBackend == "api" {
		if parsed, err := url.Parse(c.APIBaseURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid API base URL '%s': %v", c.APIBaseURL, err))
		} else if parsed.Scheme != "http" && parsed.Scheme != "https" {
			errors = append(errors, fmt.Sprintf("invalid API base URL scheme '%s': must be 'http' or 'https'", parsed.Scheme))
		}
	}

	if c.APITimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid API timeout %v: must be at least 1 second", c.APITimeout))
	} else if c.APITimeout > 5*time.Minute {
		errors = append(errors, fmt.Sprintf("invalid API timeout %v: must be at most 5 minutes", c.APITimeout))
	}

	switch c.DefaultTheme {
	case "light", "dark":
	default:
		errors = append(errors, fmt.Sprintf("invalid default theme '%s': must be 'light' or 'dark'", c.DefaultTheme))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
