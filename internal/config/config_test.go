package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Port:         "8081",
		APIBaseURL:   "http://localhost:5000/api",
		APITimeout:   10 * time.Second,
		DataBackend:  "api",
		DefaultTheme: "light",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errContains string
	}{
		{
			name:   "valid api backend",
			mutate: func(c *Config) {},
		},
		{
			name: "valid memory backend ignores base URL",
			mutate: func(c *Config) {
				c.DataBackend = "memory"
				c.APIBaseURL = "not a url"
			},
		},
		{
			name:        "non-numeric port",
			mutate:      func(c *Config) { c.Port = "abc" },
			wantErr:     true,
			errContains: "invalid port",
		},
		{
			name:        "port out of range",
			mutate:      func(c *Config) { c.Port = "70000" },
			wantErr:     true,
			errContains: "must be between",
		},
		{
			name:        "unknown backend",
			mutate:      func(c *Config) { c.DataBackend = "redis" },
			wantErr:     true,
			errContains: "invalid data backend",
		},
		{
			name:        "bad base URL scheme",
			mutate:      func(c *Config) { c.APIBaseURL = "ftp://host/api" },
			wantErr:     true,
			errContains: "scheme",
		},
		{
			name:        "timeout too small",
			mutate:      func(c *Config) { c.APITimeout = 100 * time.Millisecond },
			wantErr:     true,
			errContains: "at least 1 second",
		},
		{
			name:        "timeout too large",
			mutate:      func(c *Config) { c.APITimeout = 10 * time.Minute },
			wantErr:     true,
			errContains: "at most 5 minutes",
		},
		{
			name:        "unknown theme",
			mutate:      func(c *Config) { c.DefaultTheme = "solarized" },
			wantErr:     true,
			errContains: "invalid default theme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Fatalf("error %q does not contain %q", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_ValidateCollectsAllErrors(t *testing.T) {
	cfg := Config{
		Port:         "nope",
		APIBaseURL:   "ftp://x",
		APITimeout:   0,
		DataBackend:  "api",
		DefaultTheme: "neon",
	}
	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected error")
	}
	for _, want := range []string{"invalid port", "scheme", "timeout", "theme"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("combined error missing %q: %v", want, err)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("API_BASE_URL", "")
	t.Setenv("API_TIMEOUT", "")
	t.Setenv("DATA_BACKEND", "")
	t.Setenv("DEFAULT_THEME", "")

	cfg := Load()
	if cfg.Port != "8081" {
		t.Fatalf("default port: %s", cfg.Port)
	}
	if cfg.APIBaseURL != "http://localhost:5000/api" {
		t.Fatalf("default base URL: %s", cfg.APIBaseURL)
	}
	if cfg.APITimeout != 10*time.Second {
		t.Fatalf("default timeout: %v", cfg.APITimeout)
	}
	if cfg.DataBackend != "api" {
		t.Fatalf("default backend: %s", cfg.DataBackend)
	}
	if cfg.DefaultTheme != "light" {
		t.Fatalf("default theme: %s", cfg.DefaultTheme)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("API_TIMEOUT", "30s")
	t.Setenv("DATA_BACKEND", "memory")
	t.Setenv("DEFAULT_THEME", "dark")

	cfg := Load()
	if cfg.Port != "9000" || cfg.APITimeout != 30*time.Second ||
		cfg.DataBackend != "memory" || cfg.DefaultTheme != "dark" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
}

func TestLoadIgnoresInvalidDuration(t *testing.T) {
	t.Setenv("API_TIMEOUT", "soon")
	cfg := Load()
	if cfg.APITimeout != 10*time.Second {
		t.Fatalf("invalid duration should fall back to default, got %v", cfg.APITimeout)
	}
}
