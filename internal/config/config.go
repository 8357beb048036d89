// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Agent modes.
const (
	AgentModeSmart = "smart"
	AgentModeMock  = "mock"
)

// Config holds all application configuration.
type Config struct {
	Port          string
	FrontendURL   string
	DBPath        string
	AgentMode     string // "smart" = keyword router, "mock" = simulated model
	MaxTurns      int
	CountryAPIURL string
	LookupTimeout time.Duration
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		FrontendURL:   getEnv("FRONTEND_URL", ""),
		DBPath:        getEnv("DB_PATH", "./data/feedback.db"),
		AgentMode:     strings.ToLower(getEnv("AGENT_MODE", AgentModeSmart)),
		MaxTurns:      getEnvInt("MAX_TURNS", 10),
		CountryAPIURL: getEnv("COUNTRY_API_URL", "https://restcountries.com/v3.1"),
		LookupTimeout: time.Duration(getEnvInt("LOOKUP_TIMEOUT_SECONDS", 10)) * time.Second,
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.AgentMode != AgentModeSmart && c.AgentMode != AgentModeMock {
		return fmt.Errorf("AGENT_MODE must be %q or %q", AgentModeSmart, AgentModeMock)
	}
	if c.MaxTurns <= 0 {
		return fmt.Errorf("MAX_TURNS must be > 0")
	}
	if c.CountryAPIURL == "" {
		return fmt.Errorf("COUNTRY_API_URL cannot be empty")
	}
	if c.LookupTimeout <= 0 {
		return fmt.Errorf("LOOKUP_TIMEOUT_SECONDS must be > 0")
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.FrontendURL == "" ||
		strings.Contains(c.FrontendURL, "localhost") ||
		strings.Contains(c.FrontendURL, "127.0.0.1")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}
