package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// Following 12-factor app principles, all config is loaded from environment variables
type Config struct {
	Server     ServerConfig
	Storefront StorefrontConfig
	CORS       CORSConfig
	LogLevel   string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// StorefrontConfig holds the demo widget settings
type StorefrontConfig struct {
	BudgetMin       int
	BudgetMax       int
	BudgetDefault   int
	DefaultLocation string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables.
// Outside production a .env file in the working directory is loaded first;
// variables already set in the environment take precedence.
func Load() (*Config, error) {
	if os.Getenv("ENV") != "production" {
		if err := loadDotEnv(".env"); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
		},
		Storefront: StorefrontConfig{
			BudgetMin:       getEnvAsInt("BUDGET_MIN", 200),
			BudgetMax:       getEnvAsInt("BUDGET_MAX", 1000),
			BudgetDefault:   getEnvAsInt("BUDGET_DEFAULT", 500),
			DefaultLocation: getEnv("DEFAULT_LOCATION", "Soweto"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	s := c.Storefront
	if s.BudgetMin <= 0 {
		return fmt.Errorf("BUDGET_MIN must be positive, got %d", s.BudgetMin)
	}
	if s.BudgetMax < s.BudgetMin {
		return fmt.Errorf("BUDGET_MAX (%d) must not be below BUDGET_MIN (%d)", s.BudgetMax, s.BudgetMin)
	}
	if s.BudgetDefault < s.BudgetMin || s.BudgetDefault > s.BudgetMax {
		return fmt.Errorf("BUDGET_DEFAULT (%d) must be within [%d, %d]", s.BudgetDefault, s.BudgetMin, s.BudgetMax)
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// loadDotEnv loads path into the environment without overriding existing variables.
// A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
