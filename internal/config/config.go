package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Token    TokenConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port           string
	Env            string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	AllowedOrigins []string
}

// DatabaseConfig holds SurrealDB connection settings
type DatabaseConfig struct {
	Host      string
	Port      string
	Namespace string
	Database  string
	User      string
	Password  string
}

// TokenConfig holds access token signing settings
type TokenConfig struct {
	PrivateKeyPath string
	PublicKeyPath  string
	ExpirationMins int
	Issuer         string
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "8080"),
			Env:            getEnv("SERVER_ENV", "development"),
			ReadTimeout:    getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:   getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			AllowedOrigins: getSliceEnv("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
		Database: DatabaseConfig{
			Host:      getEnv("DB_HOST", "localhost"),
			Port:      getEnv("DB_PORT", "8000"),
			Namespace: getEnv("DB_NAMESPACE", "fortune"),
			Database:  getEnv("DB_DATABASE", "main"),
			User:      getEnv("DB_USER", "root"),
			Password:  getEnv("DB_PASSWORD", "root"),
		},
		Token: TokenConfig{
			PrivateKeyPath: getEnv("TOKEN_PRIVATE_KEY_PATH", "./keys/private.pem"),
			PublicKeyPath:  getEnv("TOKEN_PUBLIC_KEY_PATH", "./keys/public.pem"),
			ExpirationMins: getIntEnv("TOKEN_EXPIRATION_MINS", 60),
			Issuer:         getEnv("TOKEN_ISSUER", "fortune-teller.srkarthi.dev"),
		},
	}, nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// Validate checks that all required configuration values are present and valid.
// It returns an error describing all validation failures, or nil if valid.
func (c *Config) Validate() error {
	var errs []error

	// Server validation
	if c.Server.Port == "" {
		errs = append(errs, errors.New("SERVER_PORT is required"))
	}
	if c.Server.Env != "development" && c.Server.Env != "production" && c.Server.Env != "test" {
		errs = append(errs, fmt.Errorf("SERVER_ENV must be 'development', 'production', or 'test', got '%s'", c.Server.Env))
	}
	if len(c.Server.AllowedOrigins) == 0 {
		errs = append(errs, errors.New("CORS_ALLOWED_ORIGINS must have at least one origin"))
	}

	// Database validation
	if c.Database.Host == "" {
		errs = append(errs, errors.New("DB_HOST is required"))
	}
	if c.Database.Port == "" {
		errs = append(errs, errors.New("DB_PORT is required"))
	}
	if c.Database.Namespace == "" {
		errs = append(errs, errors.New("DB_NAMESPACE is required"))
	}
	if c.Database.Database == "" {
		errs = append(errs, errors.New("DB_DATABASE is required"))
	}

	// Token validation - key material is mandatory in production
	if c.IsProduction() {
		if c.Token.PrivateKeyPath == "" {
			errs = append(errs, errors.New("TOKEN_PRIVATE_KEY_PATH is required in production"))
		}
		if c.Token.PublicKeyPath == "" {
			errs = append(errs, errors.New("TOKEN_PUBLIC_KEY_PATH is required in production"))
		}
	}
	if c.Token.ExpirationMins <= 0 {
		errs = append(errs, errors.New("TOKEN_EXPIRATION_MINS must be positive"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
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

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}
