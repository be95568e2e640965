// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Session store backends.
const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Session  SessionConfig
	Logging  LoggingConfig
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`

	// AllowOrigins lists the browser origins allowed to call the gateway with
	// credentials (the session cookie).
	AllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envDefault:"http://localhost:3000" envSeparator:","`
}

// UpstreamConfig holds settings for the flight provider API.
type UpstreamConfig struct {
	// BaseURL is the provider API root, e.g. "http://localhost:4324/api"
	BaseURL string `env:"UPSTREAM_BASE_URL" envDefault:"http://localhost:4324/api"`

	// Timeout bounds each provider request; there is no retry on failure
	Timeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"15s"`
}

// SessionConfig holds scratch-store settings.
type SessionConfig struct {
	// Backend selects the store implementation: memory or redis
	Backend string `env:"SESSION_BACKEND" envDefault:"memory"`

	// TTL is the lifetime of each stored entry
	TTL time.Duration `env:"SESSION_TTL" envDefault:"30m"`

	// RedisAddr is the Redis host:port; required when Backend is redis
	RedisAddr string `env:"SESSION_REDIS_ADDR"`

	// RedisPassword is the Redis password, empty for none
	RedisPassword string `env:"SESSION_REDIS_PASSWORD" envDefault:""`

	// RedisDB is the Redis database index
	RedisDB int `env:"SESSION_REDIS_DB" envDefault:"0"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	if cfg.Upstream.BaseURL == "" {
		return fmt.Errorf("UPSTREAM_BASE_URL is required")
	}
	if cfg.Upstream.Timeout <= 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT must be positive")
	}

	if cfg.Session.Backend != SessionBackendMemory && cfg.Session.Backend != SessionBackendRedis {
		return fmt.Errorf("SESSION_BACKEND must be one of: memory, redis; got %q", cfg.Session.Backend)
	}
	if cfg.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if cfg.Session.Backend == SessionBackendRedis && cfg.Session.RedisAddr == "" {
		return fmt.Errorf("SESSION_REDIS_ADDR is required when SESSION_BACKEND is redis")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
