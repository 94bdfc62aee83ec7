package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Storage backends
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
)

// Config is the process configuration read from the environment.
// Command-line flags override individual fields after parsing.
type Config struct {
	Store          string `env:"GAMEPORTAL_STORE"            envDefault:"sqlite"`
	SQLitePath     string `env:"GAMEPORTAL_SQLITE_PATH"      envDefault:"gameportal.db"`
	RedisURL       string `env:"GAMEPORTAL_REDIS_URL"        envDefault:"redis://localhost:6379"`
	RedisNamespace string `env:"GAMEPORTAL_REDIS_NAMESPACE"  envDefault:"default"`
	PasswordScheme string `env:"GAMEPORTAL_PASSWORD_SCHEME"  envDefault:"bcrypt"`
	BcryptCost     int    `env:"GAMEPORTAL_BCRYPT_COST"      envDefault:"10"`
	LogLevel       string `env:"GAMEPORTAL_LOG_LEVEL"        envDefault:"warn"`
	HTTPHost       string `env:"GAMEPORTAL_HTTP_HOST"        envDefault:"localhost"`
	HTTPPort       int    `env:"GAMEPORTAL_HTTP_PORT"        envDefault:"8080"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the configuration from the environment, validated
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks fields that have a fixed set of values
func (c Config) Validate() error {
	switch c.Store {
	case StoreMemory, StoreSQLite, StoreRedis:
	default:
		return fmt.Errorf("invalid store %q: must be memory, sqlite or redis", c.Store)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.HTTPPort < 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid http port %d", c.HTTPPort)
	}
	return nil
}

// Level parses LogLevel
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Addr is the HTTP listen address
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.HTTPHost, c.HTTPPort)
}
