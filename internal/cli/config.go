package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/mcoot/gameportal/internal/config"
	"github.com/mcoot/gameportal/internal/factory"
)

// Config holds CLI configuration: the process environment plus
// presentation-only settings
type Config struct {
	config.Config
	Output  string
	Verbose bool

	envErr error
}

// DefaultConfig returns a Config populated from the environment.
// An environment parse error is reported when a command runs.
func DefaultConfig() *Config {
	c := &Config{Output: "text"}
	if err := config.ParseEnv(&c.Config); err != nil {
		c.envErr = err
	}
	return c
}

// Validate checks the combined environment and flag settings
func (c *Config) Validate() error {
	if c.envErr != nil {
		return c.envErr
	}
	return c.Config.Validate()
}

// Logger builds the process logger. Logs go to w so they never mix with
// command output on stdout.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level, err := c.Level()
	if err != nil {
		level = slog.LevelWarn
	}
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// openApp builds the application for a command. Tests replace it.
var openApp = func(ctx context.Context, c *Config, logger *slog.Logger) (*factory.App, error) {
	return factory.New(ctx, factory.ConfigFromEnv(c.Config, logger))
}

// stderr is where logs go. Tests replace it.
var stderr io.Writer = os.Stderr
