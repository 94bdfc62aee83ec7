package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/gameportal/internal/config"
	"github.com/mcoot/gameportal/internal/dependencies/clock"
	"github.com/mcoot/gameportal/internal/dependencies/ids"
	"github.com/mcoot/gameportal/internal/dependencies/random"
	"github.com/mcoot/gameportal/internal/services/directory"
	"github.com/mcoot/gameportal/internal/services/history"
	"github.com/mcoot/gameportal/internal/services/portal"
	"github.com/mcoot/gameportal/internal/services/session"
	"github.com/mcoot/gameportal/internal/storage"
	"github.com/mcoot/gameportal/internal/storage/memory"
	redisstorage "github.com/mcoot/gameportal/internal/storage/redis"
	sqlitestorage "github.com/mcoot/gameportal/internal/storage/sqlite"
)

// App contains all wired application components
type App struct {
	// Storage
	Store storage.Store

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	IDs    ids.Generator

	// Services
	Directory *directory.Service
	Session   *session.Manager
	Ledger    *history.Ledger
	Portal    *portal.Portal

	closer io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "sqlite" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// SQLiteConfig holds database settings (required if StorageType is "sqlite")
	SQLiteConfig *sqlitestorage.Config
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// PasswordScheme names how passwords are stored ("bcrypt" or "plaintext")
	// If empty, defaults to "bcrypt"
	PasswordScheme string
	// BcryptCost is the bcrypt work factor; zero means bcrypt.DefaultCost
	BcryptCost int
}

// ConfigFromEnv maps the process configuration onto factory settings
func ConfigFromEnv(cfg config.Config, logger *slog.Logger) Config {
	redisCfg := redisstorage.DefaultConfig()
	redisCfg.URL = cfg.RedisURL
	redisCfg.Namespace = cfg.RedisNamespace

	return Config{
		Logger:         logger,
		StorageType:    cfg.Store,
		SQLiteConfig:   &sqlitestorage.Config{Path: cfg.SQLitePath},
		RedisConfig:    &redisCfg,
		PasswordScheme: cfg.PasswordScheme,
		BcryptCost:     cfg.BcryptCost,
	}
}

// New creates a new application with all dependencies wired
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	passwords, err := directory.SchemeByName(cfg.PasswordScheme, cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	// Create storage based on type
	var store storage.Store
	var closer io.Closer
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = config.StoreMemory
	}

	switch storageType {
	case config.StoreMemory:
		store = memory.New()
	case config.StoreSQLite:
		if cfg.SQLiteConfig == nil {
			return nil, errors.New("SQLiteConfig required when StorageType is sqlite")
		}
		sqliteStore, err := sqlitestorage.Open(ctx, *cfg.SQLiteConfig)
		if err != nil {
			return nil, err
		}
		store, closer = sqliteStore, sqliteStore
	case config.StoreRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store, closer = redisStore, redisStore
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be 'memory', 'sqlite' or 'redis'", storageType)
	}

	logger.Debug("storage ready", slog.String("type", storageType))

	app := newWithDependencies(ctx, store, clock.New(), random.New(), ids.New(), passwords, logger)
	app.closer = closer
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	ctx context.Context,
	store storage.Store,
	clk clock.Clock,
	rnd random.Random,
	idGen ids.Generator,
	passwords directory.PasswordScheme,
	logger *slog.Logger,
) *App {
	dir := directory.New(store, idGen, passwords, logger)
	sessions := session.New(ctx, store, dir, logger)
	ledger := history.New(store, clk, idGen, logger)
	p := portal.New(ctx, sessions, ledger, logger)

	return &App{
		Store:     store,
		Clock:     clk,
		Random:    rnd,
		IDs:       idGen,
		Directory: dir,
		Session:   sessions,
		Ledger:    ledger,
		Portal:    p,
	}
}

// Close releases the storage backend
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
