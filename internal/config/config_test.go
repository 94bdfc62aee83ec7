package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreSQLite, cfg.Store)
	assert.Equal(t, "gameportal.db", cfg.SQLitePath)
	assert.Equal(t, "bcrypt", cfg.PasswordScheme)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, "localhost:8080", cfg.Addr())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GAMEPORTAL_STORE", "redis")
	t.Setenv("GAMEPORTAL_REDIS_URL", "redis://cache:6379/2")
	t.Setenv("GAMEPORTAL_REDIS_NAMESPACE", "arcade")
	t.Setenv("GAMEPORTAL_PASSWORD_SCHEME", "plaintext")
	t.Setenv("GAMEPORTAL_LOG_LEVEL", "debug")
	t.Setenv("GAMEPORTAL_HTTP_PORT", "9000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreRedis, cfg.Store)
	assert.Equal(t, "redis://cache:6379/2", cfg.RedisURL)
	assert.Equal(t, "arcade", cfg.RedisNamespace)
	assert.Equal(t, "plaintext", cfg.PasswordScheme)
	assert.Equal(t, 9000, cfg.HTTPPort)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadRejectsUnknownStore(t *testing.T) {
	t.Setenv("GAMEPORTAL_STORE", "localstorage")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("GAMEPORTAL_HTTP_PORT", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}

func TestLevelRejectsGarbage(t *testing.T) {
	_, err := Config{LogLevel: "loud"}.Level()
	assert.Error(t, err)
}
