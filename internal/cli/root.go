package cli

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/gameportal/internal/factory"
)

var (
	cfg    *Config
	app    *factory.App
	logger *slog.Logger
)

// errNotSignedIn is returned by commands that need a signed-in user
var errNotSignedIn = errors.New("not signed in: run 'gameportal login' or 'gameportal register' first")

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "gameportal",
		Short: "Play mini-games and keep a personal score history",
		Long: `gameportal is a small arcade of mini-games with accounts and per-user
score history.

Accounts, the signed-in user and game results are kept in a local store
(SQLite by default, or Redis), so the session persists between invocations.
The serve command exposes the same operations as a JSON API.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger = cfg.Logger(stderr)

			opened, err := openApp(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			app = opened
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app == nil {
				return nil
			}
			err := app.Close()
			app = nil
			return err
		},
		SilenceUsage: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfg.Store, "store", cfg.Store, "Storage backend: memory, sqlite, redis (env: GAMEPORTAL_STORE)")
	flags.StringVar(&cfg.SQLitePath, "db", cfg.SQLitePath, "SQLite database path (env: GAMEPORTAL_SQLITE_PATH)")
	flags.StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL (env: GAMEPORTAL_REDIS_URL)")
	flags.StringVar(&cfg.RedisNamespace, "redis-namespace", cfg.RedisNamespace, "Redis key namespace (env: GAMEPORTAL_REDIS_NAMESPACE)")
	flags.StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose logging")

	// Add subcommands
	rootCmd.AddCommand(newRegisterCmd())
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newGamesCmd())
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newClearHistoryCmd())
	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func output(cmd *cobra.Command) *Output {
	return NewOutput(cfg.Output, cmd.OutOrStdout())
}

func requireSession() error {
	if !app.Portal.IsAuthenticated() {
		return errNotSignedIn
	}
	return nil
}
