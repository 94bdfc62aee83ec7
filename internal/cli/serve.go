package cli

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mcoot/gameportal/internal/api"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portal as a JSON API",
		Long: `Serve the portal as a JSON API under /api/v1.

The server holds one session, like a single browser: signing in through the
API signs in every client of this server.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			router := api.NewRouter(api.RouterConfig{
				Logger: logger,
				Portal: app.Portal,
			})

			serverConfig := api.DefaultServerConfig()
			serverConfig.Host = cfg.HTTPHost
			serverConfig.Port = cfg.HTTPPort
			server := api.NewServer(router, serverConfig, logger)

			// Handle graceful shutdown
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			// Start server in goroutine
			errCh := make(chan error, 1)
			go func() {
				errCh <- server.Start()
			}()

			// Wait for shutdown or error
			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				logger.Info("shutdown signal received")
				if err := server.Shutdown(context.Background()); err != nil {
					logger.Error("shutdown error", slog.Any("error", err))
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cfg.HTTPHost, "host", cfg.HTTPHost, "Listen host (env: GAMEPORTAL_HTTP_HOST)")
	cmd.Flags().IntVar(&cfg.HTTPPort, "port", cfg.HTTPPort, "Listen port (env: GAMEPORTAL_HTTP_PORT)")

	return cmd
}
