package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlexZinkM/agentkey/internal/api"
	"github.com/AlexZinkM/agentkey/internal/config"
	"github.com/AlexZinkM/agentkey/internal/wallet"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve explorer links over HTTP",
		Long: `Start a read-only HTTP API that formats explorer links for web frontends.
Key generation is not exposed over HTTP.

Endpoints:
  GET /explorer?txId=<id>&network=<testnet|mainnet>
  GET /health
  GET /swagger/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

			provider, err := wallet.NewProvider(cfg.Chain)
			if err != nil {
				return err
			}

			router, err := api.SetupRouter(provider, logger)
			if err != nil {
				return fmt.Errorf("failed to setup router: %w", err)
			}

			srv := &http.Server{
				Addr:              cfg.Addr(),
				Handler:           router,
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("server started", slog.String("addr", srv.Addr), slog.String("chain", provider.Name()))
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("server failed: %w", err)
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			logger.Info("shutting down")
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("failed to shutdown server: %w", err)
			}
			return nil
		},
	}
}
