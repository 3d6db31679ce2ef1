package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/monocle-dev/trackr/db"
	"github.com/monocle-dev/trackr/internal/handlers"
	"github.com/monocle-dev/trackr/internal/router"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Connect to the configured store, apply migrations, create the
bootstrap admin if one is configured, and serve the REST API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := globalConfig

		store, database, closeStore, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		if database != nil {
			if err := db.Migrate(database); err != nil {
				return err
			}
		}

		svc, issuer, err := buildServices(cfg, store, logger)
		if err != nil {
			return err
		}

		if cfg.Admin.Email != "" && cfg.Admin.Password != "" {
			created, err := svc.Accounts.EnsureAdmin(cmd.Context(), cfg.Admin.Email, cfg.Admin.Password)
			if err != nil {
				return err
			}
			if created {
				logger.Info().Str("email", cfg.Admin.Email).Msg("admin account created")
			}
		}

		engine, err := router.NewRouter(router.Deps{
			Config:   cfg,
			Handler:  handlers.New(svc, store, logger),
			Verifier: issuer,
			Store:    store,
			Logger:   logger,
		})
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:              ":" + cfg.Server.Port,
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info().Str("port", cfg.Server.Port).Str("driver", cfg.Database.Driver).Msg("server starting")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case <-quit:
		}

		logger.Info().Msg("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("server shutdown")
			return err
		}

		logger.Info().Msg("server stopped")
		return nil
	},
}
