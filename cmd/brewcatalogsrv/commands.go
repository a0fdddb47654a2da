package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mugiliam/brewcatalogsrv/internal/catalogmanager"
	"github.com/mugiliam/brewcatalogsrv/internal/config"
	"github.com/mugiliam/brewcatalogsrv/internal/db"
	"github.com/mugiliam/brewcatalogsrv/internal/server"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// setup loads the configuration, installs the global logger and opens the
// store. The caller owns the store and must close it.
func setup(ctx context.Context) (*config.Config, db.DB_, context.Context, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, ctx, err
	}
	log.Logger = cfg.Log.Logger(os.Stderr)
	zerolog.SetGlobalLevel(log.Logger.GetLevel())
	ctx = log.Logger.WithContext(ctx)

	store, appErr := db.Open(ctx, cfg.Database)
	if appErr != nil {
		return nil, nil, ctx, appErr
	}
	return cfg, store, ctx, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, store, ctx, err := setup(ctx)
	if err != nil {
		return err
	}
	defer store.Close(ctx)

	if cfg.Database.InitSchema {
		if err := store.InitSchema(ctx); err != nil {
			return err
		}
	}

	s, err := server.CreateNewServer(cfg.Server, store)
	if err != nil {
		return err
	}
	s.MountHandlers()

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      s.Router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("db_driver", cfg.Database.Driver).Msg("starting server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
		return err
	}
	return nil
}

func runInitDb(cmd *cobra.Command, args []string) error {
	_, store, ctx, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer store.Close(ctx)

	if err := store.InitSchema(ctx); err != nil {
		return err
	}
	log.Info().Msg("schema initialized")
	return nil
}

func runLoad(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	_, store, ctx, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer store.Close(ctx)

	n, appErr := catalogmanager.ImportBeers(db.WithDB(ctx, store), data)
	fmt.Fprintf(cmd.OutOrStdout(), "%d beers added\n", n)
	if appErr != nil {
		return appErr
	}
	return nil
}
