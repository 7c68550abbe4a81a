package main

import (
	"context"
	"errors"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vncsmyrnk/quickpoll/internal/adapters/handler/http"
	"github.com/vncsmyrnk/quickpoll/internal/config"
	"github.com/vncsmyrnk/quickpoll/internal/logger"
)

func newServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the poll page and JSON API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.String("addr", "0.0.0.0:8080", "listen address")
	flags.String("page-path", "/", "path the poll page is served at")
	flags.StringSlice("allowed-origins", []string{"*"}, "origins allowed to call the JSON API")
	flags.Duration("shutdown-timeout", 30*time.Second, "how long to wait for requests on shutdown")
	bindFlags(v, flags)

	return cmd
}

func serve(ctx context.Context, cfg config.Config) error {
	log := logger.Configure(logger.Options{
		Level:   logger.ParseLevel(cfg.LogLevel),
		File:    cfg.LogFile,
		Console: os.Stderr,
	})

	// Visitors copy share links in their own browser, so the server never
	// writes to a terminal.
	a := newApp(cfg, log, nil)

	pageHandler, err := http.NewPageHandler(a.controller, cfg.PagePath, log)
	if err != nil {
		return err
	}

	handler := http.NewHandler(
		http.RouterConfig{PagePath: cfg.PagePath, AllowedOrigins: cfg.AllowedOrigins},
		pageHandler,
		http.NewPollHandler(a.polls, a.summaries, a.controller, cfg.PagePath, log),
		http.NewVoteHandler(a.controller, a.summaries, log),
		log,
	)
	server := &stdhttp.Server{Addr: cfg.Addr, Handler: handler}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Str("page_path", cfg.PagePath).Msg("server started")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	log.Info().Msg("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
