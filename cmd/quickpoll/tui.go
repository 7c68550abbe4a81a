package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vncsmyrnk/quickpoll/internal/adapters/handler/tui"
	"github.com/vncsmyrnk/quickpoll/internal/config"
	"github.com/vncsmyrnk/quickpoll/internal/logger"
)

func newTUICmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the polls in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return runTUI(cmd.Context(), cfg)
		},
	}

	cmd.Flags().Bool("osc52", true, "fall back to the terminal clipboard escape when no system clipboard exists")
	bindFlags(v, cmd.Flags())

	return cmd
}

func runTUI(ctx context.Context, cfg config.Config) error {
	// Only the log file is written to; console output would tear the screen.
	log := logger.Configure(logger.Options{
		Level: logger.ParseLevel(cfg.LogLevel),
		File:  cfg.LogFile,
	})

	a := newApp(cfg, log, os.Stderr)
	return tui.Run(ctx, a.controller, cfg.PublicLocation(), log)
}
