package main

import (
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/vncsmyrnk/quickpoll/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := config.New()

	root := &cobra.Command{
		Use:          "quickpoll",
		Short:        "Create polls, share them and vote",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotEnv(); err != nil {
				log.Warn().Err(err).Msg("ignoring .env")
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (yaml, toml or json)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-file", "", "write logs to this file, rotated")
	flags.String("public-url", "http://localhost:8080/", "page URL share links point to")
	bindFlags(v, flags)

	root.AddCommand(newServeCmd(v), newTUICmd(v))
	return root
}

// bindFlags maps every flag onto the config key of the same name, with
// dashes turned into underscores.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
}
