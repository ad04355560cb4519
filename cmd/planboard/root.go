package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/planboard-backend/internal/app"
	"github.com/heartmarshall/planboard-backend/internal/config"
)

var flagConfig string

// Set by PersistentPreRunE for every subcommand.
var (
	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "planboard",
	Short:         "Planboard serves projects, epics, stories, mockups and assertions",
	Version:       app.BuildVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		loaded, err := config.LoadFile(flagConfig)
		if err != nil {
			return err
		}
		cfg = loaded
		logger = app.NewLogger(cfg.Log, cmd.ErrOrStderr())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to YAML config (default: $CONFIG_PATH or ./config.yaml)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(versionCmd)
}
