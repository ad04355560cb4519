package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/planboard-backend/internal/app"
)

var (
	flagSample        bool
	flagUserPassword  string
	flagAdminPassword string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the local user and admin accounts, optionally with a sample project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		a, err := app.New(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer a.Close() //nolint:errcheck

		users, err := app.SeedUsers(ctx, a.Users(), logger, app.DefaultSeedUsers(flagUserPassword, flagAdminPassword))
		if err != nil {
			return err
		}
		if !flagSample {
			return nil
		}

		p, err := app.SeedSample(ctx, a.Service(), users[0].ID)
		if err != nil {
			return err
		}
		logger.InfoContext(ctx, "sample project seeded", slog.Int64("project_id", p.ID), slog.Int("epics", len(p.Epics)))
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&flagSample, "sample", false, "also create a sample project tree owned by user@example.com")
	seedCmd.Flags().StringVar(&flagUserPassword, "user-password", "test1234", "password for user@example.com")
	seedCmd.Flags().StringVar(&flagAdminPassword, "admin-password", "admin1234", "password for admin@example.com")
}
