package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/planboard-backend/internal/auth"
	"github.com/heartmarshall/planboard-backend/internal/domain"
)

var (
	flagUserID int64
	flagRole   string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print a development access token for a user id",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
		token, err := jwt.GenerateAccessToken(flagUserID, flagRole)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
		return err
	},
}

func init() {
	tokenCmd.Flags().Int64Var(&flagUserID, "user-id", 0, "user id placed in the token subject")
	tokenCmd.Flags().StringVar(&flagRole, "role", domain.RoleUser, "role claim")
	_ = tokenCmd.MarkFlagRequired("user-id")
}
