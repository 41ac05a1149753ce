package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/storefront-backend/internal/auth"
	"github.com/heartmarshall/storefront-backend/internal/config"
)

func newTokenCmd() *cobra.Command {
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token [user-id]",
		Short: "Issue a development access token",
		Long: "Sign an access token with the configured secret. Without a user id a\n" +
			"random one is generated and printed to stderr.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			userID := uuid.New()
			if len(args) == 1 {
				if userID, err = uuid.Parse(args[0]); err != nil {
					return fmt.Errorf("invalid user id: %w", err)
				}
			} else {
				fmt.Fprintf(cmd.ErrOrStderr(), "user id: %s\n", userID)
			}

			if ttl <= 0 {
				ttl = cfg.Auth.AccessTokenTTL
			}
			token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, ttl).GenerateAccessToken(userID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().DurationVar(&ttl, "ttl", 0, "Token lifetime; defaults to auth.access_token_ttl")

	return cmd
}
