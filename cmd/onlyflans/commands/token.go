package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	authmw "onlyflans/internal/transport/httpserver/middleware"
)

var (
	tokenUsername string
	tokenEmail    string
	tokenName     string
	tokenTTL      time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a signed access token for a user",
	Long: `Issue an HS256 token signed with AUTH_JWT_SECRET. Send it as a Bearer token
or store it in the onlyflans_token cookie.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Auth.JWTSecret == "" {
			return errors.New("AUTH_JWT_SECRET is not set")
		}
		ttl := tokenTTL
		if ttl <= 0 {
			ttl = cfg.Auth.TokenTTL
		}
		token, err := authmw.IssueToken(cfg.Auth.JWTSecret, tokenUsername, tokenEmail, tokenName, ttl, time.Now())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVar(&tokenUsername, "username", "", "Username (token subject, required)")
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "Email claim")
	tokenCmd.Flags().StringVar(&tokenName, "name", "", "Display name claim")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "Token lifetime (defaults to AUTH_TOKEN_TTL)")
	_ = tokenCmd.MarkFlagRequired("username")
}
