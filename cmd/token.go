package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/httpserver"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token for the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if rt.cfg.JWTSecret == "" {
			return errors.New("SOLVER_JWT_SECRET is not set")
		}
		subject, _ := cmd.Flags().GetString("subject")
		days := rt.cfg.JWTExpiresDays
		if d, _ := cmd.Flags().GetInt("days"); d > 0 {
			days = d
		}

		tok, exp, err := httpserver.SignToken(rt.cfg.JWTSecret, subject, days)
		if err != nil {
			return fmt.Errorf("sign token: %w", err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, tok)
		fmt.Fprintf(out, "expires %s\n", exp.UTC().Format(time.RFC3339))
		return nil
	},
}

func init() {
	tokenCmd.Flags().String("subject", "", "Token subject (client name)")
	tokenCmd.Flags().Int("days", 0, "Lifetime in days (overrides SOLVER_JWT_EXPIRES_DAYS)")
	_ = tokenCmd.MarkFlagRequired("subject")
}
