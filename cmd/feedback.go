package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback SECRET GUESS",
	Short: "Print the feedback pattern GUESS gets against SECRET",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		secret := strings.ToLower(args[0])
		guess := strings.ToLower(args[1])
		for _, w := range []string{secret, guess} {
			if !solver.ValidWord(w) {
				return fmt.Errorf("%q: %w", w, solver.ErrInvalidWord)
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), solver.ComputeFeedback(secret, guess))
		return nil
	},
}
