package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recorded session statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		if rt.hist == nil {
			return errors.New("no history database: set --db or SOLVER_DB")
		}
		mode, _ := cmd.Flags().GetString("mode")
		st, err := rt.hist.Stats(cmd.Context(), mode)
		if err != nil {
			return fmt.Errorf("read stats: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Played:        %d\n", st.Played)
		fmt.Fprintf(out, "Solved:        %d\n", st.Solved)
		fmt.Fprintf(out, "Out of tries:  %d\n", st.OutOfTries)
		fmt.Fprintf(out, "No candidates: %d\n", st.NoCandidates)
		if st.Solved > 0 {
			fmt.Fprintf(out, "Average rounds when solved: %.3f\n", st.AverageRounds())
			printDistribution(out, st.SolvedIn)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().String("mode", "", "Only sessions of this mode: play, simulate, api")
}
