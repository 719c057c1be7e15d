package cmd

import (
	"errors"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/console"
	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Solve a puzzle interactively",
	Long: "Suggests a word each round, then asks which word you tried and the " +
		"feedback you got (_ absent, Y present, G correct).",
	RunE: runPlay,
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, playCmd} {
		c.Flags().Int("top", -1, "Ranked guesses to show per round (overrides SOLVER_TOP)")
		c.Flags().Bool("plain", false, "Disable coloured tiles")
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	sel, err := newSelector(true)
	if err != nil {
		return err
	}
	sess, err := session.New(rt.dicts.Answers, sel,
		session.WithMode("play"),
		session.WithMaxRounds(rt.cfg.MaxRounds),
		session.WithOpener(opener(ctx, sel)),
	)
	if err != nil {
		return err
	}

	top := rt.cfg.Top
	if n, _ := cmd.Flags().GetInt("top"); n >= 0 {
		top = n
	}
	plain, _ := cmd.Flags().GetBool("plain")

	outcome, err := console.Run(sess, console.Options{
		In:    os.Stdin,
		Out:   cmd.OutOrStdout(),
		Top:   top,
		Plain: plain,
	})
	record(ctx, sess)
	log.Debug().Str("session", sess.ID()).Str("outcome", string(outcome)).Msg("play finished")
	if errors.Is(err, console.ErrInputClosed) {
		return nil
	}
	return err
}
