package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/daily"
	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Auto-play against a known secret",
	Long: "Plays the solver against a secret word, computing feedback itself. " +
		"Without flags it plays today's daily answer.",
	RunE: func(cmd *cobra.Command, args []string) error {
		secret, _ := cmd.Flags().GetString("secret")
		date, _ := cmd.Flags().GetString("date")
		all, _ := cmd.Flags().GetBool("all")

		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		sel, err := newSelector(!all)
		if err != nil {
			return err
		}
		first := opener(ctx, sel)

		if all {
			return simulateAll(ctx, out, sel, first)
		}

		switch {
		case secret != "" && date != "":
			return errors.New("use either --secret or --date")
		case secret != "":
			secret = strings.ToLower(strings.TrimSpace(secret))
			if !solver.ValidWord(secret) {
				return fmt.Errorf("secret %q: %w", secret, solver.ErrInvalidWord)
			}
			if !rt.dicts.IsAnswer(secret) {
				log.Warn().Str("secret", secret).Msg("secret is not in the answer list; it can never be suggested")
			}
		default:
			day := time.Now()
			if date != "" {
				if day, err = daily.ParseDate(date); err != nil {
					return err
				}
			}
			secret = daily.Answer(day, rt.cfg.DailySalt, rt.dicts.Answers)
			fmt.Fprintf(out, "Daily %s\n", daily.DateKey(day))
		}

		sess, err := simulate(sel, secret, first)
		if err != nil && !isNoCandidates(err) {
			return err
		}
		record(ctx, sess)
		printRounds(out, sess)
		return nil
	},
}

func init() {
	simulateCmd.Flags().String("secret", "", "Secret word to solve")
	simulateCmd.Flags().String("date", "", "Play the daily answer for YYYY-MM-DD")
	simulateCmd.Flags().Bool("all", false, "Play every answer and print the distribution of rounds used")
}

// simulate plays one session to the end using feedback computed against
// secret.
func simulate(sel *solver.Selector, secret, first string) (*session.Session, error) {
	sess, err := session.New(rt.dicts.Answers, sel,
		session.WithMode("simulate"),
		session.WithMaxRounds(rt.cfg.MaxRounds),
		session.WithOpener(first),
	)
	if err != nil {
		return nil, err
	}
	for !sess.Done() {
		guess, err := sess.Suggest()
		if err != nil {
			return sess, err
		}
		if _, err := sess.Apply(guess, solver.ComputeFeedback(secret, guess)); err != nil {
			return sess, err
		}
	}
	return sess, nil
}

func simulateAll(ctx context.Context, out io.Writer, sel *solver.Selector, first string) error {
	answers := rt.dicts.Answers
	bar := progressbar.NewOptions(len(answers),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("simulating"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionThrottle(progressThrottle),
	)

	solvedIn := map[int]int{}
	failed := map[session.Outcome][]string{}
	total := 0
	for _, secret := range answers {
		sess, err := simulate(sel, secret, first)
		if err != nil && !isNoCandidates(err) {
			return fmt.Errorf("simulate %s: %w", secret, err)
		}
		record(ctx, sess)
		if sess.Outcome() == session.OutcomeSolved {
			n := len(sess.Rounds())
			solvedIn[n]++
			total += n
		} else {
			failed[sess.Outcome()] = append(failed[sess.Outcome()], secret)
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	solved := len(answers) - len(failed[session.OutcomeOutOfTries]) - len(failed[session.OutcomeNoCandidates])
	fmt.Fprintf(out, "Played %d, solved %d", len(answers), solved)
	if solved > 0 {
		fmt.Fprintf(out, ", average %.3f rounds", float64(total)/float64(solved))
	}
	fmt.Fprintln(out)
	printDistribution(out, solvedIn)
	for _, o := range []session.Outcome{session.OutcomeOutOfTries, session.OutcomeNoCandidates} {
		if words := failed[o]; len(words) > 0 {
			fmt.Fprintf(out, "%s (%d): %s\n", o, len(words), strings.Join(words, " "))
		}
	}
	return nil
}

func printRounds(out io.Writer, sess *session.Session) {
	for _, r := range sess.Rounds() {
		fmt.Fprintf(out, "%d. %s %s  %d -> %d\n", r.N, r.Guess, r.Feedback, r.Before, r.After)
	}
	switch sess.Outcome() {
	case session.OutcomeSolved:
		fmt.Fprintf(out, "Solved in %d round(s)\n", len(sess.Rounds()))
	case session.OutcomeOutOfTries:
		fmt.Fprintln(out, "Out of tries")
	case session.OutcomeNoCandidates:
		fmt.Fprintln(out, "No candidates left")
	}
}

func printDistribution(out io.Writer, solvedIn map[int]int) {
	rounds := make([]int, 0, len(solvedIn))
	for n := range solvedIn {
		rounds = append(rounds, n)
	}
	sort.Ints(rounds)
	for _, n := range rounds {
		fmt.Fprintf(out, "  %d: %d\n", n, solvedIn[n])
	}
}

func isNoCandidates(err error) bool {
	var nce *solver.NoCandidatesError
	return errors.As(err, &nce)
}
