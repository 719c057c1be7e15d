// apps/go-solver/internal/console/console.go
//
// Interactive round loop over a reader/writer pair.
// Each round:
//   - prints the suggested word and the top-ranked alternatives,
//   - asks which word was actually tried (empty line = the suggestion),
//   - asks for the feedback pattern (_ absent, Y present, G correct),
//   - prints the coloured tiles and the remaining candidates.
//
// Invalid input re-prompts within the same round; the session is untouched.

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/TwiN/go-color"

	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// ErrInputClosed is returned when the input ends before the session does.
var ErrInputClosed = errors.New("input closed")

// listLimit caps how many remaining candidates are printed.
const listLimit = 30

// Options configures the console driver.
type Options struct {
	In    io.Reader
	Out   io.Writer
	Top   int  // ranked guesses shown per round, 0 disables ranking
	Plain bool // no ANSI colours
}

type console struct {
	in   *bufio.Scanner
	out  io.Writer
	sess *session.Session
	opts Options
}

// Run drives sess until it is terminal and returns its outcome.
func Run(sess *session.Session, opts Options) (session.Outcome, error) {
	c := &console{
		in:   bufio.NewScanner(opts.In),
		out:  opts.Out,
		sess: sess,
		opts: opts,
	}
	for !sess.Done() {
		if err := c.round(); err != nil {
			return sess.Outcome(), err
		}
	}
	c.finish()
	return sess.Outcome(), nil
}

func (c *console) round() error {
	suggestion, ranked, err := c.sess.SuggestRanked(c.opts.Top)
	if err != nil {
		return err
	}
	n := len(c.sess.Rounds()) + 1

	fmt.Fprintf(c.out, "\nRound %d/%d, %d candidate(s)\n", n, n-1+c.sess.RoundsLeft(), len(c.sess.Candidates()))
	fmt.Fprintf(c.out, "Best word: %s\n", strings.ToUpper(suggestion))
	for i, sc := range ranked {
		fmt.Fprintf(c.out, "  %d. %s  %.3f bits\n", i+1, sc.Guess, sc.Bits)
	}

	for {
		guess, err := c.askWord(suggestion)
		if err != nil {
			return err
		}
		fb, err := c.askFeedback()
		if err != nil {
			return err
		}

		_, err = c.sess.Apply(guess, fb)
		var nce *solver.NoCandidatesError
		switch {
		case err == nil:
		case errors.As(err, &nce):
			fmt.Fprintf(c.out, "%s\n", c.tiles(guess, fb))
			return nil
		case errors.Is(err, solver.ErrInvalidWord):
			fmt.Fprintln(c.out, "Invalid word, try again.")
			continue
		default:
			return err
		}

		fmt.Fprintf(c.out, "%s\n", c.tiles(guess, fb))
		if !c.sess.Done() {
			c.printCandidates(c.sess.Candidates())
		}
		return nil
	}
}

// askWord reads the tried word; an empty line accepts the suggestion.
func (c *console) askWord(suggestion string) (string, error) {
	for {
		fmt.Fprintf(c.out, "Word tried [%s]: ", suggestion)
		line, err := c.readLine()
		if err != nil {
			return "", err
		}
		if line == "" {
			return suggestion, nil
		}
		w := strings.ToLower(line)
		if solver.ValidWord(w) {
			return w, nil
		}
		fmt.Fprintf(c.out, "%q is not a %d-letter word, try again.\n", line, solver.WordLength)
	}
}

func (c *console) askFeedback() (solver.Feedback, error) {
	for {
		fmt.Fprint(c.out, "Feedback (_ absent, Y present, G correct): ")
		line, err := c.readLine()
		if err != nil {
			return solver.Feedback{}, err
		}
		fb, err := solver.ParseFeedback(line)
		if err == nil {
			return fb, nil
		}
		fmt.Fprintf(c.out, "%v, try again.\n", err)
	}
}

func (c *console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// tiles renders guess letters coloured by their feedback marks.
func (c *console) tiles(guess string, fb solver.Feedback) string {
	var b strings.Builder
	for i := 0; i < solver.WordLength; i++ {
		letter := strings.ToUpper(guess[i : i+1])
		if c.opts.Plain {
			b.WriteString("[" + letter + string(fb[i]) + "]")
			continue
		}
		b.WriteString(color.Ize(markColor(fb[i]), " "+letter+" "))
	}
	return b.String()
}

func markColor(m solver.Mark) string {
	switch m {
	case solver.MarkCorrect:
		return color.Green
	case solver.MarkPresent:
		return color.Yellow
	default:
		return color.Gray
	}
}

func (c *console) printCandidates(candidates []string) {
	shown := candidates
	if len(shown) > listLimit {
		shown = shown[:listLimit]
	}
	fmt.Fprintf(c.out, "Remaining (%d): %s", len(candidates), strings.Join(shown, " "))
	if more := len(candidates) - len(shown); more > 0 {
		fmt.Fprintf(c.out, " ... and %d more", more)
	}
	fmt.Fprintln(c.out)
}

func (c *console) finish() {
	rounds := len(c.sess.Rounds())
	switch c.sess.Outcome() {
	case session.OutcomeSolved:
		fmt.Fprintf(c.out, "Solved in %d round(s)!\n", rounds)
	case session.OutcomeNoCandidates:
		fmt.Fprintln(c.out, "No candidates match that feedback. Check the pattern and start again.")
	case session.OutcomeOutOfTries:
		fmt.Fprintln(c.out, "Out of tries.")
		c.printCandidates(c.sess.Candidates())
	}
}
