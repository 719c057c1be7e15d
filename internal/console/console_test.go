package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

func play(t *testing.T, input string, opts ...session.Option) (session.Outcome, string, error) {
	t.Helper()
	outcome, out, _, err := playCounting(t, input, opts...)
	return outcome, out, err
}

// playCounting also reports how many full selector scans ran.
func playCounting(t *testing.T, input string, opts ...session.Option) (session.Outcome, string, int, error) {
	t.Helper()
	answers := []string{"crane", "shine", "blame"}
	scans := 0
	sel, err := solver.NewSelector(answers, solver.WithProgress(func(done, total int) {
		if done == total {
			scans++
		}
	}))
	require.NoError(t, err)
	sess, err := session.New(answers, sel, opts...)
	require.NoError(t, err)

	var out bytes.Buffer
	outcome, err := Run(sess, Options{In: strings.NewReader(input), Out: &out, Top: 2, Plain: true})
	return outcome, out.String(), scans, err
}

func TestRun_Solves(t *testing.T) {
	outcome, out, err := play(t, "crane\n___GG\n\nGGGGG\n")
	require.NoError(t, err)
	assert.Equal(t, session.OutcomeSolved, outcome)
	assert.Contains(t, out, "Round 1/6, 3 candidate(s)")
	assert.Contains(t, out, "[C_][R_][A_][NG][EG]")
	assert.Contains(t, out, "Remaining (1): shine")
	assert.Contains(t, out, "Best word: SHINE")
	assert.Contains(t, out, "Solved in 2 round(s)!")
}

func TestRun_OneScanPerRankedRound(t *testing.T) {
	_, out, scans, err := playCounting(t, "crane\n___GG\n\nGGGGG\n")
	require.NoError(t, err)
	assert.Contains(t, out, "  1. ")
	assert.Contains(t, out, "  2. ")
	assert.Equal(t, 1, scans, "round 1 ranks once; round 2 has a single candidate")
}

func TestRun_RepromptsOnInvalidInput(t *testing.T) {
	outcome, out, err := play(t, "cr4ne\ncrane\n__XYG\nGGG\n___GG\n\nGGGGG\n")
	require.NoError(t, err)
	assert.Equal(t, session.OutcomeSolved, outcome)
	assert.Equal(t, 1, strings.Count(out, "is not a 5-letter word"))
	assert.Equal(t, 4, strings.Count(out, "Feedback (_ absent, Y present, G correct): "), "two rejected patterns re-prompt")
	assert.Contains(t, out, "Solved in 2 round(s)!")
}

func TestRun_NoCandidates(t *testing.T) {
	outcome, out, err := play(t, "crane\n_____\n")
	require.NoError(t, err)
	assert.Equal(t, session.OutcomeNoCandidates, outcome)
	assert.Contains(t, out, "No candidates match")
}

func TestRun_OutOfTries(t *testing.T) {
	outcome, out, err := play(t, "crane\n___GG\n", session.WithMaxRounds(1))
	require.NoError(t, err)
	assert.Equal(t, session.OutcomeOutOfTries, outcome)
	assert.Contains(t, out, "Out of tries.")
	assert.Contains(t, out, "Remaining (1): shine")
}

func TestRun_InputClosed(t *testing.T) {
	outcome, _, err := play(t, "crane\n")
	assert.ErrorIs(t, err, ErrInputClosed)
	assert.Equal(t, session.OutcomePlaying, outcome)
}

func TestTilesColoured(t *testing.T) {
	c := &console{}
	fb, err := solver.ParseFeedback("GY___")
	require.NoError(t, err)
	got := c.tiles("crane", fb)
	assert.Contains(t, got, " C ")
	assert.Contains(t, got, " E ")
	assert.NotContains(t, got, "[C", "plain markers only without Plain")
}
