package solver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) Feedback {
	t.Helper()
	fb, err := ParseFeedback(s)
	require.NoError(t, err)
	return fb
}

func TestComputeFeedback(t *testing.T) {
	tests := []struct {
		secret, guess string
		want          string
	}{
		{"shine", "crane", "___GG"},
		{"crane", "crane", "GGGGG"},
		{"crane", "bumpy", "_____"},
		{"nacre", "crane", "YYYYG"},
		// repeated guess letter with a single occurrence in the secret:
		// both are marked present under the single-pass rule.
		{"abbey", "eerie", "YY__Y"},
		{"robot", "boost", "YGY_G"},
	}
	for _, tc := range tests {
		t.Run(tc.secret+"/"+tc.guess, func(t *testing.T) {
			assert.Equal(t, tc.want, ComputeFeedback(tc.secret, tc.guess).String())
		})
	}
}

func TestParseFeedback(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantPos int
		wantErr bool
	}{
		{"all symbols", "__YYG", "__YYG", 0, false},
		{"trimmed", "  GGGGG\n", "GGGGG", 0, false},
		{"unknown symbol", "__XYG", "", 2, true},
		{"lowercase is not accepted", "ggggg", "", 0, true},
		{"too short", "GGG", "", -1, true},
		{"too long", "GGGGGG", "", -1, true},
		{"empty", "", "", -1, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fb, err := ParseFeedback(tc.input)
			if tc.wantErr {
				var ife *InvalidFeedbackError
				require.ErrorAs(t, err, &ife)
				assert.Equal(t, tc.wantPos, ife.Position)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, fb.String())
		})
	}
}

func TestFilterCandidates_Scenario(t *testing.T) {
	candidates := []string{"crane", "shine", "blame"}
	fb := ComputeFeedback("shine", "crane")
	require.Equal(t, "___GG", fb.String())

	got, err := FilterCandidates(candidates, "crane", fb)
	require.NoError(t, err)
	assert.Equal(t, []string{"shine"}, got)
	assert.Equal(t, []string{"crane", "shine", "blame"}, candidates, "input must not be modified")
}

func TestFilterCandidates_AllCorrect(t *testing.T) {
	candidates := []string{"crane", "crank", "shine", "blame", "trace"}
	for _, guess := range candidates {
		got, err := FilterCandidates(candidates, guess, mustParse(t, "GGGGG"))
		require.NoError(t, err)
		assert.Equal(t, []string{guess}, got)
	}
}

func TestFilterCandidates_Predicates(t *testing.T) {
	candidates := []string{"crane", "crank", "shine", "blame", "trace", "alarm"}
	tests := []struct {
		name     string
		guess    string
		feedback string
		want     []string
	}{
		{"absent rules out letter everywhere", "bumpy", "_____", []string{"crane", "crank", "shine", "trace"}},
		{"present requires letter elsewhere", "aaaaa", "Y____", nil},
		{"correct pins position", "crxxx", "GG___", []string{"crane", "crank"}},
		{"present excludes the position", "zzzaz", "___Y_", []string{"crane", "crank", "blame", "trace", "alarm"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FilterCandidates(candidates, tc.guess, mustParse(t, tc.feedback))
			if tc.want == nil {
				var nce *NoCandidatesError
				require.ErrorAs(t, err, &nce)
				assert.Equal(t, tc.guess, nce.Guess)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFilterCandidates_InvalidFeedback(t *testing.T) {
	fb := Feedback{MarkAbsent, 'X', MarkPresent, MarkPresent, MarkCorrect}
	got, err := FilterCandidates([]string{"crane", "shine"}, "crane", fb)
	assert.Nil(t, got)

	var ife *InvalidFeedbackError
	require.ErrorAs(t, err, &ife)
	assert.Equal(t, 1, ife.Position)
	assert.Equal(t, byte('X'), ife.Symbol)

	var nce *NoCandidatesError
	assert.False(t, errors.As(err, &nce), "invalid feedback must not look like an empty result")
}

func TestFilterCandidates_InvalidGuess(t *testing.T) {
	_, err := FilterCandidates([]string{"crane"}, "cran", mustParse(t, "GGGGG"))
	assert.ErrorIs(t, err, ErrInvalidWord)
	_, err = FilterCandidates([]string{"crane"}, "CRANE", mustParse(t, "GGGGG"))
	assert.ErrorIs(t, err, ErrInvalidWord)
}

func TestFilterCandidates_SecretSurvives(t *testing.T) {
	candidates := []string{"crane", "shine", "blame", "eerie", "abbey", "robot", "boost", "llama", "mamma", "trace"}
	guesses := append([]string{"soare", "geese", "lolly"}, candidates...)
	for _, secret := range candidates {
		for _, guess := range guesses {
			got, err := FilterCandidates(candidates, guess, ComputeFeedback(secret, guess))
			require.NoError(t, err)
			assert.Contains(t, got, secret, "secret %s lost after guess %s", secret, guess)
		}
	}
}

func TestFilterCandidates_Idempotent(t *testing.T) {
	candidates := []string{"crane", "shine", "blame", "eerie", "abbey", "robot", "boost", "llama", "trace"}
	for _, secret := range candidates {
		fb := ComputeFeedback(secret, "trace")
		once, err := FilterCandidates(candidates, "trace", fb)
		require.NoError(t, err)
		twice, err := FilterCandidates(once, "trace", fb)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	}
}
