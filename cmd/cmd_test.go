package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// run executes the root command. Flag values persist between runs, so every
// test passes the flags it depends on explicitly.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{"WORDS_ANSWERS_FILE", "WORDS_ALLOWED_FILE", "SOLVER_DB", "SOLVER_JWT_SECRET", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestFeedbackCommand(t *testing.T) {
	out, err := run(t, "feedback", "--db=", "shine", "CRANE")
	require.NoError(t, err)
	assert.Equal(t, "___GG\n", out)

	_, err = run(t, "feedback", "--db=", "shine", "cran")
	assert.ErrorIs(t, err, solver.ErrInvalidWord)
}

func TestSimulateAndStats(t *testing.T) {
	db := filepath.Join(t.TempDir(), "history.db")

	out, err := run(t, "simulate", "--db", db, "--secret", "alarm", "--date=", "--all=false")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "1. "), out)
	assert.Contains(t, out, " 77 -> ")

	out, err = run(t, "stats", "--db", db, "--mode=simulate")
	require.NoError(t, err)
	assert.Contains(t, out, "Played:        1\n")
}

func TestHistoryClosedAfterFailedCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "history.db")
	_, err := run(t, "simulate", "--db", db, "--secret=", "--date", "not-a-date", "--all=false")
	require.Error(t, err)
	assert.Nil(t, rt.hist, "history is closed even when the command fails")
}

func TestSimulateDaily(t *testing.T) {
	out, err := run(t, "simulate", "--db=", "--secret=", "--date", "2024-01-01", "--all=false")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Daily 2024-01-01\n"), out)

	_, err = run(t, "simulate", "--db=", "--secret=", "--date", "01/01/2024", "--all=false")
	assert.Error(t, err)
}

func TestSimulateAll(t *testing.T) {
	out, err := run(t, "simulate", "--db=", "--secret=", "--date=", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "Played 77, solved ")
}

func TestStatsRequiresDB(t *testing.T) {
	_, err := run(t, "stats", "--db=")
	assert.ErrorContains(t, err, "no history database")
}

func TestTokenCommand(t *testing.T) {
	_, err := run(t, "token", "--db=", "--subject", "bot")
	assert.ErrorContains(t, err, "SOLVER_JWT_SECRET")

	var out bytes.Buffer
	t.Setenv("SOLVER_JWT_SECRET", "test-secret")
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"token", "--db=", "--subject", "bot", "--days", "1"})
	require.NoError(t, rootCmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Len(t, strings.Split(lines[0], "."), 3, "JWT has three segments")
	assert.True(t, strings.HasPrefix(lines[1], "expires "))
}
