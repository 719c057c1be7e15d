package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

func openTemp(t *testing.T) (*DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "history.db")
	db, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, path
}

func summary(id string, outcome session.Outcome, rounds int) session.Summary {
	start := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	s := session.Summary{
		ID:         id,
		Mode:       "simulate",
		StartedAt:  start,
		FinishedAt: start.Add(time.Minute),
		Outcome:    outcome,
	}
	for i := 1; i <= rounds; i++ {
		s.Rounds = append(s.Rounds, session.Round{
			N: i, Suggested: "crane", Guess: "crane", Feedback: "__YYG", Before: 10, After: 3,
		})
	}
	return s
}

func TestOpen_MigrationsAreIdempotent(t *testing.T) {
	db, path := openTemp(t)
	require.NoError(t, db.Close())

	again, err := Open(path)
	require.NoError(t, err)
	defer again.Close()

	var n int
	require.NoError(t, again.sql.QueryRow(`SELECT COUNT(1) FROM _migrations`).Scan(&n))
	assert.Equal(t, 2, n)
}

func TestRecordSession(t *testing.T) {
	ctx := context.Background()
	db, _ := openTemp(t)

	s := summary("s1", session.OutcomeSolved, 3)
	require.NoError(t, db.RecordSession(ctx, s))
	require.NoError(t, db.RecordSession(ctx, s), "recording twice is a no-op")

	rounds, err := db.Rounds(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, s.Rounds, rounds)
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	db, _ := openTemp(t)

	require.NoError(t, db.RecordSession(ctx, summary("a", session.OutcomeSolved, 3)))
	require.NoError(t, db.RecordSession(ctx, summary("b", session.OutcomeSolved, 4)))
	require.NoError(t, db.RecordSession(ctx, summary("c", session.OutcomeSolved, 3)))
	require.NoError(t, db.RecordSession(ctx, summary("d", session.OutcomeOutOfTries, 6)))
	require.NoError(t, db.RecordSession(ctx, summary("e", session.OutcomeNoCandidates, 2)))

	st, err := db.Stats(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 5, st.Played)
	assert.Equal(t, 3, st.Solved)
	assert.Equal(t, 1, st.OutOfTries)
	assert.Equal(t, 1, st.NoCandidates)
	assert.Equal(t, map[int]int{3: 2, 4: 1}, st.SolvedIn)
	assert.InDelta(t, 10.0/3.0, st.AverageRounds(), 1e-9)

	st, err = db.Stats(ctx, "play")
	require.NoError(t, err)
	assert.Zero(t, st.Played)
	assert.Zero(t, st.AverageRounds())
}

func TestOpenerCache(t *testing.T) {
	ctx := context.Background()
	db, _ := openTemp(t)
	const fp = uint64(0xfedcba9876543210)

	_, ok, err := db.Opener(ctx, fp)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, db.SaveOpener(ctx, fp, solver.Scored{Guess: "soare", Bits: 5.88}))
	require.NoError(t, db.SaveOpener(ctx, fp, solver.Scored{Guess: "roate", Bits: 5.9}))

	got, ok, err := db.Opener(ctx, fp)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, solver.Scored{Guess: "roate", Bits: 5.9}, got)
}
