package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

func newSession(t *testing.T, id string) *session.Session {
	t.Helper()
	answers := []string{"crane", "shine", "blame"}
	sel, err := solver.NewSelector(answers)
	require.NoError(t, err)
	s, err := session.New(answers, sel, session.WithID(id))
	require.NoError(t, err)
	return s
}

func finish(t *testing.T, s *session.Session) {
	t.Helper()
	fb, err := solver.ParseFeedback("GGGGG")
	require.NoError(t, err)
	_, err = s.Apply("crane", fb)
	require.NoError(t, err)
}

func TestMemory_SaveGet(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(0)

	s := newSession(t, "a")
	require.NoError(t, m.Save(ctx, s))

	got, err := m.Get(ctx, "a")
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, err = m.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.Save(ctx, s))
	assert.Equal(t, 1, m.Len())
}

func TestMemory_EvictsFinishedFirst(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(2)

	live := newSession(t, "live")
	require.NoError(t, m.Save(ctx, live))
	for i := 0; i < 3; i++ {
		s := newSession(t, fmt.Sprintf("done-%d", i))
		finish(t, s)
		require.NoError(t, m.Save(ctx, s))
	}

	assert.Equal(t, 2, m.Len())
	_, err := m.Get(ctx, "live")
	assert.NoError(t, err, "live sessions survive eviction")
	_, err = m.Get(ctx, "done-2")
	assert.NoError(t, err, "newest finished session is kept")
	_, err = m.Get(ctx, "done-0")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_EvictsIdleLiveSessions(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(2)

	for i := 0; i < 50; i++ {
		require.NoError(t, m.Save(ctx, newSession(t, fmt.Sprintf("live-%d", i))))
	}
	assert.Equal(t, 2, m.Len(), "capacity bounds live sessions too")
	_, err := m.Get(ctx, "live-0")
	assert.ErrorIs(t, err, ErrNotFound)

	// Saving live-48 again makes live-49 the idle one.
	s48, err := m.Get(ctx, "live-48")
	require.NoError(t, err)
	require.NoError(t, m.Save(ctx, s48))
	require.NoError(t, m.Save(ctx, newSession(t, "live-50")))

	_, err = m.Get(ctx, "live-48")
	assert.NoError(t, err)
	_, err = m.Get(ctx, "live-50")
	assert.NoError(t, err)
	_, err = m.Get(ctx, "live-49")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_FinishedEvictedBeforeLive(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(2)

	old := newSession(t, "old-live")
	require.NoError(t, m.Save(ctx, old))
	done := newSession(t, "done")
	finish(t, done)
	require.NoError(t, m.Save(ctx, done))
	require.NoError(t, m.Save(ctx, newSession(t, "new-live")))

	_, err := m.Get(ctx, "old-live")
	assert.NoError(t, err, "older live session outlives a finished one")
	_, err = m.Get(ctx, "done")
	assert.ErrorIs(t, err, ErrNotFound)
}
