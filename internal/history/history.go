// apps/go-solver/internal/history/history.go
//
// Optional history of finished sessions plus a cache of first-round openers.
//
// Only summaries of finished sessions are written; nothing here is ever used
// to resume a session. The opener cache exists because the first round scans
// the full guess dictionary against the full answer list, the most expensive
// step of any session, and its result depends only on the two lists.

package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// DB is a handle on the history database.
type DB struct {
	sql *sql.DB
}

// Open opens the database at path and applies pending migrations.
func Open(path string) (*DB, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, fmt.Errorf("open history %s: %w", path, err)
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate history: %w", err)
	}
	return &DB{sql: db}, nil
}

// Close closes the underlying database.
func (d *DB) Close() error { return d.sql.Close() }

// RecordSession stores a finished session and its rounds in one transaction.
// Recording the same session twice is a no-op.
func (d *DB) RecordSession(ctx context.Context, s session.Summary) error {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var finished any
	if !s.FinishedAt.IsZero() {
		finished = s.FinishedAt.UTC().Format(time.RFC3339)
	}
	res, err := tx.ExecContext(ctx, `
        INSERT OR IGNORE INTO sessions (id, mode, outcome, rounds, started_at, finished_at)
        VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID, s.Mode, string(s.Outcome), len(s.Rounds), s.StartedAt.UTC().Format(time.RFC3339), finished,
	)
	if err != nil {
		return fmt.Errorf("insert session %s: %w", s.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil
	}

	for _, r := range s.Rounds {
		if _, err := tx.ExecContext(ctx, `
            INSERT INTO rounds (session_id, n, suggested, guess, feedback, before_count, after_count)
            VALUES (?, ?, ?, ?, ?, ?, ?)`,
			s.ID, r.N, r.Suggested, r.Guess, r.Feedback, r.Before, r.After,
		); err != nil {
			return fmt.Errorf("insert round %d of %s: %w", r.N, s.ID, err)
		}
	}
	return tx.Commit()
}

// Rounds returns the recorded rounds of a session in order.
func (d *DB) Rounds(ctx context.Context, sessionID string) ([]session.Round, error) {
	rows, err := d.sql.QueryContext(ctx, `
        SELECT n, suggested, guess, feedback, before_count, after_count
        FROM rounds WHERE session_id=? ORDER BY n`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []session.Round
	for rows.Next() {
		var r session.Round
		if err := rows.Scan(&r.N, &r.Suggested, &r.Guess, &r.Feedback, &r.Before, &r.After); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Stats aggregates recorded sessions.
type Stats struct {
	Played       int
	Solved       int
	NoCandidates int
	OutOfTries   int
	// SolvedIn maps rounds used → number of sessions solved in that many rounds.
	SolvedIn map[int]int
}

// AverageRounds returns the mean rounds used by solved sessions, 0 if none.
func (s Stats) AverageRounds() float64 {
	if s.Solved == 0 {
		return 0
	}
	total := 0
	for rounds, n := range s.SolvedIn {
		total += rounds * n
	}
	return float64(total) / float64(s.Solved)
}

// Stats returns counts per outcome. An empty mode matches every mode.
func (d *DB) Stats(ctx context.Context, mode string) (Stats, error) {
	rows, err := d.sql.QueryContext(ctx, `
        SELECT outcome, rounds, COUNT(1)
        FROM sessions
        WHERE ?='' OR mode=?
        GROUP BY outcome, rounds`, mode, mode)
	if err != nil {
		return Stats{}, err
	}
	defer rows.Close()

	st := Stats{SolvedIn: map[int]int{}}
	for rows.Next() {
		var outcome string
		var rounds, n int
		if err := rows.Scan(&outcome, &rounds, &n); err != nil {
			return Stats{}, err
		}
		st.Played += n
		switch session.Outcome(outcome) {
		case session.OutcomeSolved:
			st.Solved += n
			st.SolvedIn[rounds] += n
		case session.OutcomeNoCandidates:
			st.NoCandidates += n
		case session.OutcomeOutOfTries:
			st.OutOfTries += n
		}
	}
	return st, rows.Err()
}

// Opener returns the cached first-round guess for a dictionary fingerprint.
func (d *DB) Opener(ctx context.Context, fingerprint uint64) (solver.Scored, bool, error) {
	var sc solver.Scored
	err := d.sql.QueryRowContext(ctx,
		`SELECT guess, bits FROM openers WHERE fingerprint=?`, fingerprintKey(fingerprint),
	).Scan(&sc.Guess, &sc.Bits)
	if errors.Is(err, sql.ErrNoRows) {
		return solver.Scored{}, false, nil
	}
	if err != nil {
		return solver.Scored{}, false, err
	}
	return sc, true, nil
}

// SaveOpener caches the first-round guess for a dictionary fingerprint.
func (d *DB) SaveOpener(ctx context.Context, fingerprint uint64, sc solver.Scored) error {
	_, err := d.sql.ExecContext(ctx, `
        INSERT OR REPLACE INTO openers (fingerprint, guess, bits, computed_at)
        VALUES (?, ?, ?, ?)`,
		fingerprintKey(fingerprint), sc.Guess, sc.Bits, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// fingerprintKey stores the full uint64 as hex; SQLite integers are signed.
func fingerprintKey(fp uint64) string {
	return strconv.FormatUint(fp, 16)
}
