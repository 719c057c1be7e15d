// apps/go-solver/internal/session/types.go
//
// Type definitions for a solving session.
// Defines:
//   - State: where the round loop currently is.
//   - Outcome: how a finished session ended.
//   - Round: one applied guess with its feedback and effect on the candidates.
//   - Summary: a compact record of a whole session, used for history.

package session

import (
	"errors"
	"time"
)

// DefaultMaxRounds is the classic Wordle budget.
const DefaultMaxRounds = 6

var (
	// ErrFinished is returned when a terminal session is asked to do more work.
	ErrFinished = errors.New("session finished")
	// ErrNoSelector is returned by New when no selector is given.
	ErrNoSelector = errors.New("session needs a selector")
)

// State of the round loop.
//   - Selecting:        next guess not yet chosen.
//   - AwaitingFeedback: a guess was suggested, waiting for the player.
//   - Filtering:        feedback received, narrowing candidates.
//   - Terminal:         solved, out of candidates, or out of tries.
type State string

const (
	StateSelecting        State = "selecting"
	StateAwaitingFeedback State = "awaiting_feedback"
	StateFiltering        State = "filtering"
	StateTerminal         State = "terminal"
)

// Outcome of a session. Playing until the session is Terminal.
type Outcome string

const (
	OutcomePlaying      Outcome = "playing"
	OutcomeSolved       Outcome = "solved"
	OutcomeNoCandidates Outcome = "no_candidates"
	OutcomeOutOfTries   Outcome = "out_of_tries"
)

// Round records one applied guess.
type Round struct {
	N         int    `json:"n"`         // 1-based round number
	Suggested string `json:"suggested"` // solver's pick for this round, "" if none was requested
	Guess     string `json:"guess"`     // word the player actually tried
	Feedback  string `json:"feedback"`  // wire form, e.g. "__YYG"
	Before    int    `json:"before"`    // candidates before filtering
	After     int    `json:"after"`     // candidates after filtering (0 on no_candidates)
}

// Summary is the history record of a session.
type Summary struct {
	ID         string
	Mode       string // "play", "simulate", "api"
	StartedAt  time.Time
	FinishedAt time.Time
	Outcome    Outcome
	Rounds     []Round
}
