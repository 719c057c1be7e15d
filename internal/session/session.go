// apps/go-solver/internal/session/session.go
//
// Round state machine for one solving session.
// Responsibilities:
//   - Own the candidate set and replace it wholesale after each round.
//   - Ask the selector for the next guess (Selecting → AwaitingFeedback).
//   - Apply observed feedback (→ Filtering → Selecting | Terminal).
//   - Enforce the round budget.
//
// Notes:
//   - Invalid input aborts the round without consuming it; the driver re-prompts.
//   - All-correct feedback ends the session as solved even when the guess was
//     not a listed answer.
//   - A Session is not safe for concurrent use; drivers serialize access.

package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// Session tracks candidates and rounds for a single puzzle.
type Session struct {
	id        string
	mode      string
	sel       *solver.Selector
	maxRounds int
	opener    string

	candidates []string
	state      State
	outcome    Outcome
	suggestion string
	rounds     []Round

	startedAt  time.Time
	finishedAt time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithMaxRounds overrides the round budget. Values below 1 are ignored.
func WithMaxRounds(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.maxRounds = n
		}
	}
}

// WithOpener sets a precomputed first-round guess for the full answer set,
// skipping the most expensive scan of the session.
func WithOpener(word string) Option {
	return func(s *Session) { s.opener = word }
}

// WithID sets the session identifier instead of a random one.
func WithID(id string) Option {
	return func(s *Session) { s.id = id }
}

// WithMode labels the session for history ("play", "simulate", "api").
func WithMode(mode string) Option {
	return func(s *Session) { s.mode = mode }
}

// New starts a session in Selecting with every answer as a candidate.
func New(answers []string, sel *solver.Selector, opts ...Option) (*Session, error) {
	if len(answers) == 0 {
		return nil, &solver.EmptyDictionaryError{Name: "answer"}
	}
	if sel == nil {
		return nil, ErrNoSelector
	}
	s := &Session{
		id:         randomID(),
		mode:       "play",
		sel:        sel,
		maxRounds:  DefaultMaxRounds,
		candidates: slices.Clone(answers),
		state:      StateSelecting,
		outcome:    OutcomePlaying,
		startedAt:  time.Now().UTC(),
	}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

// Suggest returns the guess to play next. While awaiting feedback it keeps
// returning the same suggestion.
func (s *Session) Suggest() (string, error) {
	switch s.state {
	case StateTerminal:
		return "", ErrFinished
	case StateAwaitingFeedback:
		return s.suggestion, nil
	}

	guess := s.openerGuess()
	if guess == "" {
		var err error
		if guess, err = s.sel.Best(s.candidates); err != nil {
			return "", err
		}
	}
	s.suggest(guess)
	return guess, nil
}

// SuggestRanked is Suggest plus the n best-scoring guesses for the current
// candidates, computed in a single scan. The ranking is nil when n <= 0 or
// fewer than two candidates remain.
func (s *Session) SuggestRanked(n int) (string, []solver.Scored, error) {
	if s.state == StateTerminal {
		return "", nil, ErrFinished
	}
	if n <= 0 || len(s.candidates) < 2 {
		guess, err := s.Suggest()
		return guess, nil, err
	}

	ranked := s.sel.Rank(s.candidates, n)
	if s.state == StateAwaitingFeedback {
		return s.suggestion, ranked, nil
	}
	guess := s.openerGuess()
	if guess == "" {
		guess = ranked[0].Guess
	}
	s.suggest(guess)
	return guess, ranked, nil
}

func (s *Session) openerGuess() string {
	if len(s.rounds) == 0 {
		return s.opener
	}
	return ""
}

func (s *Session) suggest(guess string) {
	s.suggestion = guess
	s.state = StateAwaitingFeedback
}

// Apply narrows the candidates with the feedback observed for guess. The
// player may have tried a word other than the suggestion.
//
// Errors:
//   - ErrFinished: the session is terminal.
//   - solver.ErrInvalidWord / *solver.InvalidFeedbackError: nothing changes.
//   - *solver.NoCandidatesError: the session ends as no_candidates and keeps
//     the candidates it had before this round.
func (s *Session) Apply(guess string, fb solver.Feedback) (Round, error) {
	if s.state == StateTerminal {
		return Round{}, ErrFinished
	}
	guess = strings.ToLower(strings.TrimSpace(guess))

	prev := s.state
	s.state = StateFiltering
	filtered, err := solver.FilterCandidates(s.candidates, guess, fb)

	var nce *solver.NoCandidatesError
	if err != nil && !errors.As(err, &nce) {
		s.state = prev
		return Round{}, err
	}

	r := Round{
		N:        len(s.rounds) + 1,
		Guess:    guess,
		Feedback: fb.String(),
		Before:   len(s.candidates),
		After:    len(filtered),
	}
	if prev == StateAwaitingFeedback {
		r.Suggested = s.suggestion
	}
	s.rounds = append(s.rounds, r)
	s.suggestion = ""

	switch {
	case fb.Solved():
		if len(filtered) > 0 {
			s.candidates = filtered
		}
		s.finish(OutcomeSolved)
		return r, nil
	case nce != nil:
		s.finish(OutcomeNoCandidates)
		return r, err
	}

	s.candidates = filtered
	if len(s.rounds) >= s.maxRounds {
		s.finish(OutcomeOutOfTries)
	} else {
		s.state = StateSelecting
	}
	return r, nil
}

func (s *Session) finish(o Outcome) {
	s.state = StateTerminal
	s.outcome = o
	s.finishedAt = time.Now().UTC()
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// State returns the current state.
func (s *Session) State() State { return s.state }

// Outcome returns OutcomePlaying until the session is terminal.
func (s *Session) Outcome() Outcome { return s.outcome }

// Done reports whether the session is terminal.
func (s *Session) Done() bool { return s.state == StateTerminal }

// Suggestion returns the pending suggestion, or "" when not awaiting feedback.
func (s *Session) Suggestion() string { return s.suggestion }

// Candidates returns a copy of the remaining candidate answers.
func (s *Session) Candidates() []string { return slices.Clone(s.candidates) }

// Rounds returns a copy of the applied rounds.
func (s *Session) Rounds() []Round { return slices.Clone(s.rounds) }

// RoundsLeft returns how many guesses remain in the budget.
func (s *Session) RoundsLeft() int { return s.maxRounds - len(s.rounds) }

// Summary returns the history record for the session.
func (s *Session) Summary() Summary {
	return Summary{
		ID:         s.id,
		Mode:       s.mode,
		StartedAt:  s.startedAt,
		FinishedAt: s.finishedAt,
		Outcome:    s.outcome,
		Rounds:     s.Rounds(),
	}
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
