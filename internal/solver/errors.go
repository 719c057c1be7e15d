package solver

import (
	"errors"
	"fmt"
)

// ErrInvalidWord indicates a guess or secret that is not WordLength
// lowercase letters.
var ErrInvalidWord = errors.New("word must be 5 lowercase letters")

// InvalidFeedbackError reports an unrecognized feedback symbol or a pattern of
// the wrong length. Position is -1 for a length mismatch.
type InvalidFeedbackError struct {
	Input    string
	Position int
	Symbol   byte
}

func (e *InvalidFeedbackError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("invalid feedback %q: want %d symbols from _, Y, G", e.Input, WordLength)
	}
	return fmt.Sprintf("invalid feedback %q: unknown symbol %q at position %d (use _, Y, G)",
		e.Input, e.Symbol, e.Position+1)
}

// NoCandidatesError indicates that no candidate answer is consistent with the
// observed feedback. Usually a typo in the feedback or a secret outside the
// answer dictionary.
type NoCandidatesError struct {
	Guess    string
	Feedback Feedback
}

func (e *NoCandidatesError) Error() string {
	if e.Guess == "" {
		return "no candidate answers left"
	}
	return fmt.Sprintf("no candidate answers consistent with %s → %s", e.Guess, e.Feedback)
}

// EmptyDictionaryError indicates that a required word list has no entries.
type EmptyDictionaryError struct {
	Name string // "guess" or "answer"
}

func (e *EmptyDictionaryError) Error() string {
	return fmt.Sprintf("%s dictionary is empty", e.Name)
}
