// apps/go-solver/internal/solver/types.go
//
// Core type definitions for the solver.
// Defines:
//   - Mark: per-letter verdict of a guess (correct/present/absent).
//   - Feedback: the fixed-size pattern of marks for one guess.
//   - Distribution: feedback pattern → probability over a candidate set.
//   - Scored: a guess paired with its expected information.

package solver

import "strings"

// WordLength is the number of letters in every word the solver handles.
const WordLength = 5

// Mark is the verdict for a single letter position, stored as its wire symbol.
//   - '_': letter is absent from the secret.
//   - 'Y': letter is in the secret but at another position.
//   - 'G': letter is in the correct position.
type Mark byte

const (
	MarkAbsent  Mark = '_'
	MarkPresent Mark = 'Y'
	MarkCorrect Mark = 'G'
)

// Valid reports whether m is one of the three recognized symbols.
func (m Mark) Valid() bool {
	return m == MarkAbsent || m == MarkPresent || m == MarkCorrect
}

// Feedback is the per-position result of comparing a guess to a secret.
// It is an array so it can key a map directly.
type Feedback [WordLength]Mark

// String renders the feedback in its 5-symbol wire form, e.g. "__YYG".
func (f Feedback) String() string {
	var b strings.Builder
	b.Grow(WordLength)
	for _, m := range f {
		b.WriteByte(byte(m))
	}
	return b.String()
}

// Solved reports whether every position is correct.
func (f Feedback) Solved() bool {
	for _, m := range f {
		if m != MarkCorrect {
			return false
		}
	}
	return true
}

// Distribution maps each observed feedback pattern to the fraction of the
// candidate set that produces it. It never holds zero-probability entries.
type Distribution map[Feedback]float64

// Scored pairs a guess with the expected information (bits) it yields.
type Scored struct {
	Guess string  `json:"guess"`
	Bits  float64 `json:"bits"`
}

// ValidWord reports whether w is exactly WordLength lowercase ASCII letters.
func ValidWord(w string) bool {
	if len(w) != WordLength {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}
