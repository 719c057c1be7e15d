// apps/go-solver/internal/solver/feedback.go
//
// Feedback engine: derives feedback for a (secret, guess) pair and narrows a
// candidate set given an observed (guess, feedback) pair.
//
// Scoring uses the single-pass rule: a non-matching guess letter is marked
// present whenever it occurs anywhere in the secret. Unlike the two-pass
// Wordle scorer it does not count letter frequency, so a guess with a
// repeated letter can get two present marks for a single occurrence in the
// secret. Filtering applies the same rule (an absent mark rules out the
// letter everywhere), which keeps the two halves consistent with each other.

package solver

import "strings"

// ComputeFeedback compares guess against secret. Both must be valid words.
func ComputeFeedback(secret, guess string) Feedback {
	var fb Feedback
	for i := 0; i < WordLength; i++ {
		switch {
		case guess[i] == secret[i]:
			fb[i] = MarkCorrect
		case strings.IndexByte(secret, guess[i]) >= 0:
			fb[i] = MarkPresent
		default:
			fb[i] = MarkAbsent
		}
	}
	return fb
}

// ParseFeedback reads the 5-symbol wire form ("_", "Y", "G" per position).
// Surrounding whitespace is ignored; anything else is an *InvalidFeedbackError.
func ParseFeedback(s string) (Feedback, error) {
	var fb Feedback
	s = strings.TrimSpace(s)
	if len(s) != WordLength {
		return fb, &InvalidFeedbackError{Input: s, Position: -1}
	}
	for i := 0; i < WordLength; i++ {
		m := Mark(s[i])
		if !m.Valid() {
			return fb, &InvalidFeedbackError{Input: s, Position: i, Symbol: s[i]}
		}
		fb[i] = m
	}
	return fb, nil
}

// FilterCandidates returns the candidates consistent with guess having
// produced fb. The input slice is never modified.
//
// Per position i with guess letter L:
//   - absent:  keep words not containing L anywhere.
//   - present: keep words containing L but not at i.
//   - correct: keep words with L at i.
//
// An unrecognized mark yields *InvalidFeedbackError and an empty result
// yields *NoCandidatesError, so callers can tell the two apart.
func FilterCandidates(candidates []string, guess string, fb Feedback) ([]string, error) {
	if !ValidWord(guess) {
		return nil, ErrInvalidWord
	}
	for i, m := range fb {
		if !m.Valid() {
			return nil, &InvalidFeedbackError{Input: fb.String(), Position: i, Symbol: byte(m)}
		}
	}

	out := make([]string, 0, len(candidates))
	for _, w := range candidates {
		if consistent(w, guess, fb) {
			out = append(out, w)
		}
	}
	if len(out) == 0 {
		return nil, &NoCandidatesError{Guess: guess, Feedback: fb}
	}
	return out, nil
}

// consistent applies every per-position predicate to w.
func consistent(w, guess string, fb Feedback) bool {
	if len(w) != WordLength {
		return false
	}
	for i := 0; i < WordLength; i++ {
		l := guess[i]
		switch fb[i] {
		case MarkAbsent:
			if strings.IndexByte(w, l) >= 0 {
				return false
			}
		case MarkPresent:
			if w[i] == l || strings.IndexByte(w, l) < 0 {
				return false
			}
		case MarkCorrect:
			if w[i] != l {
				return false
			}
		}
	}
	return true
}
