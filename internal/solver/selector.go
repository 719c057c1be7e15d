// apps/go-solver/internal/solver/selector.go
//
// Guess selection by expected information.
// Responsibilities:
//   - Partition a candidate set by the feedback a guess would produce.
//   - Score the partition by Shannon entropy (bits).
//   - Scan the guess dictionary in order and pick the highest-scoring guess.
//
// Notes:
//   - Each round is recomputed from scratch; nothing is carried across rounds.
//   - Ties keep the first maximum found in dictionary order.
//   - Cost is O(|guesses| × |candidates| × WordLength) per scan.

package solver

import (
	"math"
	"sort"
)

// ExpectedInformation returns Σ p·(−log2 p) over the distribution, in bits.
// Terms are summed smallest first so equal partitions score identically.
func ExpectedInformation(d Distribution) float64 {
	ps := make([]float64, 0, len(d))
	for _, p := range d {
		if p > 0 {
			ps = append(ps, p)
		}
	}
	sort.Float64s(ps)
	var bits float64
	for _, p := range ps {
		bits -= p * math.Log2(p)
	}
	return bits
}

// FeedbackDistribution tallies the feedback guess would produce against each
// candidate and normalizes the counts into probabilities.
func FeedbackDistribution(candidates []string, guess string) Distribution {
	counts := make(map[Feedback]int)
	tally(counts, candidates, guess)
	d := make(Distribution, len(counts))
	n := float64(len(candidates))
	for fb, c := range counts {
		d[fb] = float64(c) / n
	}
	return d
}

// SelectBestGuess returns the guess with the highest expected information
// over candidates. A single remaining candidate is returned without scanning.
func SelectBestGuess(candidates, guesses []string) (string, error) {
	sel, err := NewSelector(guesses)
	if err != nil {
		return "", err
	}
	return sel.Best(candidates)
}

// Selector scans a fixed guess dictionary. It holds no per-round state, so one
// Selector serves every round of every session built on the same dictionary.
type Selector struct {
	guesses  []string
	progress func(done, total int)
}

// Option configures a Selector.
type Option func(*Selector)

// WithProgress registers fn to be called as the scan advances. total is the
// guess dictionary size; the final call has done == total.
func WithProgress(fn func(done, total int)) Option {
	return func(s *Selector) { s.progress = fn }
}

// NewSelector builds a Selector over guesses, which must not be empty.
func NewSelector(guesses []string, opts ...Option) (*Selector, error) {
	if len(guesses) == 0 {
		return nil, &EmptyDictionaryError{Name: "guess"}
	}
	s := &Selector{guesses: guesses}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

// Guesses returns the dictionary the selector scans.
func (s *Selector) Guesses() []string { return s.guesses }

// Best returns the first guess reaching the maximum expected information.
// The leader starts at (first guess, 0 bits) and only a strictly greater
// score replaces it.
func (s *Selector) Best(candidates []string) (string, error) {
	switch len(candidates) {
	case 0:
		return "", &NoCandidatesError{}
	case 1:
		return candidates[0], nil
	}

	best, bestBits := s.guesses[0], 0.0
	s.scan(candidates, func(guess string, bits float64) {
		if bits > bestBits {
			best, bestBits = guess, bits
		}
	})
	return best, nil
}

// Rank returns the n highest-scoring guesses, best first. Equal scores keep
// dictionary order, so for two or more candidates Rank(c, 1)[0] is the guess
// Best returns.
func (s *Selector) Rank(candidates []string, n int) []Scored {
	if n <= 0 || len(candidates) == 0 {
		return nil
	}
	all := make([]Scored, 0, len(s.guesses))
	s.scan(candidates, func(guess string, bits float64) {
		all = append(all, Scored{Guess: guess, Bits: bits})
	})
	sort.SliceStable(all, func(i, j int) bool { return all[i].Bits > all[j].Bits })
	if n > len(all) {
		n = len(all)
	}
	return all[:n:n]
}

// scan scores every guess in dictionary order. Buffers are reused across
// guesses; the per-guess result is bit-for-bit ExpectedInformation(FeedbackDistribution(...)).
func (s *Selector) scan(candidates []string, visit func(guess string, bits float64)) {
	total := len(s.guesses)
	n := float64(len(candidates))
	counts := make(map[Feedback]int, 243)
	sizes := make([]int, 0, 243)
	for i, g := range s.guesses {
		clear(counts)
		tally(counts, candidates, g)
		sizes = sizes[:0]
		for _, c := range counts {
			sizes = append(sizes, c)
		}
		sort.Ints(sizes)
		var bits float64
		for _, c := range sizes {
			p := float64(c) / n
			bits -= p * math.Log2(p)
		}
		visit(g, bits)
		if s.progress != nil {
			s.progress(i+1, total)
		}
	}
}

func tally(counts map[Feedback]int, candidates []string, guess string) {
	for _, w := range candidates {
		counts[ComputeFeedback(w, guess)]++
	}
}
