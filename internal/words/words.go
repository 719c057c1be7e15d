// apps/go-solver/internal/words/words.go
//
// Word list loading for the solver.
//
// Responsibilities:
//   - Load answer and guess lists from files or fall back to embedded defaults.
//   - Normalize lists: trim, lowercase, keep only 5-letter a–z words, drop
//     duplicates while preserving file order.
//   - Build the guess dictionary as allowed ∪ answers (answers always guessable).
//   - Provide lookups and a fingerprint identifying the exact pair of lists.
//
// Resolution (Load):
//  1. answers and allowed paths set → read each file.
//  2. only allowed set → that file serves as both lists.
//  3. only answers set → answers from file, embedded allowed list.
//  4. neither → embedded answers.txt and allowed.txt.
//
// Dictionaries are plain values handed to the solver; nothing here is global.

package words

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// Dictionaries holds the guess and answer lists for one solver instance.
type Dictionaries struct {
	Guesses []string // allowed words followed by answers not already listed
	Answers []string // possible secrets, in file order

	guessSet  map[string]struct{}
	answerSet map[string]struct{}
}

// Load resolves and reads both lists. Empty paths fall back to the embedded
// defaults as described in the package comment.
func Load(answersPath, allowedPath string) (*Dictionaries, error) {
	var ansList, allowList []string
	var err error

	switch {
	case answersPath != "" && allowedPath != "":
		if ansList, err = ReadFile(answersPath); err != nil {
			return nil, err
		}
		if allowList, err = ReadFile(allowedPath); err != nil {
			return nil, err
		}

	case allowedPath != "":
		if allowList, err = ReadFile(allowedPath); err != nil {
			return nil, err
		}
		ansList = allowList

	case answersPath != "":
		if ansList, err = ReadFile(answersPath); err != nil {
			return nil, err
		}
		if allowList, err = readEmbedded(assets.AllowedFile); err != nil {
			return nil, err
		}

	default:
		if ansList, err = readEmbedded(assets.AnswersFile); err != nil {
			return nil, err
		}
		if allowList, err = readEmbedded(assets.AllowedFile); err != nil {
			return nil, err
		}
	}
	return FromLists(ansList, allowList)
}

// FromLists normalizes raw lists and builds Dictionaries. Either list ending
// up empty is a *solver.EmptyDictionaryError.
func FromLists(answers, allowed []string) (*Dictionaries, error) {
	d := &Dictionaries{
		Answers:   normalize(answers),
		answerSet: make(map[string]struct{}),
		guessSet:  make(map[string]struct{}),
	}
	if len(d.Answers) == 0 {
		return nil, &solver.EmptyDictionaryError{Name: "answer"}
	}
	for _, w := range d.Answers {
		d.answerSet[w] = struct{}{}
	}

	guesses := append(normalize(allowed), d.Answers...)
	d.Guesses = make([]string, 0, len(guesses))
	for _, w := range guesses {
		if _, dup := d.guessSet[w]; dup {
			continue
		}
		d.guessSet[w] = struct{}{}
		d.Guesses = append(d.Guesses, w)
	}
	return d, nil
}

// ReadFile loads one word per line from path.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()
	out, err := ReadList(f)
	if err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	return out, nil
}

// ReadList reads one word per line. Blank lines and lines starting with "#"
// are skipped; remaining lines are trimmed and lowercased. Lines that are not
// 5 letters are dropped.
func ReadList(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		if w := strings.ToLower(s); solver.ValidWord(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

func readEmbedded(name string) ([]string, error) {
	rc, err := assets.Open(name)
	if err != nil {
		return nil, fmt.Errorf("words: embedded %s: %w", name, err)
	}
	defer rc.Close()
	return ReadList(rc)
}

// normalize lowercases, validates, and dedupes a list, keeping first occurrences.
func normalize(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, raw := range list {
		w := strings.ToLower(strings.TrimSpace(raw))
		if !solver.ValidWord(w) {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// Contains reports whether w is in the guess dictionary.
func (d *Dictionaries) Contains(w string) bool {
	_, ok := d.guessSet[strings.ToLower(w)]
	return ok
}

// IsAnswer reports whether w is in the answer dictionary.
func (d *Dictionaries) IsAnswer(w string) bool {
	_, ok := d.answerSet[strings.ToLower(w)]
	return ok
}

// Stats returns the sizes of both dictionaries: (answers, guesses).
func (d *Dictionaries) Stats() (answersCount int, guessesCount int) {
	return len(d.Answers), len(d.Guesses)
}

// Fingerprint identifies the exact ordered pair of lists. Guess order matters
// because it decides ties, so reordering either list changes the fingerprint.
func (d *Dictionaries) Fingerprint() uint64 {
	h := xxhash.New()
	for _, w := range d.Answers {
		_, _ = h.WriteString(w)
	}
	_, _ = h.WriteString("|")
	for _, w := range d.Guesses {
		_, _ = h.WriteString(w)
	}
	return h.Sum64()
}
