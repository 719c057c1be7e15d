// apps/go-solver/internal/httpserver/routes_solver.go
//
// Stateless solver endpoints:
//   - POST /solver/feedback → feedback a guess would get against a secret
//   - POST /solver/filter   → candidates consistent with (guess, feedback)
//   - POST /solver/best     → best guess (and optional ranking) for candidates
//
// Omitted candidates default to the full answer dictionary.

package httpserver

import (
	"net/http"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

type feedbackReq struct {
	Secret string `json:"secret"`
	Guess  string `json:"guess"`
}

type feedbackRes struct {
	Feedback string `json:"feedback"`
}

func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackReq
	if !decode(w, r, &req) {
		return
	}
	secret, guess := normalizeWord(req.Secret), normalizeWord(req.Guess)
	if !solver.ValidWord(secret) || !solver.ValidWord(guess) {
		writeSolverError(w, solver.ErrInvalidWord)
		return
	}
	writeJSON(w, http.StatusOK, feedbackRes{Feedback: solver.ComputeFeedback(secret, guess).String()})
}

type filterReq struct {
	Candidates []string `json:"candidates"`
	Guess      string   `json:"guess"`
	Feedback   string   `json:"feedback"`
}

type filterRes struct {
	Count      int      `json:"count"`
	Candidates []string `json:"candidates"`
}

func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	var req filterReq
	if !decode(w, r, &req) {
		return
	}
	candidates, ok := s.candidates(w, req.Candidates)
	if !ok {
		return
	}
	fb, err := solver.ParseFeedback(req.Feedback)
	if err != nil {
		writeSolverError(w, err)
		return
	}
	out, err := solver.FilterCandidates(candidates, normalizeWord(req.Guess), fb)
	if err != nil {
		writeSolverError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, filterRes{Count: len(out), Candidates: out})
}

type bestReq struct {
	Candidates []string `json:"candidates"`
	Top        int      `json:"top"`
}

type bestRes struct {
	Guess      string          `json:"guess"`
	Candidates int             `json:"candidates"`
	Ranked     []solver.Scored `json:"ranked,omitempty"`
}

func (s *Server) handleBest(w http.ResponseWriter, r *http.Request) {
	var req bestReq
	if !decode(w, r, &req) {
		return
	}
	candidates, ok := s.candidates(w, req.Candidates)
	if !ok {
		return
	}

	res := bestRes{Candidates: len(candidates)}
	if len(req.Candidates) == 0 && s.opts.Opener != "" && req.Top <= 0 {
		res.Guess = s.opts.Opener
		writeJSON(w, http.StatusOK, res)
		return
	}

	// One scan either way: Rank's head is Best's pick for two or more candidates.
	if req.Top > 0 && len(candidates) > 1 {
		res.Ranked = s.opts.Selector.Rank(candidates, min(req.Top, maxTop))
		res.Guess = res.Ranked[0].Guess
		writeJSON(w, http.StatusOK, res)
		return
	}
	guess, err := s.opts.Selector.Best(candidates)
	if err != nil {
		writeSolverError(w, err)
		return
	}
	res.Guess = guess
	writeJSON(w, http.StatusOK, res)
}

// candidates validates client-supplied candidates, or returns the answer
// dictionary when none were given. Every candidate must be an answer;
// duplicates are dropped keeping the first occurrence.
func (s *Server) candidates(w http.ResponseWriter, in []string) ([]string, bool) {
	if len(in) == 0 {
		return s.opts.Dicts.Answers, true
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, raw := range in {
		c := normalizeWord(raw)
		if !solver.ValidWord(c) || !s.opts.Dicts.IsAnswer(c) {
			writeError(w, http.StatusBadRequest, "invalid_word", "candidate "+raw+" is not in the answer list")
			return nil, false
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out, true
}

func normalizeWord(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}
