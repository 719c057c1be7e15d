// apps/go-solver/internal/httpserver/routes_sessions.go
//
// Session endpoints:
//   - POST /solver/sessions              → start a session, returns first suggestion
//   - GET  /solver/sessions/{id}         → current view
//   - POST /solver/sessions/{id}/rounds  → apply {guess, feedback}, returns next view
//
// Sessions live in memory only. Finished sessions are recorded to history
// when configured.

package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// remainingLimit caps how many candidate words a view lists.
const remainingLimit = 50

type sessionView struct {
	ID         string          `json:"id"`
	State      session.State   `json:"state"`
	Outcome    session.Outcome `json:"outcome"`
	Suggestion string          `json:"suggestion,omitempty"`
	Candidates int             `json:"candidates"`
	Remaining  []string        `json:"remaining,omitempty"`
	RoundsLeft int             `json:"roundsLeft"`
	Rounds     []session.Round `json:"rounds"`
}

func viewOf(s *session.Session) sessionView {
	c := s.Candidates()
	v := sessionView{
		ID:         s.ID(),
		State:      s.State(),
		Outcome:    s.Outcome(),
		Suggestion: s.Suggestion(),
		Candidates: len(c),
		RoundsLeft: s.RoundsLeft(),
		Rounds:     s.Rounds(),
	}
	if len(c) <= remainingLimit {
		v.Remaining = c
	}
	return v
}

func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	sess, err := session.New(s.opts.Dicts.Answers, s.opts.Selector,
		session.WithMode("api"),
		session.WithMaxRounds(s.opts.MaxRounds),
		session.WithOpener(s.opts.Opener),
	)
	if err != nil {
		writeSolverError(w, err)
		return
	}

	mu := s.lockFor(sess.ID())
	mu.Lock()
	defer mu.Unlock()
	if _, err := sess.Suggest(); err != nil {
		writeSolverError(w, err)
		return
	}
	if err := s.opts.Store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed", "")
		return
	}
	log.Info().Str("session", sess.ID()).Str("subject", subject(r)).Msg("session started")
	writeJSON(w, http.StatusCreated, viewOf(sess))
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.opts.Store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeSolverError(w, err)
		return
	}
	mu := s.lockFor(sess.ID())
	mu.Lock()
	defer mu.Unlock()
	writeJSON(w, http.StatusOK, viewOf(sess))
}

type roundReq struct {
	Guess    string `json:"guess"`
	Feedback string `json:"feedback"`
}

func (s *Server) handleRound(w http.ResponseWriter, r *http.Request) {
	var req roundReq
	if !decode(w, r, &req) {
		return
	}
	sess, err := s.opts.Store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeSolverError(w, err)
		return
	}
	fb, err := solver.ParseFeedback(req.Feedback)
	if err != nil {
		writeSolverError(w, err)
		return
	}

	mu := s.lockFor(sess.ID())
	mu.Lock()
	defer mu.Unlock()

	_, err = sess.Apply(req.Guess, fb)
	var nce *solver.NoCandidatesError
	if err != nil && !errors.As(err, &nce) {
		writeSolverError(w, err)
		return
	}

	if sess.Done() {
		s.record(r.Context(), sess)
	} else if _, serr := sess.Suggest(); serr != nil {
		writeSolverError(w, serr)
		return
	}
	if err := s.opts.Store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
	}

	if nce != nil {
		writeSolverError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(sess))
}

// record writes a finished session to history, best effort.
func (s *Server) record(ctx context.Context, sess *session.Session) {
	log.Info().
		Str("session", sess.ID()).
		Str("outcome", string(sess.Outcome())).
		Int("rounds", len(sess.Rounds())).
		Msg("session finished")
	if s.opts.History == nil {
		return
	}
	if err := s.opts.History.RecordSession(ctx, sess.Summary()); err != nil {
		log.Warn().Err(err).Str("session", sess.ID()).Msg("record session")
	}
}
