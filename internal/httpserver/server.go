// apps/go-solver/internal/httpserver/server.go
//
// HTTP server wiring for the solver API.
// Responsibilities:
//   - Router + middleware (JSON, request IDs, panic recovery, timeouts, logging).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Stateless solver endpoints under /solver: feedback, filter, best.
//   - Session endpoints under /solver/sessions backed by the in-memory store.
//   - Optional bearer-token auth on /solver/* when a JWT secret is configured.
//
// Notes:
//   - A Session is not safe for concurrent use. Requests on one session are
//     serialized by a lock striped over session IDs, so a long scan in one
//     session only blocks sessions that share its stripe.
//   - Finished sessions are written to history when a history DB is configured.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/history"
	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

const (
	// maxTop bounds the ranked list a client may request.
	maxTop = 50
	// lockStripes is the number of session locks.
	lockStripes = 64
)

// Options carries the server's collaborators.
type Options struct {
	Dicts     *words.Dictionaries
	Selector  *solver.Selector
	Store     store.Store
	History   *history.DB // optional
	Opener    string      // optional precomputed first guess
	MaxRounds int
	JWTSecret string // enables auth on /solver/* when set
}

// Server bundles router, dictionaries, selector and session store.
type Server struct {
	r     *chi.Mux
	opts  Options
	locks [lockStripes]sync.Mutex // per-session serialization, striped by ID
}

// New constructs a Server, installs middleware, and registers routes.
func New(opts Options) *Server {
	s := &Server{r: chi.NewRouter(), opts: opts}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(30 * time.Second))
	s.r.Use(requestLogger)
	s.r.Use(jsonContentType)

	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service": "wordle-solver",
			"endpoints": []string{
				"/health",
				"POST /solver/feedback", "POST /solver/filter", "POST /solver/best",
				"POST /solver/sessions", "GET /solver/sessions/{id}", "POST /solver/sessions/{id}/rounds",
			},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := s.opts.Dicts.Stats()
		writeJSON(w, http.StatusOK, map[string]int{"answers": a, "guesses": g, "sessions": s.opts.Store.Len()})
	})

	s.r.Route("/solver", func(r chi.Router) {
		if opts.JWTSecret != "" {
			r.Use(requireAuth(opts.JWTSecret))
		}
		r.Post("/feedback", s.handleFeedback)
		r.Post("/filter", s.handleFilter)
		r.Post("/best", s.handleBest)
		r.Post("/sessions", s.handleNewSession)
		r.Get("/sessions/{id}", s.handleGetSession)
		r.Post("/sessions/{id}/rounds", s.handleRound)
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", r.URL.Path)
	})
	return s
}

// lockFor returns the mutex guarding session id.
func (s *Server) lockFor(id string) *sync.Mutex {
	return &s.locks[xxhash.Sum64String(id)%lockStripes]
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// requestLogger logs one line per request with status and latency.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Str("request_id", chimw.GetReqID(r.Context())).
			Msg("request")
	})
}

// ------------------------------- helpers -----------------------------------

type errorRes struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	writeJSON(w, status, errorRes{Error: code, Detail: detail})
}

// writeSolverError maps solver and session errors onto status codes.
func writeSolverError(w http.ResponseWriter, err error) {
	var (
		ife *solver.InvalidFeedbackError
		nce *solver.NoCandidatesError
		ede *solver.EmptyDictionaryError
	)
	switch {
	case errors.As(err, &ife):
		writeError(w, http.StatusBadRequest, "invalid_feedback", err.Error())
	case errors.Is(err, solver.ErrInvalidWord):
		writeError(w, http.StatusBadRequest, "invalid_word", err.Error())
	case errors.As(err, &nce):
		writeError(w, http.StatusUnprocessableEntity, "no_candidates", err.Error())
	case errors.As(err, &ede):
		writeError(w, http.StatusUnprocessableEntity, "empty_dictionary", err.Error())
	case errors.Is(err, session.ErrFinished):
		writeError(w, http.StatusConflict, "finished", err.Error())
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	default:
		log.Error().Err(err).Msg("unexpected solver error")
		writeError(w, http.StatusInternalServerError, "internal", "")
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return false
	}
	return true
}
