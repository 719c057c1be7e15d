package cmd

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// opener returns the best first guess for the full answer set. The scan is
// cached in the history database keyed by the dictionary fingerprint.
func opener(ctx context.Context, sel *solver.Selector) string {
	if len(rt.dicts.Answers) < 2 {
		return ""
	}
	fp := rt.dicts.Fingerprint()
	if rt.hist != nil {
		sc, ok, err := rt.hist.Opener(ctx, fp)
		switch {
		case err != nil:
			log.Warn().Err(err).Msg("read opener cache")
		case ok:
			log.Debug().Str("guess", sc.Guess).Float64("bits", sc.Bits).Msg("opener from cache")
			return sc.Guess
		}
	}

	sc := sel.Rank(rt.dicts.Answers, 1)[0]
	log.Info().Str("guess", sc.Guess).Float64("bits", sc.Bits).Msg("opener computed")
	if rt.hist != nil {
		if err := rt.hist.SaveOpener(ctx, fp, sc); err != nil {
			log.Warn().Err(err).Msg("save opener")
		}
	}
	return sc.Guess
}

// record writes a finished session to history when a database is configured.
func record(ctx context.Context, sess *session.Session) {
	if rt.hist == nil || !sess.Done() {
		return
	}
	if err := rt.hist.RecordSession(ctx, sess.Summary()); err != nil {
		log.Warn().Err(err).Str("session", sess.ID()).Msg("record session")
	}
}
