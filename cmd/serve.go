package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the JSON HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		port := rt.cfg.Port
		if p, _ := cmd.Flags().GetString("port"); p != "" {
			port = p
		}

		sel, err := newSelector(false)
		if err != nil {
			return err
		}
		srv := httpserver.New(httpserver.Options{
			Dicts:     rt.dicts,
			Selector:  sel,
			Store:     store.NewMemoryStore(rt.cfg.MaxSessions),
			History:   rt.hist,
			Opener:    opener(cmd.Context(), sel),
			MaxRounds: rt.cfg.MaxRounds,
			JWTSecret: rt.cfg.JWTSecret,
		})

		log.Info().
			Str("port", port).
			Bool("auth", rt.cfg.JWTSecret != "").
			Bool("history", rt.hist != nil).
			Msg("starting go-solver")
		return srv.Start(":" + port)
	},
}

func init() {
	serveCmd.Flags().String("port", "", "Listen port (overrides PORT)")
}
