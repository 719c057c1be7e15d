package main

import (
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("wordle-solver exited")
	}
}
