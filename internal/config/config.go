// apps/go-solver/internal/config/config.go
//
// Process configuration.
// Values come from the environment, optionally seeded from a .env file in the
// working directory. CLI flags override them after Load.

package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds every tunable of the solver binary.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"` // console | json

	AnswersFile string `env:"WORDS_ANSWERS_FILE"`
	AllowedFile string `env:"WORDS_ALLOWED_FILE"`

	DBPath    string `env:"SOLVER_DB"` // history disabled when empty
	MaxRounds int    `env:"SOLVER_MAX_ROUNDS" envDefault:"6"`
	Top       int    `env:"SOLVER_TOP" envDefault:"5"`

	Port           string `env:"PORT" envDefault:"5175"`
	JWTSecret      string `env:"SOLVER_JWT_SECRET"`
	JWTExpiresDays int    `env:"SOLVER_JWT_EXPIRES_DAYS" envDefault:"14"`
	MaxSessions    int    `env:"SOLVER_MAX_SESSIONS" envDefault:"1000"`

	DailySalt string `env:"DAILY_SALT" envDefault:"local_dev_salt"`
}

// Load reads .env (if present) and then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// SetupLogging configures the global zerolog logger. Console output goes to w
// in human-readable form; json writes raw events.
func SetupLogging(cfg Config, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	if strings.EqualFold(cfg.LogFormat, "json") {
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"})
	}

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || cfg.LogLevel == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}
