package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/history"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

const (
	// progressMin is the dictionary size from which scans show a progress bar.
	progressMin      = 500
	progressThrottle = 65 * time.Millisecond
)

// runtime is what every subcommand shares after PersistentPreRunE.
type runtime struct {
	cfg   config.Config
	dicts *words.Dictionaries
	hist  *history.DB // nil when no database is configured
}

var rt runtime

var rootCmd = &cobra.Command{
	Use:   "wordle-solver",
	Short: "Information-gain Wordle solver",
	Long: "wordle-solver suggests the guess that maximizes expected information, " +
		"narrows the candidates with the feedback you observed, and repeats.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE: runPlay,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	f := rootCmd.PersistentFlags()
	f.String("answers", "", "Path to the answer list (overrides WORDS_ANSWERS_FILE)")
	f.String("allowed", "", "Path to the allowed-guess list (overrides WORDS_ALLOWED_FILE)")
	f.String("db", "", "Path to the SQLite history database (overrides SOLVER_DB)")
	f.String("log-level", "", "Log level: debug, info, warn, error (overrides LOG_LEVEL)")
	f.Int("max-rounds", 0, "Round budget (overrides SOLVER_MAX_ROUNDS)")

	cobra.OnFinalize(closeHistory)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(feedbackCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(statsCmd)
}

// setup loads config, applies flag overrides, configures logging, and loads
// the dictionaries and the optional history database.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg)
	config.SetupLogging(cfg, os.Stderr)

	dicts, err := words.Load(cfg.AnswersFile, cfg.AllowedFile)
	if err != nil {
		return fmt.Errorf("load word lists: %w", err)
	}
	a, g := dicts.Stats()
	log.Debug().Int("answers", a).Int("guesses", g).Msg("dictionaries loaded")

	rt = runtime{cfg: cfg, dicts: dicts}
	if cfg.DBPath != "" {
		if rt.hist, err = history.Open(cfg.DBPath); err != nil {
			return fmt.Errorf("open history: %w", err)
		}
	}
	return nil
}

// closeHistory runs after every command, including failed ones.
func closeHistory() {
	if rt.hist == nil {
		return
	}
	if err := rt.hist.Close(); err != nil {
		log.Warn().Err(err).Msg("close history")
	}
	rt.hist = nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if p, _ := f.GetString("answers"); p != "" {
		cfg.AnswersFile = p
	}
	if p, _ := f.GetString("allowed"); p != "" {
		cfg.AllowedFile = p
	}
	if p, _ := f.GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if l, _ := f.GetString("log-level"); l != "" {
		cfg.LogLevel = l
	}
	if n, _ := f.GetInt("max-rounds"); n > 0 {
		cfg.MaxRounds = n
	}
}

// newSelector builds a selector over the guess dictionary, with a stderr
// progress bar per scan when showProgress is set and the dictionary is large.
func newSelector(showProgress bool) (*solver.Selector, error) {
	var opts []solver.Option
	if showProgress && len(rt.dicts.Guesses) >= progressMin {
		opts = append(opts, solver.WithProgress(scanProgress()))
	}
	return solver.NewSelector(rt.dicts.Guesses, opts...)
}

func scanProgress() func(done, total int) {
	var bar *progressbar.ProgressBar
	return func(done, total int) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionSetDescription("scoring guesses"),
				progressbar.OptionClearOnFinish(),
				progressbar.OptionThrottle(progressThrottle),
			)
		}
		_ = bar.Set(done)
		if done == total {
			_ = bar.Finish()
			bar = nil
		}
	}
}
