package config

import (
	"bytes"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"LOG_LEVEL", "SOLVER_MAX_ROUNDS", "SOLVER_TOP", "PORT", "SOLVER_JWT_EXPIRES_DAYS", "SOLVER_DB"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 6, cfg.MaxRounds)
	assert.Equal(t, 5, cfg.Top)
	assert.Equal(t, "5175", cfg.Port)
	assert.Equal(t, 14, cfg.JWTExpiresDays)
	assert.Empty(t, cfg.DBPath)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SOLVER_MAX_ROUNDS", "8")
	t.Setenv("SOLVER_DB", "/tmp/solver.db")
	t.Setenv("WORDS_ANSWERS_FILE", "answers.txt")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.MaxRounds)
	assert.Equal(t, "/tmp/solver.db", cfg.DBPath)
	assert.Equal(t, "answers.txt", cfg.AnswersFile)
}

func TestLoad_BadInt(t *testing.T) {
	t.Setenv("SOLVER_MAX_ROUNDS", "six")
	_, err := Load()
	assert.Error(t, err)
}

func TestSetupLogging(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	SetupLogging(Config{LogLevel: "warn", LogFormat: "json"}, &buf)
	log.Info().Msg("hidden")
	log.Warn().Str("k", "v").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"k":"v"`)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	SetupLogging(Config{LogLevel: "nonsense"}, &buf)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
