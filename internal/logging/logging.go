// Package logging sets up the global zerolog logger used throughout the
// streaming core, following the pattern cmd/hydra's main.go uses:
// parse a level, set it globally, and swap in a console writer unless
// structured JSON output was requested.
package logging

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global zerolog logger. levelName is parsed with
// zerolog.ParseLevel and falls back to Info on an empty or unrecognized
// value. When json is false (the default for interactive use) output is
// rendered through a ConsoleWriter; set json to true for machine-parsed
// log aggregation.
func Setup(levelName string, json bool) {
	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if json {
		log.Logger = log.Output(os.Stderr)
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}
