package cli

import (
	"os"

	"github.com/rs/zerolog"
)

// newLogger returns a console logger writing to stderr so report output
// on stdout stays clean.
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
