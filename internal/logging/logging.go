package logging

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Init creates and sets the package-level default zerolog logger.
// When outputIsStdout is true, logs are JSON on stderr (avoids mixing with
// the JSON documents on stdout). Otherwise a console writer on stderr is
// used for human readability.
func Init(outputIsStdout bool, level zerolog.Level) {
	var logger zerolog.Logger
	if outputIsStdout {
		logger = zerolog.New(os.Stderr)
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	zerolog.SetGlobalLevel(level)
	log = logger.With().Timestamp().Logger()
}

var log = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Logger returns the configured logger. The zero value logs JSON to stderr,
// so packages may log before Init runs.
func Logger() zerolog.Logger {
	return log
}

// ParseLevel converts a string ("debug", "info", "warn", "error") to a
// zerolog.Level. Unknown strings default to InfoLevel.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
