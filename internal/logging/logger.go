// Package logging provides a shared logger and log utilities to be used in
// all internal packages.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// L is the shared logger. Most call sites use the package-level helpers
// below; L exists for structured events.
var L = zerolog.New(consoleWriter(os.Stderr)).
	With().Timestamp().Logger().
	Level(zerolog.InfoLevel)

// SetLevel parses level and applies it to the shared logger. Accepted
// levels are error, warn, info, and debug.
func SetLevel(level string) error {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	L = L.Level(parsed)
	return nil
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// consoleWriter decorates log lines when stderr is a terminal. Otherwise
// output stays machine readable JSON.
func consoleWriter(out io.Writer) io.Writer {
	if !isTerminal() {
		return out
	}

	return zerolog.ConsoleWriter{
		Out:         out,
		TimeFormat:  time.Kitchen,
		FormatLevel: consoleFormatLevel,
	}
}

func Debugf(format string, args ...interface{}) {
	L.Debug().Msgf(format, args...)
}

func Infof(format string, args ...interface{}) {
	L.Info().Msgf(format, args...)
}

func Warnf(format string, args ...interface{}) {
	L.Warn().Msgf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	L.Error().Msgf(format, args...)
}
