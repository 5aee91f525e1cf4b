// Package rtlog provides the structured logger the CLI uses for progress
// and diagnostic output.
package rtlog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the minimal logging surface the CLI depends on; satisfied by
// *zerolog.Logger's wrapper below. Info and Error return *zerolog.Event,
// so any implementation depends on zerolog.
type Logger interface {
	Printf(format string, args ...interface{})
	Info() *zerolog.Event
	Error(err error) *zerolog.Event
}

// zlogger adapts a zerolog.Logger to Logger, adding a printf-style escape
// hatch for call sites ported from the teacher's Logger interface.
type zlogger struct {
	zerolog.Logger
}

// New creates a console-pretty-printed logger writing to w at the given
// level, in the teacher's NewDefaultLogger style.
func New(w io.Writer, level zerolog.Level) Logger {
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	l := zerolog.New(console).Level(level).With().Timestamp().Logger()
	return &zlogger{Logger: l}
}

// NewDefault creates a logger at info level writing to stderr; it is the
// logger the CLI uses.
func NewDefault() Logger {
	return New(os.Stderr, zerolog.InfoLevel)
}

// Printf implements Logger via zerolog's Info event, for call sites that
// want printf-style formatting rather than zerolog's structured fields.
func (l *zlogger) Printf(format string, args ...interface{}) {
	l.Logger.Info().Msgf(format, args...)
}

// Error implements Logger.
func (l *zlogger) Error(err error) *zerolog.Event {
	return l.Logger.Error().Err(err)
}
