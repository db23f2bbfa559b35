package cliconfig

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Logger returns a console zerolog logger writing to w at info level.
// It is used before the configured level is known.
func Logger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger()
}

// Level returns the configured zerolog level, or info if it does not parse.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
