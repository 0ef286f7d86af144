// Package logging builds the zerolog logger used by the CLI.
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger writing to w at the given level. format is
// "console" for human-readable lines or "json" for one object per line.
func New(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var out io.Writer
	switch format {
	case "", "console":
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}
	case "json":
		out = w
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format %q (must be console or json)", format)
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
