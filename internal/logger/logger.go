package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Initialize sets up the global logger. Output goes to stderr so command
// output on stdout stays machine readable.
func Initialize(level string, pretty bool) error {
	return InitializeTo(os.Stderr, level, pretty)
}

// InitializeTo is Initialize with an explicit writer.
func InitializeTo(w io.Writer, level string, pretty bool) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return err
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	out := w
	if pretty {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(lvl)
	return nil
}

// Get returns the global logger
func Get() *zerolog.Logger {
	return &log.Logger
}
