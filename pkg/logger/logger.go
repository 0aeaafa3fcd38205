// Package logger provides a singleton structured logger backed by
// zerolog. Initialise once at startup with Init, then retrieve
// anywhere with Get.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options controls logger behaviour at initialisation time.
type Options struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Defaults to "warn" when empty or unrecognised, keeping the CLI
	// quiet unless asked otherwise.
	Level string
	// Output is the writer logs are sent to. Defaults to os.Stderr so
	// diagnostics never mix with command output.
	Output io.Writer
}

var (
	instance    zerolog.Logger
	once        sync.Once
	initialized bool
)

// Init initialises the singleton logger. Only the first call has any
// effect.
func Init(opts Options) zerolog.Logger {
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano

		out := opts.Output
		if out == nil {
			out = os.Stderr
		}

		instance = zerolog.New(out).Level(parseLevel(opts.Level)).With().Timestamp().Logger()
		initialized = true
	})

	return instance
}

// Get returns the singleton, initialising with defaults when Init was
// never called.
func Get() zerolog.Logger {
	if !initialized {
		return Init(Options{})
	}

	return instance
}

func parseLevel(raw string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}
