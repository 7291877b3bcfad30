package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

func init() {
	zerolog.TimestampFieldName = "timestamp"
	zerolog.TimeFieldFormat = time.RFC3339
}

type Options struct {
	Instance string
	Level    string
	// Console switches to human-readable output for local development.
	Console bool
	// Output defaults to stdout.
	Output io.Writer
}

// New builds the service logger. Every entry carries timestamp, level,
// instance and message fields.
func New(opts Options) zerolog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Console {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("instance", opts.Instance).
		Logger()
}

// JSONLogger adapts the standard library log package to the service logger,
// so output from log.Printf and http.Server.ErrorLog lands in the same stream.
type JSONLogger struct {
	Logger zerolog.Logger
}

func (l *JSONLogger) Write(p []byte) (n int, err error) {
	l.Logger.Info().Msg(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
