package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// TimestampField is the key under which every log line carries its timestamp.
const TimestampField = "ts"

// New creates a JSON zerolog.Logger writing to stdout with timestamps rendered in loc.
func New(level string, loc *time.Location) zerolog.Logger {
	return NewWithWriter(os.Stdout, level, loc)
}

// NewWithWriter is like New but writes to w.
func NewWithWriter(w io.Writer, level string, loc *time.Location) zerolog.Logger {
	if loc == nil {
		loc = time.UTC
	}
	return zerolog.New(w).
		Level(parseLevel(level)).
		Hook(timestampHook{loc: loc}).
		With().
		Str("service", "movieapi").
		Logger()
}

type timestampHook struct {
	loc *time.Location
}

func (h timestampHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	e.Str(TimestampField, time.Now().In(h.loc).Format(time.RFC3339Nano))
}

func parseLevel(raw string) zerolog.Level {
	if raw == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(raw))
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
