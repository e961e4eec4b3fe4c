package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/rs/zerolog"

	"github.com/sonatype-nexus-community/iqspec/oaserrors"
)

// Output formats accepted by New.
const (
	// FormatConsole writes human-readable lines through zerolog's ConsoleWriter
	FormatConsole = "console"
	// FormatJSON writes one zerolog JSON object per line
	FormatJSON = "json"
	// FormatText writes log/slog key=value lines
	FormatText = "text"
)

// Formats returns the accepted output formats, default first.
func Formats() []string {
	return []string{FormatConsole, FormatJSON, FormatText}
}

// New returns a logger writing to w in format at level. An empty format
// selects FormatConsole.
func New(w io.Writer, format string, level zerolog.Level) (Logger, error) {
	switch strings.ToLower(format) {
	case "", FormatConsole:
		return NewConsole(w, level), nil
	case FormatJSON:
		return NewJSON(w, level), nil
	case FormatText:
		return NewText(w, level), nil
	}
	return nil, &oaserrors.ConfigError{
		Option:  "log-format",
		Value:   format,
		Message: "must be one of " + strings.Join(Formats(), ", "),
	}
}

// NewJSON returns a ZerologAdapter writing JSON lines with a timestamp.
func NewJSON(w io.Writer, level zerolog.Level) *ZerologAdapter {
	return &ZerologAdapter{
		logger: zerolog.New(w).With().Timestamp().Logger().Level(level),
	}
}

// NewText returns a SlogAdapter over a slog text handler. level is mapped
// to the nearest slog level.
func NewText(w io.Writer, level zerolog.Level) *SlogAdapter {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slogLevel(level)})
	return NewSlogAdapter(slog.New(handler))
}

func slogLevel(level zerolog.Level) slog.Level {
	switch {
	case level <= zerolog.DebugLevel:
		return slog.LevelDebug
	case level == zerolog.InfoLevel:
		return slog.LevelInfo
	case level == zerolog.WarnLevel:
		return slog.LevelWarn
	}
	return slog.LevelError
}
