package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ZerologAdapter wraps a zerolog.Logger to implement the Logger interface.
// Attributes are passed to zerolog as alternating key-value pairs.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter creates a new ZerologAdapter.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// NewConsole returns a ZerologAdapter writing human-readable lines to w at
// the given level. It is what the CLI uses for progress output.
func NewConsole(w io.Writer, level zerolog.Level) *ZerologAdapter {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
		NoColor:    true,
	}
	return &ZerologAdapter{
		logger: zerolog.New(output).With().Timestamp().Logger().Level(level),
	}
}

// ParseLevel converts a level name to a zerolog level.
// Unknown or empty names fall back to info.
func ParseLevel(name string) zerolog.Level {
	if name == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// Debug implements Logger.
func (z *ZerologAdapter) Debug(msg string, attrs ...any) {
	z.logger.Debug().Fields(attrs).Msg(msg)
}

// Info implements Logger.
func (z *ZerologAdapter) Info(msg string, attrs ...any) {
	z.logger.Info().Fields(attrs).Msg(msg)
}

// Warn implements Logger.
func (z *ZerologAdapter) Warn(msg string, attrs ...any) {
	z.logger.Warn().Fields(attrs).Msg(msg)
}

// Error implements Logger.
func (z *ZerologAdapter) Error(msg string, attrs ...any) {
	z.logger.Error().Fields(attrs).Msg(msg)
}

// With implements Logger.
func (z *ZerologAdapter) With(attrs ...any) Logger {
	return &ZerologAdapter{logger: z.logger.With().Fields(attrs).Logger()}
}

var _ Logger = (*ZerologAdapter)(nil)
