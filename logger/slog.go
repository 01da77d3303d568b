package logger

import (
	"context"
	"log/slog"
)

// slogHandler routes log/slog records through a Logger
type slogHandler struct {
	logger Logger
}

// Handler returns a slog.Handler backed by the logger. Attributes and groups
// are accepted but not rendered.
func (l Logger) Handler() slog.Handler {
	return &slogHandler{logger: l}
}

// Enabled gates by the logger level
func (h *slogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.Enabled(Metadata{Level: fromSlogLevel(level)})
}

// Handle converts the slog record and emits it
func (h *slogHandler) Handle(_ context.Context, r slog.Record) error {
	h.logger.Log(Record{
		Metadata: Metadata{Level: fromSlogLevel(r.Level)},
		Message:  r.Message,
	})
	return nil
}

func (h *slogHandler) WithAttrs([]slog.Attr) slog.Handler {
	return h
}

func (h *slogHandler) WithGroup(string) slog.Handler {
	return h
}

// fromSlogLevel maps slog.Level to our LogLevel
func fromSlogLevel(level slog.Level) LogLevel {
	switch {
	case level < slog.LevelDebug:
		return LogLevelTrace
	case level < slog.LevelInfo:
		return LogLevelDebug
	case level < slog.LevelWarn:
		return LogLevelInfo
	case level < slog.LevelError:
		return LogLevelWarn
	default:
		return LogLevelError
	}
}

// SlogLevel maps the level onto the slog scale. LogLevelNone maps above
// slog.LevelError so that nothing passes it.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LogLevelNone:
		return slog.LevelError + 4
	case LogLevelError:
		return slog.LevelError
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelTrace:
		return slog.LevelDebug - 4
	default:
		return slog.LevelInfo
	}
}
