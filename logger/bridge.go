package logger

import (
	"strings"
)

// LineWriter implements io.Writer to bridge the standard log package, or any
// other line oriented producer, into the global handler
type LineWriter struct {
	prefix string
}

// NewLineWriter creates a new line writer
func NewLineWriter(prefix string) *LineWriter {
	return &LineWriter{prefix: prefix}
}

// Write implements io.Writer. Each non-empty line becomes one record.
func (w *LineWriter) Write(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}

	for _, line := range strings.Split(string(p), "\n") {
		msg := strings.TrimSpace(line)
		if msg == "" {
			continue
		}
		level := detectLogLevel(msg)
		if w.prefix != "" {
			Logf(level, "[%s] %s", w.prefix, msg)
		} else {
			Logf(level, "%s", msg)
		}
	}

	return len(p), nil
}

// detectLogLevel tries to determine the appropriate log level from message content
func detectLogLevel(msg string) LogLevel {
	msgLower := strings.ToLower(msg)

	if strings.Contains(msgLower, "error") || strings.Contains(msgLower, "fail") {
		return LogLevelError
	}
	if strings.Contains(msgLower, "warn") {
		return LogLevelWarn
	}
	if strings.Contains(msgLower, "info") || strings.Contains(msgLower, "start") || strings.Contains(msgLower, "connect") {
		return LogLevelInfo
	}

	return LogLevelDebug
}
