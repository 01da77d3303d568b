package logger

import (
	"os"
	"strings"
)

// Environment variables read by FromEnv
const (
	EnvLogLevel  = "LOG_LEVEL"
	EnvDebug     = "DEBUG"
	EnvLogOutput = "LOG_OUTPUT"
	EnvLogColor  = "LOG_COLOR"
)

// FromEnv builds a logger from LOG_LEVEL, DEBUG, LOG_OUTPUT and LOG_COLOR.
// A truthy DEBUG forces debug level. Missing values keep the New defaults,
// except that color defaults to auto detection.
func FromEnv() Logger {
	l := New()
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		l = l.WithLevel(ParseLogLevel(v))
	}
	if isTruthy(os.Getenv(EnvDebug)) {
		l = l.WithLevel(LogLevelDebug)
	}
	return l.WithWriter(ParseWriter(os.Getenv(EnvLogOutput), os.Getenv(EnvLogColor)))
}

// ParseWriter resolves an output name ("stdout" or "stderr") and a color mode
// ("auto", "true" or "false") into a Writer. Unknown outputs fall back to
// standard output, unknown color modes to auto detection.
func ParseWriter(output, color string) Writer {
	toStderr := strings.EqualFold(strings.TrimSpace(output), "stderr")

	switch mode := strings.ToLower(strings.TrimSpace(color)); {
	case isTruthy(mode):
		if toStderr {
			return Stderr(true)
		}
		return Stdout(true)
	case isFalsy(mode):
		if toStderr {
			return Stderr(false)
		}
		return Stdout(false)
	default:
		if toStderr {
			return StderrAuto()
		}
		return StdoutAuto()
	}
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func isFalsy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "0", "false", "no", "off":
		return true
	}
	return false
}
