package logger

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// Errors returned by SetHandler
var (
	ErrAlreadyInitialized = errors.New("logger: already initialized")
	ErrNilHandler         = errors.New("logger: nil handler")
)

// Global handler state. The handler cell is set at most once.
var (
	installed atomic.Bool
	active    atomic.Pointer[Handler]
	maxLevel  atomic.Int64
)

// nullHandler is what the facade dispatches to before anything is installed
var nullHandler Handler = NewNullHandler()

// SetHandler installs the process-wide handler. Only the first call succeeds.
func SetHandler(h Handler) error {
	if h == nil {
		return ErrNilHandler
	}
	if !installed.CompareAndSwap(false, true) {
		return ErrAlreadyInitialized
	}
	active.Store(&h)
	return nil
}

// Active returns the installed handler, or a null handler if none is set
func Active() Handler {
	if h := active.Load(); h != nil {
		return *h
	}
	return nullHandler
}

// SetMaxLevel sets the global level filter applied before dispatch
func SetMaxLevel(level LogLevel) {
	maxLevel.Store(int64(level))
}

// MaxLevel returns the global level filter. It is LogLevelNone until set.
func MaxLevel() LogLevel {
	return LogLevel(maxLevel.Load())
}

// EnabledFor reports whether a record at level would reach the handler and
// be accepted by it
func EnabledFor(level LogLevel) bool {
	if level == LogLevelNone || level > MaxLevel() {
		return false
	}
	return Active().Enabled(Metadata{Level: level})
}

// Logf formats and dispatches a record at the given level
func Logf(level LogLevel, format string, args ...any) {
	if level == LogLevelNone || level > MaxLevel() {
		return
	}
	Active().Log(Record{
		Metadata: Metadata{Level: level},
		Message:  fmt.Sprintf(format, args...),
	})
}

// Flush flushes the installed handler
func Flush() {
	Active().Flush()
}

// Convenience functions using the global handler
func Error(format string, args ...any) {
	Logf(LogLevelError, format, args...)
}

func Warn(format string, args ...any) {
	Logf(LogLevelWarn, format, args...)
}

func Info(format string, args ...any) {
	Logf(LogLevelInfo, format, args...)
}

func Debug(format string, args ...any) {
	Logf(LogLevelDebug, format, args...)
}

func Trace(format string, args ...any) {
	Logf(LogLevelTrace, format, args...)
}
