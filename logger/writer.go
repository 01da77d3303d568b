package logger

import (
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// WriterKind identifies the destination of a Writer
type WriterKind int

const (
	KindStdout WriterKind = iota
	KindStderr
	KindOther
)

// Process streams, replaced in tests
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Writer describes where a Logger sends its lines. The zero value is Stdout
// without colors.
type Writer struct {
	kind    WriterKind
	colored bool
	sink    *sharedSink
}

// Stdout writes to standard output
func Stdout(colored bool) Writer {
	return Writer{kind: KindStdout, colored: colored}
}

// Stderr writes to standard error
func Stderr(colored bool) Writer {
	return Writer{kind: KindStderr, colored: colored}
}

// Other writes to a caller supplied sink. Copies of the returned Writer share
// the sink and its lock.
func Other(w io.Writer) Writer {
	return Writer{kind: KindOther, sink: &sharedSink{w: w}}
}

// StdoutAuto writes to standard output, colored when it is a terminal
func StdoutAuto() Writer {
	return Stdout(isTerminal(os.Stdout))
}

// StderrAuto writes to standard error, colored when it is a terminal
func StderrAuto() Writer {
	return Stderr(isTerminal(os.Stderr))
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Kind returns the destination variant
func (w Writer) Kind() WriterKind {
	return w.kind
}

// Colored reports whether labels should be colored. Always false for Other.
func (w Writer) Colored() bool {
	return w.kind != KindOther && w.colored
}

// String returns the variant name
func (w Writer) String() string {
	switch w.kind {
	case KindStderr:
		return "Stderr"
	case KindOther:
		return "Other"
	default:
		return "Stdout"
	}
}

// write sends one complete line to the destination, ignoring failures
func (w Writer) write(line []byte) {
	switch w.kind {
	case KindStderr:
		_, _ = stderr.Write(line)
	case KindOther:
		if w.sink != nil {
			w.sink.write(line)
		}
	default:
		_, _ = stdout.Write(line)
	}
}

// sharedSink serializes writes to an external io.Writer. A panic raised by
// the sink while the lock is held poisons it and later writes are dropped.
type sharedSink struct {
	mu       sync.Mutex
	w        io.Writer
	poisoned bool
}

func (s *sharedSink) write(line []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.poisoned || s.w == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			s.poisoned = true
		}
	}()
	_, _ = s.w.Write(line)
}
