package logger

// Logger is the leveled line logger. It is configured by value and installed
// once with Init.
type Logger struct {
	level  LogLevel
	writer Writer
}

// New creates a logger at Info level writing uncolored to standard output
func New() Logger {
	return Logger{
		level:  LogLevelInfo,
		writer: Stdout(false),
	}
}

// WithLevel returns a copy of the logger with the given minimum level
func (l Logger) WithLevel(level LogLevel) Logger {
	l.level = level
	return l
}

// WithWriter returns a copy of the logger with the given destination
func (l Logger) WithWriter(w Writer) Logger {
	l.writer = w
	return l
}

// Level returns the minimum level
func (l Logger) Level() LogLevel {
	return l.level
}

// Writer returns the destination
func (l Logger) Writer() Writer {
	return l.writer
}

// Init installs the logger as the process-wide handler and sets the global
// max level to the logger's level. It fails with ErrAlreadyInitialized if a
// handler was installed before; a failed call leaves the max level as it was.
func (l Logger) Init() error {
	if err := SetHandler(l); err != nil {
		return err
	}
	SetMaxLevel(l.level)
	return nil
}

// Enabled reports whether records at the given level are emitted
func (l Logger) Enabled(metadata Metadata) bool {
	return metadata.Level != LogLevelNone && metadata.Level <= l.level
}

// Log writes the record's level label as one line
func (l Logger) Log(record Record) {
	if !l.Enabled(record.Metadata) {
		return
	}
	l.writer.write([]byte(l.format(record) + "\n"))
}

// Flush is a no-op; every line is written through immediately
func (l Logger) Flush() {}

func (l Logger) format(record Record) string {
	text := label(record.Level)
	if l.writer.Colored() {
		text = paint(record.Level, text)
	}
	return text
}
