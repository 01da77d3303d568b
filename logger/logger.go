package logger

// Metadata describes a record before it is built
type Metadata struct {
	Level LogLevel
}

// Record is a single log event produced by the facade
type Record struct {
	Metadata
	Message string
}

// Handler defines the backend contract the facade dispatches to
type Handler interface {
	Enabled(metadata Metadata) bool
	Log(record Record)
	Flush()
}
