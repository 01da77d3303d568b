package logger

import (
	"bytes"
	"io"
	"testing"
)

// resetGlobal clears the installed handler and level filter
func resetGlobal(t *testing.T) {
	t.Helper()
	reset := func() {
		installed.Store(false)
		active.Store(nil)
		maxLevel.Store(0)
	}
	reset()
	t.Cleanup(reset)
}

// captureStreams redirects the process streams used by Stdout and Stderr
func captureStreams(t *testing.T) (out, errOut *bytes.Buffer) {
	t.Helper()
	out, errOut = &bytes.Buffer{}, &bytes.Buffer{}
	prevOut, prevErr := stdout, stderr
	stdout, stderr = io.Writer(out), io.Writer(errOut)
	t.Cleanup(func() {
		stdout, stderr = prevOut, prevErr
	})
	return out, errOut
}

func record(level LogLevel, msg string) Record {
	return Record{Metadata: Metadata{Level: level}, Message: msg}
}
