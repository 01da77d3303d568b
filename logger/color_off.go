//go:build nocolor

package logger

// ColorsEnabled reports whether ANSI colors were compiled in
const ColorsEnabled = false

var paint painter = plainPainter
