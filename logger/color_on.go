//go:build !nocolor

package logger

// ColorsEnabled reports whether ANSI colors were compiled in
const ColorsEnabled = true

var paint painter = ansiPainter
