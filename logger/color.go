package logger

// ANSI color codes for terminal output
const (
	ColorReset   = "\033[0m"
	ColorRed     = "\033[31m"
	ColorYellow  = "\033[33m"
	ColorMagenta = "\033[35m"
	ColorCyan    = "\033[36m"
)

// painter wraps a rendered label for the given level
type painter func(level LogLevel, text string) string

// GetLevelColor returns the color code for a given log level.
// Trace and unknown levels have no color.
func GetLevelColor(level LogLevel) string {
	switch level {
	case LogLevelError:
		return ColorRed
	case LogLevelWarn:
		return ColorYellow
	case LogLevelInfo:
		return ColorCyan
	case LogLevelDebug:
		return ColorMagenta
	default:
		return ""
	}
}

func ansiPainter(level LogLevel, text string) string {
	code := GetLevelColor(level)
	if code == "" {
		return text
	}
	return code + text + ColorReset
}

func plainPainter(_ LogLevel, text string) string {
	return text
}
