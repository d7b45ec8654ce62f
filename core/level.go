package core

import "github.com/philipp01105/fanlog/color"

// Level identifies one of the built-in print functions
type Level int8

const (
	// DebugLevel is only printed when the debug gate is open
	DebugLevel Level = iota
	// InfoLevel for general informational messages
	InfoLevel
	// SuccessLevel for completed operations
	SuccessLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// FatalLevel for fatal messages. Printing one does not exit.
	FatalLevel
)

// Levels lists every built-in level in ascending order.
var Levels = [...]Level{DebugLevel, InfoLevel, SuccessLevel, WarnLevel, ErrorLevel, FatalLevel}

var levelLabels = [...]string{
	DebugLevel:   "DEBUG",
	InfoLevel:    "INFO",
	SuccessLevel: "OK",
	WarnLevel:    "WARN",
	ErrorLevel:   "ERR",
	FatalLevel:   "FATAL",
}

var levelStyles = [...]color.Style{
	DebugLevel:   color.Gray,
	InfoLevel:    color.Cyan,
	SuccessLevel: color.Green,
	WarnLevel:    color.Yellow,
	ErrorLevel:   color.Red,
	FatalLevel:   color.Chain(color.BgRed, color.White, color.Bold),
}

// String returns the label printed inside the level brackets
func (l Level) String() string {
	if l < 0 || int(l) >= len(levelLabels) {
		return "UNKNOWN"
	}
	return levelLabels[l]
}

// Style returns the default colour of the level's label
func (l Level) Style() color.Style {
	if l < 0 || int(l) >= len(levelStyles) {
		return color.None
	}
	return levelStyles[l]
}

// Name returns the lower-case configuration key for the level
// ("debug", "info", "success", "warn", "error", "fatal").
func (l Level) Name() string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case SuccessLevel:
		return "success"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	case FatalLevel:
		return "fatal"
	default:
		return "unknown"
	}
}
