package logger

import (
	"strings"

	"github.com/philipp01105/fanlog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	DebugLevel   = core.DebugLevel
	InfoLevel    = core.InfoLevel
	SuccessLevel = core.SuccessLevel
	WarnLevel    = core.WarnLevel
	ErrorLevel   = core.ErrorLevel
	FatalLevel   = core.FatalLevel
)

// ParseLevel converts a level name or label to a Level
func ParseLevel(s string) (Level, bool) {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return DebugLevel, true
	case "INFO":
		return InfoLevel, true
	case "OK", "SUCCESS":
		return SuccessLevel, true
	case "WARN", "WARNING":
		return WarnLevel, true
	case "ERR", "ERROR":
		return ErrorLevel, true
	case "FATAL":
		return FatalLevel, true
	default:
		return InfoLevel, false
	}
}
