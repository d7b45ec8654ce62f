package logger

import (
	"sync"

	"github.com/philipp01105/fanlog/color"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	defaultLogger = New("")
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Debug logs a debug message using the default logger
func Debug(args ...interface{}) {
	Default().Debug(args...)
}

// Info logs an info message using the default logger
func Info(args ...interface{}) {
	Default().Info(args...)
}

// Success logs a success message using the default logger
func Success(args ...interface{}) {
	Default().Success(args...)
}

// Warn logs a warning message using the default logger
func Warn(args ...interface{}) {
	Default().Warn(args...)
}

// Error logs an error message using the default logger
func Error(args ...interface{}) {
	Default().Error(args...)
}

// Fatal logs a fatal message using the default logger. It does not exit.
func Fatal(args ...interface{}) {
	Default().Fatal(args...)
}

// Log logs under a custom label using the default logger
func Log(label string, style color.Style, args ...interface{}) {
	Default().Log(label, style, args...)
}

// Section prints a section rule using the default logger
func Section(name string, opts ...SectionOption) {
	Default().Section(name, opts...)
}

// Separator prints a plain rule using the default logger
func Separator(opts ...SectionOption) {
	Default().Separator(opts...)
}

// ProcessInfo prints host and runtime facts using the default logger
func ProcessInfo(title string) {
	Default().ProcessInfo(title)
}

// Scope creates a scoped logger from the default logger
func Scope(namespace string) *Logger {
	return Default().Scope(namespace)
}

// Child is an alias for Scope
func Child(namespace string) *Logger {
	return Default().Child(namespace)
}
