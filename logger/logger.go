package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/philipp01105/fanlog/color"
	"github.com/philipp01105/fanlog/config"
	"github.com/philipp01105/fanlog/core"
	"github.com/philipp01105/fanlog/formatter"
	"github.com/philipp01105/fanlog/handler"
	"github.com/philipp01105/fanlog/handler/consolehandler"
	"github.com/philipp01105/fanlog/sysinfo"
)

// ErrNoLineWriter is reported when sections are printed through a
// handler that cannot write raw lines.
var ErrNoLineWriter = errors.New("handler does not implement handler.LineWriter")

// Logger prints labeled lines under a fixed namespace (immutable).
//
// Print methods return nothing. A write error from the handler goes to
// the callback set with Builder.WithErrorHandler and is dropped when no
// callback is set.
type Logger struct {
	handler   handler.Handler
	lines     handler.LineWriter
	namespace core.Namespace
	config    config.Config
	styles    [len(core.Levels)]color.Style
	lookup    core.LookupFunc
	now       func() time.Time
	sysinfo   sysinfo.Provider
	onError   func(error)
	plain     bool
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler   handler.Handler
	namespace core.Namespace
	config    config.Config
	lookup    core.LookupFunc
	now       func() time.Time
	sysinfo   sysinfo.Provider
	onError   func(error)
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		config:  config.Default(),
		lookup:  os.LookupEnv,
		now:     time.Now,
		sysinfo: sysinfo.Host(),
	}
}

// New creates a Logger for namespace with the default console handler.
// Any string is accepted, including the empty root namespace.
func New(namespace string) *Logger {
	return NewBuilder().WithNamespace(namespace).Build()
}

// WithHandler sets the handler (default: stdout console handler)
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithNamespace sets the initial namespace
func (b *Builder) WithNamespace(namespace string) *Builder {
	b.namespace = core.Namespace(namespace)
	return b
}

// WithConfig sets presentation settings; zero fields take defaults.
// Color "never" strips styles from this logger's lines and rules. A
// handler set with WithHandler keeps its own formatter; build it from
// cfg.FormatterConfig to drop the timestamp styling too.
func (b *Builder) WithConfig(cfg config.Config) *Builder {
	b.config = cfg.WithDefaults()
	return b
}

// WithEnv sets the environment lookup consulted by Debug
func (b *Builder) WithEnv(lookup core.LookupFunc) *Builder {
	if lookup != nil {
		b.lookup = lookup
	}
	return b
}

// WithClock sets the time source for timestamps
func (b *Builder) WithClock(now func() time.Time) *Builder {
	if now != nil {
		b.now = now
	}
	return b
}

// WithSystemInfo sets the provider used by ProcessInfo
func (b *Builder) WithSystemInfo(p sysinfo.Provider) *Builder {
	if p != nil {
		b.sysinfo = p
	}
	return b
}

// WithErrorHandler sets a callback for handler write errors. Without
// one, write errors are dropped.
func (b *Builder) WithErrorHandler(fn func(error)) *Builder {
	b.onError = fn
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	if b.config.Color == config.ColorAlways {
		color.SetEnabled(true)
	}

	h := b.handler
	if h == nil {
		h = consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
			Formatter: formatter.NewTextFormatter(b.config.FormatterConfig()),
		})
	}

	l := &Logger{
		handler:   h,
		namespace: b.namespace,
		config:    b.config,
		lookup:    b.lookup,
		now:       b.now,
		sysinfo:   b.sysinfo,
		onError:   b.onError,
		plain:     b.config.Color == config.ColorNever,
	}
	l.lines, _ = h.(handler.LineWriter)
	for _, lvl := range core.Levels {
		l.styles[lvl] = b.config.LevelStyle(lvl)
		if l.plain {
			l.styles[lvl] = color.None
		}
	}
	return l
}

// Namespace returns the logger's namespace ("" for the root logger)
func (l *Logger) Namespace() string {
	return string(l.namespace)
}

// Scope returns a new Logger whose namespace is this one's joined with
// namespace. The receiver is not modified.
func (l *Logger) Scope(namespace string) *Logger {
	child := *l
	child.namespace = l.namespace.Join(namespace)
	return &child
}

// Child is an alias for Scope
func (l *Logger) Child(namespace string) *Logger {
	return l.Scope(namespace)
}

// Log prints args under a custom label. A nil style leaves the label
// unstyled.
func (l *Logger) Log(label string, style color.Style, args ...interface{}) {
	l.log(label, style, formatter.Args(args...))
}

// log is the internal logging method that takes a rendered message
func (l *Logger) log(label string, style color.Style, msg string) {
	if l.handler == nil {
		return
	}

	if l.plain {
		style = nil
	}

	rec := core.GetRecord()
	rec.Time = l.now()
	rec.Namespace = l.namespace
	rec.Label = label
	rec.Style = style
	rec.Message = msg

	err := l.handler.Handle(rec)
	core.PutRecord(rec)
	if err != nil {
		l.reportError(err)
	}
}

func (l *Logger) logLevel(level core.Level, msg string) {
	style := level.Style()
	if level >= 0 && int(level) < len(l.styles) {
		style = l.styles[level]
	}
	l.log(level.String(), style, msg)
}

func (l *Logger) reportError(err error) {
	if l.onError != nil {
		l.onError(err)
	}
}

// DebugEnabled reports whether Debug would print right now
func (l *Logger) DebugEnabled() bool {
	return core.DebugEnabled(l.lookup)
}

// Print logs args at level, applying the debug gate for DebugLevel
func (l *Logger) Print(level Level, args ...interface{}) {
	if level == DebugLevel && !l.DebugEnabled() {
		return
	}
	l.logLevel(level, formatter.Args(args...))
}

// Debug logs a debug message when the DEBUG gate is open
func (l *Logger) Debug(args ...interface{}) {
	if !l.DebugEnabled() {
		return
	}
	l.logLevel(core.DebugLevel, formatter.Args(args...))
}

// Info logs an info message
func (l *Logger) Info(args ...interface{}) {
	l.logLevel(core.InfoLevel, formatter.Args(args...))
}

// Success logs a success message
func (l *Logger) Success(args ...interface{}) {
	l.logLevel(core.SuccessLevel, formatter.Args(args...))
}

// Warn logs a warning message
func (l *Logger) Warn(args ...interface{}) {
	l.logLevel(core.WarnLevel, formatter.Args(args...))
}

// Error logs an error message
func (l *Logger) Error(args ...interface{}) {
	l.logLevel(core.ErrorLevel, formatter.Args(args...))
}

// Fatal logs a fatal message. It does not exit.
func (l *Logger) Fatal(args ...interface{}) {
	l.logLevel(core.FatalLevel, formatter.Args(args...))
}

// Debugf logs a formatted debug message when the DEBUG gate is open
func (l *Logger) Debugf(format string, args ...interface{}) {
	if !l.DebugEnabled() {
		return
	}
	l.logLevel(core.DebugLevel, fmt.Sprintf(format, args...))
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logLevel(core.InfoLevel, fmt.Sprintf(format, args...))
}

// Successf logs a success message with formatting
func (l *Logger) Successf(format string, args ...interface{}) {
	l.logLevel(core.SuccessLevel, fmt.Sprintf(format, args...))
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logLevel(core.WarnLevel, fmt.Sprintf(format, args...))
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logLevel(core.ErrorLevel, fmt.Sprintf(format, args...))
}

// Fatalf logs a fatal message with formatting. It does not exit.
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.logLevel(core.FatalLevel, fmt.Sprintf(format, args...))
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
