package handler

import (
	"context"
	"log/slog"
	"os"

	"github.com/philipp01105/fanlog/core"
)

// SlogHandler is an adapter that implements slog.Handler using a fanlog Handler.
// Debug records pass only while the DEBUG gate is open.
type SlogHandler struct {
	handler   Handler
	lookup    core.LookupFunc
	namespace core.Namespace
	attrs     []core.Field
}

// NewSlogHandler creates a new slog.Handler adapter wrapping the given Handler.
// A nil lookup reads the process environment.
func NewSlogHandler(h Handler, lookup core.LookupFunc) *SlogHandler {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &SlogHandler{
		handler: h,
		lookup:  lookup,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	if slogLevelToCore(level) == core.DebugLevel {
		return core.DebugEnabled(s.lookup)
	}
	return true
}

// Handle converts a slog.Record to a core.Record and passes it to the wrapped handler.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	level := slogLevelToCore(record.Level)

	rec := core.GetRecord()
	defer core.PutRecord(rec)

	if !record.Time.IsZero() {
		rec.Time = record.Time
	}
	rec.Namespace = s.namespace
	rec.Label = level.String()
	rec.Style = level.Style()
	rec.Message = record.Message

	if len(s.attrs) > 0 {
		rec.Fields = append(rec.Fields, s.attrs...)
	}
	record.Attrs(func(a slog.Attr) bool {
		rec.Fields = appendAttr(rec.Fields, "", a)
		return true
	})

	return s.handler.Handle(rec)
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]core.Field, len(s.attrs), len(s.attrs)+len(attrs))
	copy(newAttrs, s.attrs)
	for _, a := range attrs {
		newAttrs = appendAttr(newAttrs, "", a)
	}
	return &SlogHandler{
		handler:   s.handler,
		lookup:    s.lookup,
		namespace: s.namespace,
		attrs:     newAttrs,
	}
}

// WithGroup returns a new SlogHandler whose namespace is extended by name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	return &SlogHandler{
		handler:   s.handler,
		lookup:    s.lookup,
		namespace: s.namespace.Join(name),
		attrs:     s.attrs,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level > slog.LevelError:
		return core.FatalLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// appendAttr flattens a into fields, joining group keys with ".".
func appendAttr(fields []core.Field, prefix string, a slog.Attr) []core.Field {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return fields
	}

	key := a.Key
	if prefix != "" {
		key = prefix + "." + a.Key
	}

	if a.Value.Kind() == slog.KindGroup {
		// Inline groups (empty key) keep the parent prefix.
		if a.Key == "" {
			key = prefix
		}
		for _, ga := range a.Value.Group() {
			fields = appendAttr(fields, key, ga)
		}
		return fields
	}

	return append(fields, core.Field{Key: key, Value: a.Value.Any()})
}
