// Package zaphandler adapts a fanlog handler.Handler to zapcore.Core so
// that zap loggers print fanlog lines. Named segments become namespace
// segments: zap.New(c).Named("Core").Named("Utils") prints under
// [Core:Utils]. zap joins names with dots before the core sees them, so
// a dot inside a single name splits it too: Named("v1.2") prints [v1:2].
// Fields render as key=value after the message.
package zaphandler

import (
	"maps"
	"os"
	"slices"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/fanlog/core"
	"github.com/philipp01105/fanlog/handler"
)

// Core implements zapcore.Core on top of a fanlog handler.
type Core struct {
	zapcore.LevelEnabler
	handler handler.Handler
	fields  []zapcore.Field
}

// NewCore wraps h. A nil enabler uses DebugGate(os.LookupEnv).
func NewCore(h handler.Handler, enab zapcore.LevelEnabler) *Core {
	if enab == nil {
		enab = DebugGate(os.LookupEnv)
	}
	return &Core{LevelEnabler: enab, handler: h}
}

// DebugGate enables every level above debug, and debug only while the
// DEBUG variable opens the gate.
func DebugGate(lookup core.LookupFunc) zapcore.LevelEnabler {
	return zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		if l <= zapcore.DebugLevel {
			return core.DebugEnabled(lookup)
		}
		return true
	})
}

// With returns a copy of the core carrying additional fields.
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	merged := make([]zapcore.Field, len(c.fields), len(c.fields)+len(fields))
	copy(merged, c.fields)
	return &Core{
		LevelEnabler: c.LevelEnabler,
		handler:      c.handler,
		fields:       append(merged, fields...),
	}
}

// Check adds the core to ce when the entry's level is enabled.
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write renders ent and fields as one fanlog record.
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	level := zapLevelToCore(ent.Level)

	rec := core.GetRecord()
	defer core.PutRecord(rec)

	if !ent.Time.IsZero() {
		rec.Time = ent.Time
	}
	rec.Namespace = loggerNamespace(ent.LoggerName)
	rec.Label = level.String()
	rec.Style = level.Style()
	rec.Message = ent.Message
	rec.Fields = appendFields(rec.Fields, c.fields)
	rec.Fields = appendFields(rec.Fields, fields)

	return c.handler.Handle(rec)
}

// Sync is a no-op; console writes are unbuffered.
func (c *Core) Sync() error {
	return nil
}

func zapLevelToCore(l zapcore.Level) core.Level {
	switch {
	case l >= zapcore.DPanicLevel:
		return core.FatalLevel
	case l >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case l >= zapcore.WarnLevel:
		return core.WarnLevel
	case l >= zapcore.InfoLevel:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// loggerNamespace maps zap's dot-joined logger name to a namespace.
// Every dot becomes a delimiter; zap keeps no segment boundaries.
func loggerNamespace(name string) core.Namespace {
	if name == "" {
		return ""
	}
	return core.Namespace(strings.ReplaceAll(name, ".", core.Delimiter))
}

// appendFields encodes each zap field in order. A field may expand to
// several keys (zap.Inline, zap.Object); those are sorted by the map
// encoder so output stays deterministic.
func appendFields(dst []core.Field, fields []zapcore.Field) []core.Field {
	for _, f := range fields {
		enc := zapcore.NewMapObjectEncoder()
		f.AddTo(enc)
		for _, key := range slices.Sorted(maps.Keys(enc.Fields)) {
			dst = append(dst, core.Field{Key: key, Value: enc.Fields[key]})
		}
	}
	return dst
}
