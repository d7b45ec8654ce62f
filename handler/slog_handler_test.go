package handler

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/fanlog/core"
)

// captureHandler records copies of the records it receives.
type captureHandler struct {
	mu      sync.Mutex
	records []core.Record
	err     error
}

func (c *captureHandler) Handle(rec *core.Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := *rec
	cp.Fields = append([]core.Field(nil), rec.Fields...)
	c.records = append(c.records, cp)
	return c.err
}

func (c *captureHandler) Close() error { return nil }

func env(kv map[string]string) core.LookupFunc {
	return func(k string) (string, bool) {
		v, ok := kv[k]
		return v, ok
	}
}

func fieldMap(fields []core.Field) map[string]string {
	m := make(map[string]string, len(fields))
	for _, f := range fields {
		m[f.Key] = f.StringValue()
	}
	return m
}

func TestSlogHandler_Enabled(t *testing.T) {
	ctx := context.Background()

	off := NewSlogHandler(&captureHandler{}, env(nil))
	assert.False(t, off.Enabled(ctx, slog.LevelDebug))
	assert.True(t, off.Enabled(ctx, slog.LevelInfo))
	assert.True(t, off.Enabled(ctx, slog.LevelWarn))
	assert.True(t, off.Enabled(ctx, slog.LevelError))

	on := NewSlogHandler(&captureHandler{}, env(map[string]string{"DEBUG": "1"}))
	assert.True(t, on.Enabled(ctx, slog.LevelDebug))
}

func TestSlogHandler_Handle(t *testing.T) {
	c := &captureHandler{}
	logger := slog.New(NewSlogHandler(c, env(nil)))

	logger.Info("test message", "key", "value", "count", 42)

	require.Len(t, c.records, 1)
	rec := c.records[0]
	assert.Equal(t, "INFO", rec.Label)
	assert.Equal(t, "test message", rec.Message)
	assert.True(t, rec.Namespace.IsRoot())
	assert.NotNil(t, rec.Style)
	assert.Equal(t, map[string]string{"key": "value", "count": "42"}, fieldMap(rec.Fields))
}

func TestSlogHandler_WithGroupExtendsNamespace(t *testing.T) {
	c := &captureHandler{}
	logger := slog.New(NewSlogHandler(c, env(nil))).WithGroup("Core").WithGroup("Utils")

	logger.Error("X", "user_id", 123)

	require.Len(t, c.records, 1)
	assert.Equal(t, core.Namespace("Core:Utils"), c.records[0].Namespace)
	assert.Equal(t, "ERR", c.records[0].Label)
	assert.Equal(t, "123", fieldMap(c.records[0].Fields)["user_id"])
}

func TestSlogHandler_WithAttrs(t *testing.T) {
	c := &captureHandler{}
	logger := slog.New(NewSlogHandler(c, env(nil))).With("request_id", "req-123")

	logger.Warn("slow", slog.Group("db", slog.Duration("took", 2*time.Second)))

	require.Len(t, c.records, 1)
	fields := fieldMap(c.records[0].Fields)
	assert.Equal(t, "req-123", fields["request_id"])
	assert.Equal(t, "2s", fields["db.took"])
	assert.Equal(t, "WARN", c.records[0].Label)
}

func TestSlogHandler_DebugGate(t *testing.T) {
	vars := map[string]string{}
	c := &captureHandler{}
	logger := slog.New(NewSlogHandler(c, env(vars)))

	logger.Debug("hidden")
	assert.Empty(t, c.records)

	vars["DEBUG"] = "true"
	logger.Debug("shown")
	require.Len(t, c.records, 1)
	assert.Equal(t, "DEBUG", c.records[0].Label)
}

func TestSlogHandler_PropagatesError(t *testing.T) {
	c := &captureHandler{err: errors.New("broken pipe")}
	h := NewSlogHandler(c, env(nil))

	err := h.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelInfo, "m", 0))
	assert.EqualError(t, err, "broken pipe")
}

func TestSlogLevelToCore(t *testing.T) {
	tests := []struct {
		slogLevel slog.Level
		coreLevel core.Level
	}{
		{slog.LevelDebug, core.DebugLevel},
		{slog.LevelInfo, core.InfoLevel},
		{slog.LevelWarn, core.WarnLevel},
		{slog.LevelError, core.ErrorLevel},
		{slog.LevelError + 4, core.FatalLevel},
	}

	for _, tt := range tests {
		got := slogLevelToCore(tt.slogLevel)
		if got != tt.coreLevel {
			t.Errorf("slogLevelToCore(%v) = %v, want %v", tt.slogLevel, got, tt.coreLevel)
		}
	}
}
