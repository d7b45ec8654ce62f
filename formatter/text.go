package formatter

import (
	"bytes"
	"io"

	"github.com/philipp01105/fanlog/color"
	"github.com/philipp01105/fanlog/core"
)

// TextFormatter formats records as human-readable, ANSI-coloured lines
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = DefaultTimestampFormat
	}
	return &TextFormatter{Config: cfg}
}

// Format formats a record as text
func (f *TextFormatter) Format(rec *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(rec, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats a record and writes it directly to the writer
func (f *TextFormatter) FormatTo(rec *core.Record, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(rec, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// formatToBuffer writes the formatted record into the given buffer
func (f *TextFormatter) formatToBuffer(rec *core.Record, buf *bytes.Buffer) {
	t := rec.Time
	if !f.LocalTime {
		t = t.UTC()
	}
	ts := "[" + t.Format(f.TimestampFormat) + "]"
	if !f.Plain {
		ts = color.Dim(ts)
	}
	buf.WriteString(ts)
	buf.WriteByte(' ')

	if !rec.Namespace.IsRoot() {
		buf.WriteByte('[')
		buf.WriteString(string(rec.Namespace))
		buf.WriteString("] ")
	}

	tag := "[" + rec.Label + "]"
	if rec.Style != nil && !f.Plain {
		tag = rec.Style(tag)
	}
	buf.WriteString(tag)
	buf.WriteByte(' ')

	buf.WriteString(rec.Message)

	for _, field := range rec.Fields {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.WriteString(field.StringValue())
	}

	buf.WriteByte('\n')
}
