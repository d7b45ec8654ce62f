package core

import (
	"fmt"
	"time"
)

// Field is a key-value attribute appended after the message as key=value.
// Only the slog and zap adapters produce fields; the fanlog print
// functions fold everything into the message.
type Field struct {
	Key   string
	Value interface{}
}

// StringValue returns the string representation of a field's value
func (f Field) StringValue() string {
	switch v := f.Value.(type) {
	case nil:
		return "<nil>"
	case string:
		return v
	case error:
		return v.Error()
	case time.Time:
		return v.Format(time.RFC3339)
	case time.Duration:
		return v.String()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%+v", v)
	}
}
