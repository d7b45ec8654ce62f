package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/philipp01105/fanlog/core"
)

// Formatter defines the interface for record formatters
type Formatter interface {
	// Format formats a record into bytes, including the trailing newline
	Format(rec *core.Record) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo formats a record and writes it to w in a single Write call
	FormatTo(rec *core.Record, w io.Writer) error
}

// DefaultTimestampFormat is HH:MM:SS.mmm
const DefaultTimestampFormat = "15:04:05.000"

// Config holds formatter configuration
type Config struct {
	// TimestampFormat specifies the time layout (empty for DefaultTimestampFormat)
	TimestampFormat string
	// LocalTime renders timestamps in the local zone instead of UTC
	LocalTime bool
	// Plain omits escape codes from the timestamp and label
	Plain bool
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
