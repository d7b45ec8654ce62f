package handler

import (
	"github.com/philipp01105/fanlog/core"
)

// Handler defines the interface for record handlers
type Handler interface {
	// Handle renders and writes a record. rec is only valid for the
	// duration of the call.
	Handle(rec *core.Record) error

	// Close releases resources held by the handler
	Close() error
}

// LineWriter is an optional interface for handlers that can write a
// pre-rendered line verbatim. A trailing newline is added.
type LineWriter interface {
	WriteLine(line string) error
}
