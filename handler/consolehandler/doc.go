// Package consolehandler provides the synchronous handler that writes
// fanlog lines to a terminal.
//
// Every record and every section rule becomes exactly one Write call
// on the underlying writer, made under a mutex so that concurrent
// callers never interleave within a line. There is no queue and no
// background goroutine; a write error is returned to the caller.
//
// The default writer is stdout wrapped by go-colorable, which
// translates ANSI sequences for legacy Windows consoles and is a plain
// passthrough elsewhere.
package consolehandler
