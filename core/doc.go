// Package core defines the shared types used across fanlog.
//
// It provides the Level type with its fixed label and colour, the
// Namespace type used for hierarchical logger prefixes, the Record type
// that represents a single rendered log line, and the Field type that
// adapters use to carry key-value attributes.
//
// Record objects are pooled via sync.Pool. Callers get a Record with
// GetRecord and return it with PutRecord once the handler has written
// it. Records are never retained past a single call.
//
// The debug gate lives here too: DebugEnabled reads the DEBUG variable
// through a caller-supplied lookup each time it is asked, so flipping
// the environment mid-run takes effect on the next call.
package core
