// Package formatter turns records and variadic arguments into text.
//
// Args implements the message convention shared by every print
// function: a leading string may carry printf-style verbs (%s %d %i %f
// %j %o %O %c %%), each consuming one argument; remaining arguments are
// appended with single spaces. Composite values render with Go's %+v,
// which labels struct fields instead of producing JSON.
//
// TextFormatter renders a Record as
//
//	[15:04:05.000] [Core:Auth] [INFO] message key=value
//
// with a dimmed timestamp and the label wrapped in the record's Style.
// The namespace segment is omitted for the root namespace. It uses a
// pooled bytes.Buffer internally; buffers larger than 64 KiB are not
// returned to the pool.
//
// SectionLine lays out the "=" rules printed by Logger.Section.
package formatter
