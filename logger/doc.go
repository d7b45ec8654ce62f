// Package logger is the public API of fanlog. Most users only need to
// import this package.
//
// A Logger prints one coloured line per call:
//
//	[12:00:00.000] [API] [ERR] User not found
//
// The timestamp is dimmed, the namespace segment appears only for
// scoped loggers, and the label carries the level colour. Loggers are
// immutable; Scope and Child (aliases) return a new Logger whose
// namespace is the parent's joined with ":".
//
// The package initializes a root Logger writing to stdout in init().
// The package-level functions Info, Section, Scope, etc. delegate to
// it, so simple programs can log without any setup:
//
//	logger.Section("build")
//	api := logger.Scope("API")
//	api.Info("GET /users")
//
// Debug lines are printed only while the DEBUG environment variable is
// exactly "true" or "1". The variable is read on every Debug call.
//
// Fatal prints a FATAL line and returns; it never exits the process.
//
// For custom configuration, use the Builder:
//
//	log := logger.NewBuilder().
//	    WithNamespace("worker").
//	    WithConfig(config.Config{SectionWidth: 60}).
//	    Build()
package logger
