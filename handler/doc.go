// Package handler provides the Handler interface and adapters that let
// other logging front-ends print through fanlog.
//
// A Handler receives fully populated core.Records and writes one line
// per record. Handlers that can also print a pre-rendered line without
// the record prefix implement LineWriter; the logger uses it for
// section rules.
//
// Built-in handlers:
//
//   - consolehandler.ConsoleHandler writes to stdout (or any io.Writer),
//     one synchronous Write per line.
//   - SlogHandler adapts a Handler to log/slog.Handler. slog groups
//     become namespace segments, so slog.New(h).WithGroup("API") prints
//     like fanlog's Scope("API").
//   - zaphandler.Core adapts a Handler to zapcore.Core in the same way,
//     with zap logger names as namespace segments.
package handler
