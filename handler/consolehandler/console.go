package consolehandler

import (
	"io"
	"sync"

	"github.com/mattn/go-colorable"
	"github.com/pkg/errors"

	"github.com/philipp01105/fanlog/core"
	"github.com/philipp01105/fanlog/formatter"
)

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: colorable stdout)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = colorable.NewColorableStdout()
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
}

// ConsoleHandler writes formatted records and raw lines to a writer.
type ConsoleHandler struct {
	mu              sync.Mutex
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	closed          bool
}

// NewConsoleHandler creates a new console handler.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	applyConsoleDefaults(&cfg)
	h := &ConsoleHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
	}
	// Cache WriterFormatter for the single-Write path
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)
	return h
}

// ErrClosed is returned by writes after Close.
var ErrClosed = errors.New("console handler closed")

// Handle formats and writes a record.
func (h *ConsoleHandler) Handle(rec *core.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrClosed
	}

	if h.writerFormatter != nil {
		return errors.Wrap(h.writerFormatter.FormatTo(rec, h.writer), "write record")
	}

	data, err := h.formatter.Format(rec)
	if err != nil {
		return errors.Wrap(err, "format record")
	}
	_, err = h.writer.Write(data)
	return errors.Wrap(err, "write record")
}

// WriteLine writes line followed by a newline.
func (h *ConsoleHandler) WriteLine(line string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrClosed
	}

	_, err := io.WriteString(h.writer, line+"\n")
	return errors.Wrap(err, "write line")
}

// Close marks the handler closed. The writer itself is not closed since
// it is normally stdout.
func (h *ConsoleHandler) Close() error {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()
	return nil
}
