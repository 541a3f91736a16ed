package consolehandler

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
)

// ConsoleConfig holds configuration for the console output
type ConsoleConfig struct {
	// Writer receives trace, debug, info and print calls (default: os.Stdout)
	Writer io.Writer
	// ErrWriter receives warn and error calls (default: os.Stderr)
	ErrWriter io.Writer
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.ErrWriter == nil {
		cfg.ErrWriter = os.Stderr
	}
}

// Console writes each call as one line, operands separated by spaces.
// A single mutex serializes writes to both writers, so lines from
// concurrent callers never interleave even when both writers share a
// terminal.
type Console struct {
	out    io.Writer
	errOut io.Writer
	mu     sync.Mutex // protects buf and both writers
	buf    bytes.Buffer
}

// New creates a console output.
func New(cfg ConsoleConfig) *Console {
	applyConsoleDefaults(&cfg)
	c := &Console{
		out:    cfg.Writer,
		errOut: cfg.ErrWriter,
	}
	c.buf.Grow(256)
	return c
}

// write formats args into the handler-owned buffer and writes it under mu
// to ErrWriter when toErr is set, otherwise to Writer. Write errors are
// dropped: a log call has nowhere to report them. A nil *Console writes
// nothing.
func (c *Console) write(toErr bool, args []any) {
	if c == nil {
		return
	}
	w := c.out
	if toErr {
		w = c.errOut
	}
	c.mu.Lock()
	c.buf.Reset()
	fmt.Fprintln(&c.buf, args...)
	_, _ = w.Write(c.buf.Bytes())
	c.mu.Unlock()
}

// Trace writes to Writer.
func (c *Console) Trace(args ...any) { c.write(false, args) }

// Debug writes to Writer.
func (c *Console) Debug(args ...any) { c.write(false, args) }

// Info writes to Writer.
func (c *Console) Info(args ...any) { c.write(false, args) }

// Warn writes to ErrWriter.
func (c *Console) Warn(args ...any) { c.write(true, args) }

// Error writes to ErrWriter.
func (c *Console) Error(args ...any) { c.write(true, args) }

// Print writes to Writer.
func (c *Console) Print(args ...any) { c.write(false, args) }
