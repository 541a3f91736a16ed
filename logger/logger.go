package logger

import (
	"sync/atomic"

	"github.com/philipp01105/prefixlog/core"
	"github.com/philipp01105/prefixlog/handler"
)

// Logger is a named log channel. A Logger is created once per name by its
// Registry and stays the same value for the registry's lifetime; when the
// configuration for its name changes, the registry rebinds its entry
// points in place, so references held by callers never go stale.
//
// All methods are safe for concurrent use, including concurrently with
// reconfiguration.
type Logger struct {
	name  string
	bound atomic.Pointer[bindings]
}

// bindings is one consistent set of entry points. A rebind builds a new
// value and publishes it with a single pointer store.
type bindings struct {
	emit    [numSlots]handler.EmitFunc
	enabled [numSlots]bool
}

const numSlots = 5

// slot maps an emittable level to its index in bindings.
func slot(level core.Level) (int, bool) {
	switch level {
	case core.TraceLevel:
		return 0, true
	case core.DebugLevel:
		return 1, true
	case core.InfoLevel:
		return 2, true
	case core.WarnLevel:
		return 3, true
	case core.ErrorLevel:
		return 4, true
	}
	return 0, false
}

// noopBindings is the state of a handle before its first bind.
var noopBindings = func() *bindings {
	b := &bindings{}
	for i := range b.emit {
		b.emit[i] = handler.Noop
	}
	return b
}()

func newLogger(name string) *Logger {
	l := &Logger{name: name}
	l.bound.Store(noopBindings)
	return l
}

// Name returns the trimmed name the logger was looked up with.
func (l *Logger) Name() string {
	return l.name
}

// Trace logs at trace level
func (l *Logger) Trace(args ...any) {
	l.bound.Load().emit[0](args...)
}

// Debug logs at debug level
func (l *Logger) Debug(args ...any) {
	l.bound.Load().emit[1](args...)
}

// Info logs at info level
func (l *Logger) Info(args ...any) {
	l.bound.Load().emit[2](args...)
}

// Warn logs at warn level
func (l *Logger) Warn(args ...any) {
	l.bound.Load().emit[3](args...)
}

// Error logs at error level
func (l *Logger) Error(args ...any) {
	l.bound.Load().emit[4](args...)
}

// Log logs at the given level. SilentLevel and undefined levels log
// nothing.
func (l *Logger) Log(level core.Level, args ...any) {
	if i, ok := slot(level); ok {
		l.bound.Load().emit[i](args...)
	}
}

// Enabled reports whether calls at level currently pass the level gate.
func (l *Logger) Enabled(level core.Level) bool {
	i, ok := slot(level)
	return ok && l.bound.Load().enabled[i]
}
