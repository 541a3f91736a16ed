package handler

import (
	"fmt"
	"strings"

	"github.com/philipp01105/prefixlog/core"
)

// EmitFunc writes one log call. Arguments are opaque values forwarded in
// order.
type EmitFunc func(args ...any)

// Noop discards its arguments.
func Noop(...any) {}

// Tracer is implemented by outputs with a trace-level write function.
type Tracer interface {
	Trace(args ...any)
}

// Debugger is implemented by outputs with a debug-level write function.
type Debugger interface {
	Debug(args ...any)
}

// Infoer is implemented by outputs with an info-level write function.
type Infoer interface {
	Info(args ...any)
}

// Warner is implemented by outputs with a warn-level write function.
type Warner interface {
	Warn(args ...any)
}

// Errorer is implemented by outputs with an error-level write function.
type Errorer interface {
	Error(args ...any)
}

// Printer is the generic write function used when an output lacks the
// level-specific one.
type Printer interface {
	Print(args ...any)
}

// Selector is an optional interface for outputs that decide per level at
// lookup time. Select returns nil when the output has nothing for level.
type Selector interface {
	Select(level core.Level) EmitFunc
}

// Lookup returns the write function of out for level. A Selector is asked
// first; otherwise the level-specific method is used, then Print. When
// none is available, or out is nil, Lookup returns Noop.
//
// A typed nil pointer held in out is not nil to Lookup: its methods are
// returned as usual and run with a nil receiver. The outputs in this
// module and a nil *Funcs tolerate that; a custom output must check its
// receiver itself.
func Lookup(out any, level core.Level) EmitFunc {
	if fn, ok := resolve(out, level); ok {
		return fn
	}
	return Noop
}

// Available reports whether out has any write function for level,
// including the Print fallback.
func Available(out any, level core.Level) bool {
	_, ok := resolve(out, level)
	return ok
}

func resolve(out any, level core.Level) (EmitFunc, bool) {
	if out == nil {
		return nil, false
	}
	if f, ok := out.(*Funcs); ok && f == nil {
		return nil, false
	}

	if s, ok := out.(Selector); ok {
		fn := s.Select(level)
		return fn, fn != nil
	}

	if fn := levelMethod(out, level); fn != nil {
		return fn, true
	}
	if p, ok := out.(Printer); ok {
		return p.Print, true
	}
	return nil, false
}

func levelMethod(out any, level core.Level) EmitFunc {
	switch level {
	case core.TraceLevel:
		if o, ok := out.(Tracer); ok {
			return o.Trace
		}
	case core.DebugLevel:
		if o, ok := out.(Debugger); ok {
			return o.Debug
		}
	case core.InfoLevel:
		if o, ok := out.(Infoer); ok {
			return o.Info
		}
	case core.WarnLevel:
		if o, ok := out.(Warner); ok {
			return o.Warn
		}
	case core.ErrorLevel:
		if o, ok := out.(Errorer); ok {
			return o.Error
		}
	}
	return nil
}

// Sprint joins args the way a console does: operands separated by single
// spaces, no trailing newline.
func Sprint(args ...any) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}
