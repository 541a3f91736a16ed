package handler

import "github.com/philipp01105/prefixlog/core"

// Funcs is an output assembled from plain functions. Any field may be
// nil; a missing level function falls back to Print, and a missing Print
// leaves the level unavailable.
type Funcs struct {
	Trace EmitFunc
	Debug EmitFunc
	Info  EmitFunc
	Warn  EmitFunc
	Error EmitFunc
	Print EmitFunc
}

// Select implements Selector. Both Funcs and *Funcs satisfy it; a nil
// *Funcs selects nothing.
func (f Funcs) Select(level core.Level) EmitFunc {
	var fn EmitFunc
	switch level {
	case core.TraceLevel:
		fn = f.Trace
	case core.DebugLevel:
		fn = f.Debug
	case core.InfoLevel:
		fn = f.Info
	case core.WarnLevel:
		fn = f.Warn
	case core.ErrorLevel:
		fn = f.Error
	}
	if fn != nil {
		return fn
	}
	return f.Print
}
