package handler

import "github.com/philipp01105/prefixlog/core"

// MultiOutput sends every call to multiple outputs
type MultiOutput struct {
	outputs []any
}

// Multi creates an output that fans each call out to outs, in order.
// Each child is resolved with Lookup, so children keep their own
// fallbacks.
func Multi(outs ...any) *MultiOutput {
	children := make([]any, 0, len(outs))
	for _, o := range outs {
		if o != nil {
			children = append(children, o)
		}
	}
	return &MultiOutput{outputs: children}
}

// Select implements Selector. It returns nil when no child can write
// level, so a MultiOutput of unavailable outputs behaves like one.
func (m *MultiOutput) Select(level core.Level) EmitFunc {
	fns := make([]EmitFunc, 0, len(m.outputs))
	for _, o := range m.outputs {
		if fn, ok := resolve(o, level); ok {
			fns = append(fns, fn)
		}
	}

	switch len(fns) {
	case 0:
		return nil
	case 1:
		return fns[0]
	}
	return func(args ...any) {
		for _, fn := range fns {
			fn(args...)
		}
	}
}
