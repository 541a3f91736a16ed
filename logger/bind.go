package logger

import (
	"github.com/philipp01105/prefixlog/core"
	"github.com/philipp01105/prefixlog/formatter"
	"github.com/philipp01105/prefixlog/handler"
)

// slotLevels lists the level of each bindings slot.
var slotLevels = [numSlots]core.Level{
	core.TraceLevel,
	core.DebugLevel,
	core.InfoLevel,
	core.WarnLevel,
	core.ErrorLevel,
}

// gate builds the entry points of the logger called name from its
// effective configuration. Each slot ends up in one of three states:
// no-op when the level gate rejects it, passthrough when prefixes are
// disabled, or prefixed with the prefix rendered here once per level.
func gate(name string, eff core.Config, out any) *bindings {
	b := &bindings{}
	for i, level := range slotLevels {
		if !eff.Level.Enables(level) {
			b.emit[i] = handler.Noop
			continue
		}
		b.enabled[i] = true

		fn := handler.Lookup(out, level)
		if !eff.PrefixEnabled {
			b.emit[i] = fn
			continue
		}
		b.emit[i] = withPrefix(fn, formatter.Prefix(eff.PrefixFormat, eff.Placeholders, name, level))
	}
	return b
}

// withPrefix returns fn with prefix prepended as its first argument.
func withPrefix(fn handler.EmitFunc, prefix string) handler.EmitFunc {
	return func(args ...any) {
		full := make([]any, 0, len(args)+1)
		full = append(full, prefix)
		full = append(full, args...)
		fn(full...)
	}
}
