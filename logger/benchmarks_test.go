package logger

import (
	"io"
	"testing"

	"github.com/philipp01105/prefixlog/core"
	"github.com/philipp01105/prefixlog/handler"
	"github.com/philipp01105/prefixlog/handler/consolehandler"
)

func newDiscardRegistry() *Registry {
	return NewRegistry(consolehandler.New(consolehandler.ConsoleConfig{
		Writer:    io.Discard,
		ErrWriter: io.Discard,
	}))
}

// BenchmarkInfoPrefixed benchmarks Info() with the default prefix on a discard writer.
func BenchmarkInfoPrefixed(b *testing.B) {
	l := newDiscardRegistry().MustGetLogger("bench")

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Info("test message")
	}
}

// BenchmarkInfoNoPrefix benchmarks Info() with prefixes disabled.
func BenchmarkInfoNoPrefix(b *testing.B) {
	r := newDiscardRegistry()
	r.SetDefaultConfig(core.PartialConfig{PrefixEnabled: core.Ptr(false)})
	l := r.MustGetLogger("bench")

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Info("test message")
	}
}

// BenchmarkFilteredDebug benchmarks Debug() when level is Info (bound to a no-op).
// Target: 0 allocs/op
func BenchmarkFilteredDebug(b *testing.B) {
	l := newDiscardRegistry().MustGetLogger("bench")

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Debug("debug message")
	}
}

// BenchmarkNoopOutput isolates the prefix path from any I/O.
func BenchmarkNoopOutput(b *testing.B) {
	l := NewRegistry(&handler.Funcs{Print: handler.Noop}).MustGetLogger("bench")

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Info("test message", 1, 2)
	}
}

// BenchmarkGetLoggerCached benchmarks repeated lookups of an existing name.
func BenchmarkGetLoggerCached(b *testing.B) {
	r := newDiscardRegistry()
	r.MustGetLogger("bench")

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = r.GetLogger("bench")
	}
}

// BenchmarkRebind benchmarks a default change with many live loggers.
func BenchmarkRebind(b *testing.B) {
	r := newDiscardRegistry()
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		r.MustGetLogger(name)
	}
	levels := [2]core.Level{core.DebugLevel, core.InfoLevel}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r.SetLogLevel(levels[i%2])
	}
}

// BenchmarkParallelInfo benchmarks concurrent Info() calls on one logger.
func BenchmarkParallelInfo(b *testing.B) {
	l := newDiscardRegistry().MustGetLogger("bench")

	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			l.Info("parallel message")
		}
	})
}
