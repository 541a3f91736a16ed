package logger

import (
	"sync"

	"github.com/philipp01105/prefixlog/core"
)

var (
	defaultRegistry *Registry
	defaultMu       sync.Mutex
)

// Default returns the process-wide registry, creating it on first use
// with the library defaults and a console output.
func Default() *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultRegistry == nil {
		defaultRegistry = NewBuilder().Build()
	}
	return defaultRegistry
}

// SetDefault replaces the process-wide registry. Passing nil discards it,
// so the next use starts over from the library defaults. Loggers obtained
// from the previous registry keep following that registry.
func SetDefault(r *Registry) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultRegistry = r
}

// Package-level convenience functions using the default registry

// SetDefaultConfig updates the runtime defaults of the default registry
func SetDefaultConfig(p core.PartialConfig) {
	Default().SetDefaultConfig(p)
}

// SetLoggerConfig updates the override for name in the default registry
func SetLoggerConfig(name string, p core.PartialConfig) error {
	return Default().SetLoggerConfig(name, p)
}

// SetLogLevel sets the default level of the default registry
func SetLogLevel(level Level) {
	Default().SetLogLevel(level)
}

// SetLoggerLevel sets the level override for name in the default registry
func SetLoggerLevel(name string, level Level) error {
	return Default().SetLoggerLevel(name, level)
}

// GetLogger returns the named logger from the default registry
func GetLogger(name string) (*Logger, error) {
	return Default().GetLogger(name)
}

// MustGetLogger returns the named logger from the default registry and
// panics if name is blank
func MustGetLogger(name string) *Logger {
	return Default().MustGetLogger(name)
}

// SetOutput replaces the output of the default registry
func SetOutput(out any) {
	Default().SetOutput(out)
}

// DefaultConfig returns a copy of the default registry's runtime defaults
func DefaultConfig() core.Config {
	return Default().DefaultConfig()
}

// PerLoggerConfig returns a copy of the default registry's overrides
func PerLoggerConfig() map[string]core.PartialConfig {
	return Default().PerLoggerConfig()
}

// LibraryDefaults returns a copy of the default registry's library defaults
func LibraryDefaults() core.Config {
	return Default().LibraryDefaults()
}
