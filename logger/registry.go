package logger

import (
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/philipp01105/prefixlog/core"
	"github.com/philipp01105/prefixlog/handler/consolehandler"
)

// ErrInvalidArgument is returned when a logger name is empty or blank.
var ErrInvalidArgument = errors.New("invalid argument")

// DefaultPrefixFormat is the prefix template of the built-in library
// defaults.
const DefaultPrefixFormat = "(%loggerName) %logLevel:"

// LibraryConfig returns the built-in library defaults: info level,
// prefixes enabled with DefaultPrefixFormat, and no placeholders.
func LibraryConfig() core.Config {
	return core.Config{
		Level:         core.InfoLevel,
		PrefixEnabled: true,
		PrefixFormat:  DefaultPrefixFormat,
		Placeholders:  map[string]string{},
	}
}

// Registry owns the configuration layers and the cache of Logger
// handles. One mutex guards defaults, overrides and handles together,
// and every rebind runs under it, so a rebind never observes a
// half-applied change.
//
// The zero value is ready to use: it has the built-in library defaults
// and no output, so its loggers write nothing until SetOutput.
type Registry struct {
	mu        sync.Mutex
	output    any
	library   core.Config
	defaults  core.Config
	overrides map[string]core.PartialConfig
	loggers   map[string]*Logger
}

// Builder provides a fluent API for building Registry instances
type Builder struct {
	output  any
	library core.Config
}

// NewBuilder creates a new registry builder with the built-in library
// defaults and a console output.
func NewBuilder() *Builder {
	return &Builder{library: LibraryConfig()}
}

// WithOutput sets the output primitive. It may implement any subset of
// the handler package's write interfaces; nil makes every entry point a
// no-op.
func (b *Builder) WithOutput(out any) *Builder {
	b.output = out
	return b
}

// WithLibraryDefaults replaces the library defaults. They are fixed for
// the lifetime of the built registry.
func (b *Builder) WithLibraryDefaults(cfg core.Config) *Builder {
	b.library = cfg.Clone()
	return b
}

// Build creates the Registry. Runtime defaults start as a copy of the
// library defaults.
func (b *Builder) Build() *Registry {
	out := b.output
	if out == nil {
		out = consolehandler.New(consolehandler.ConsoleConfig{})
	}
	return newRegistry(out, b.library)
}

// NewRegistry creates a registry writing to out with the built-in library
// defaults. Unlike the Builder, a nil out is kept as is.
func NewRegistry(out any) *Registry {
	return newRegistry(out, LibraryConfig())
}

func newRegistry(out any, library core.Config) *Registry {
	library = library.Clone()
	return &Registry{
		output:    out,
		library:   library,
		defaults:  library.Clone(),
		overrides: make(map[string]core.PartialConfig),
		loggers:   make(map[string]*Logger),
	}
}

// init fills in the state of a zero-value Registry. r.mu must be held.
func (r *Registry) init() {
	if r.loggers != nil {
		return
	}
	r.library = LibraryConfig()
	r.defaults = r.library.Clone()
	r.overrides = make(map[string]core.PartialConfig)
	r.loggers = make(map[string]*Logger)
}

// checkName trims name and rejects blank names.
func checkName(name string) (string, error) {
	key := strings.TrimSpace(name)
	if key == "" {
		return "", errors.Wrap(ErrInvalidArgument, "logger name must be a non-empty string")
	}
	return key, nil
}

// bind rebinds l from the current state. r.mu must be held.
func (r *Registry) bind(l *Logger) {
	eff := core.Resolve(r.defaults, r.overrides[l.name])
	l.bound.Store(gate(l.name, eff, r.output))
}

func (r *Registry) bindAll() {
	for _, l := range r.loggers {
		r.bind(l)
	}
}

// SetDefaultConfig overwrites every runtime default present in p. A
// present Placeholders map replaces the default map rather than merging
// into it. Every existing logger is rebound; per-logger overrides still
// win for the fields they set.
func (r *Registry) SetDefaultConfig(p core.PartialConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.init()

	r.defaults = r.defaults.Apply(p)
	r.bindAll()
}

// SetLoggerConfig merges p into the override stored for name, field by
// field, creating the override if needed. Fields absent from p keep their
// stored value. An existing logger for name is rebound immediately.
func (r *Registry) SetLoggerConfig(name string, p core.PartialConfig) error {
	key, err := checkName(name)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.init()

	r.overrides[key] = r.overrides[key].Merge(p)
	if l, ok := r.loggers[key]; ok {
		r.bind(l)
	}
	return nil
}

// SetLogLevel sets the runtime default level.
func (r *Registry) SetLogLevel(level core.Level) {
	r.SetDefaultConfig(core.PartialConfig{Level: &level})
}

// SetLoggerLevel sets the level override for name.
func (r *Registry) SetLoggerLevel(name string, level core.Level) error {
	return r.SetLoggerConfig(name, core.PartialConfig{Level: &level})
}

// GetLogger returns the logger for the trimmed name, creating and binding
// it on first use. Repeated calls return the same *Logger.
func (r *Registry) GetLogger(name string) (*Logger, error) {
	key, err := checkName(name)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.init()

	if l, ok := r.loggers[key]; ok {
		return l, nil
	}

	l := newLogger(key)
	r.loggers[key] = l
	r.bind(l)
	return l, nil
}

// MustGetLogger is like GetLogger but panics if name is blank.
func (r *Registry) MustGetLogger(name string) *Logger {
	l, err := r.GetLogger(name)
	if err != nil {
		panic(err)
	}
	return l
}

// SetOutput replaces the output primitive and rebinds every logger.
func (r *Registry) SetOutput(out any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.init()

	r.output = out
	r.bindAll()
}

// DefaultConfig returns a copy of the runtime defaults.
func (r *Registry) DefaultConfig() core.Config {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.init()
	return r.defaults.Clone()
}

// LibraryDefaults returns a copy of the library defaults.
func (r *Registry) LibraryDefaults() core.Config {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.init()
	return r.library.Clone()
}

// PerLoggerConfig returns a copy of every stored override, keyed by
// logger name.
func (r *Registry) PerLoggerConfig() map[string]core.PartialConfig {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.init()

	out := make(map[string]core.PartialConfig, len(r.overrides))
	for k, v := range r.overrides {
		out[k] = v.Clone()
	}
	return out
}

// EffectiveConfig returns the configuration currently applied to the
// logger called name, whether or not that logger exists yet.
func (r *Registry) EffectiveConfig(name string) (core.Config, error) {
	key, err := checkName(name)
	if err != nil {
		return core.Config{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.init()
	return core.Resolve(r.defaults, r.overrides[key]), nil
}

// Names returns the names of every logger created so far, sorted.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.init()

	names := make([]string, 0, len(r.loggers))
	for name := range r.loggers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
