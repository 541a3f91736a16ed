package config

import (
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/philipp01105/prefixlog/core"
	"github.com/philipp01105/prefixlog/formatter"
)

// LoggerConfig is one configuration section as written in a file. Every
// field is optional; an empty Level and nil pointers mean "not set".
type LoggerConfig struct {
	Level         string            `yaml:"level,omitempty"`
	PrefixEnabled *bool             `yaml:"prefixEnabled,omitempty"`
	PrefixFormat  *string           `yaml:"prefixFormat,omitempty"`
	Placeholders  map[string]string `yaml:"placeholders,omitempty"`
}

// FileConfig is the root of a configuration file.
type FileConfig struct {
	// Defaults become the registry's runtime defaults.
	Defaults LoggerConfig `yaml:"defaults"`
	// Loggers holds per-logger overrides keyed by logger name.
	Loggers map[string]LoggerConfig `yaml:"loggers,omitempty"`
}

// Target receives decoded configuration. *logger.Registry implements it.
type Target interface {
	SetDefaultConfig(p core.PartialConfig)
	SetLoggerConfig(name string, p core.PartialConfig) error
}

// Partial converts c into a partial configuration. Placeholder keys
// written without the leading percent sign are stored as tokens, so
// "appName" in a file feeds %appName. It fails only on an unknown level
// name.
func (c LoggerConfig) Partial() (core.PartialConfig, error) {
	p := core.PartialConfig{
		PrefixEnabled: c.PrefixEnabled,
		PrefixFormat:  c.PrefixFormat,
		Placeholders:  formatter.Tokens(c.Placeholders),
	}
	if c.Level != "" {
		level, err := core.ParseLevel(c.Level)
		if err != nil {
			return core.PartialConfig{}, err
		}
		p.Level = &level
	}
	return p.Clone(), nil
}

// FromConfig converts a complete configuration into its file form.
func FromConfig(c core.Config) LoggerConfig {
	lc := LoggerConfig{
		Level:         strings.ToLower(c.Level.String()),
		PrefixEnabled: core.Ptr(c.PrefixEnabled),
		PrefixFormat:  core.Ptr(c.PrefixFormat),
	}
	if len(c.Placeholders) > 0 {
		lc.Placeholders = c.Clone().Placeholders
	}
	return lc
}

// Parse decodes a YAML configuration from r. Keys are case-sensitive and
// unknown keys are ignored. An empty document yields an empty FileConfig.
func Parse(r io.Reader) (*FileConfig, error) {
	fc := &FileConfig{}
	if err := yaml.NewDecoder(r).Decode(fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "decode config")
	}
	return fc, nil
}

// Validate reports every invalid level and blank logger name in fc.
func (fc *FileConfig) Validate() error {
	var err error
	if _, e := fc.Defaults.Partial(); e != nil {
		err = multierr.Append(err, errors.Wrap(e, "defaults"))
	}
	for _, name := range fc.names() {
		if strings.TrimSpace(name) == "" {
			err = multierr.Append(err, errors.Errorf("loggers: blank logger name %q", name))
			continue
		}
		if _, e := fc.Loggers[name].Partial(); e != nil {
			err = multierr.Append(err, errors.Wrapf(e, "loggers.%s", name))
		}
	}
	return err
}

// Apply validates fc and then installs it on t: the defaults section
// through SetDefaultConfig and each logger section through
// SetLoggerConfig, in name order. Nothing is applied when validation
// fails.
func (fc *FileConfig) Apply(t Target) error {
	if err := fc.Validate(); err != nil {
		return err
	}

	defaults, _ := fc.Defaults.Partial()
	if !defaults.IsEmpty() {
		t.SetDefaultConfig(defaults)
	}
	for _, name := range fc.names() {
		p, _ := fc.Loggers[name].Partial()
		if err := t.SetLoggerConfig(name, p); err != nil {
			return errors.Wrapf(err, "loggers.%s", name)
		}
	}
	return nil
}

func (fc *FileConfig) names() []string {
	names := make([]string, 0, len(fc.Loggers))
	for name := range fc.Loggers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
