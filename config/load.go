package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// ErrConfigNotFound is returned by Load when the configuration file does
// not exist.
var ErrConfigNotFound = errors.New("config file not found")

// DefaultEnvPrefix prefixes the environment variables read by Load.
const DefaultEnvPrefix = "PREFIXLOG"

// Environment keys overlaid onto the defaults section. With the default
// prefix they are read from PREFIXLOG_LEVEL, PREFIXLOG_PREFIX_ENABLED and
// PREFIXLOG_PREFIX_FORMAT.
const (
	envLevel         = "level"
	envPrefixEnabled = "prefix.enabled"
	envPrefixFormat  = "prefix.format"
)

// LoaderConfig holds optional settings for Load.
type LoaderConfig struct {
	EnvFile   string // .env file loaded before the overlay (optional)
	EnvPrefix string // environment variable prefix (default: DefaultEnvPrefix)
	NoEnv     bool   // skip the environment overlay entirely
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithEnvFile loads path with godotenv before reading the environment.
// Variables already set in the process take precedence over the file.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// WithEnvPrefix changes the environment variable prefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvPrefix = prefix }
}

// WithoutEnv disables the environment overlay.
func WithoutEnv() LoaderOption {
	return func(lc *LoaderConfig) { lc.NoEnv = true }
}

// Load reads the YAML file at path, then overlays environment variables
// onto its defaults section. An empty path skips the file. The result is
// validated before it is returned.
func Load(path string, opts ...LoaderOption) (*FileConfig, error) {
	lc := LoaderConfig{EnvPrefix: DefaultEnvPrefix}
	for _, opt := range opts {
		opt(&lc)
	}

	fc := &FileConfig{}
	if path != "" {
		var err error
		if fc, err = readFile(path); err != nil {
			return nil, err
		}
	}

	if lc.EnvFile != "" {
		if err := godotenv.Load(lc.EnvFile); err != nil {
			return nil, errors.Wrapf(err, "load env file %s", lc.EnvFile)
		}
	}
	if !lc.NoEnv {
		if err := overlayEnv(fc, lc.EnvPrefix); err != nil {
			return nil, err
		}
	}

	if err := fc.Validate(); err != nil {
		return nil, err
	}
	return fc, nil
}

func readFile(path string) (*FileConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(ErrConfigNotFound, path)
		}
		return nil, errors.Wrapf(err, "open config %s", path)
	}
	defer f.Close()

	fc, err := Parse(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return fc, nil
}

// overlayEnv copies the set environment keys onto fc.Defaults. Empty
// variables count as unset.
func overlayEnv(fc *FileConfig, prefix string) error {
	v := viper.New()
	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range []string{envLevel, envPrefixEnabled, envPrefixFormat} {
		if err := v.BindEnv(key); err != nil {
			return errors.Wrapf(err, "bind env %s", key)
		}
	}

	if v.IsSet(envLevel) {
		fc.Defaults.Level = v.GetString(envLevel)
	}
	if v.IsSet(envPrefixEnabled) {
		enabled, err := cast.ToBoolE(v.Get(envPrefixEnabled))
		if err != nil {
			return errors.Wrapf(err, "env %s_PREFIX_ENABLED", strings.ToUpper(prefix))
		}
		fc.Defaults.PrefixEnabled = &enabled
	}
	if v.IsSet(envPrefixFormat) {
		format := v.GetString(envPrefixFormat)
		fc.Defaults.PrefixFormat = &format
	}
	return nil
}
