// Package config loads registry configuration from a YAML file, an
// optional .env file and the process environment.
//
// A file has a defaults section, applied as runtime defaults, and a
// loggers section of per-logger overrides:
//
//	defaults:
//	  level: info
//	  prefixFormat: "[%appName] (%loggerName) %logLevel:"
//	  placeholders:
//	    appName: shop
//	loggers:
//	  db:
//	    level: debug
//	    prefixEnabled: false
//
// Placeholder keys may omit the leading percent sign. Keys are
// case-sensitive and unknown keys are ignored. The environment
// variables PREFIXLOG_LEVEL, PREFIXLOG_PREFIX_ENABLED and
// PREFIXLOG_PREFIX_FORMAT override the defaults section.
package config
