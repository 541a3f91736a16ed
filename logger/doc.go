// Package logger is the public API of prefixlog. Most users only need to
// import this package.
//
// A Registry hands out named Loggers. Each Logger has five entry points,
// Trace through Error, that forward their arguments to an output
// primitive, optionally preceded by a prefix rendered from a template:
//
//	log := logger.MustGetLogger("svc")
//	log.Info("ready", 8080) // -> "(svc) INFO:", "ready", 8080
//
// Configuration comes in three layers. Library defaults are fixed when
// the registry is built. Runtime defaults start as a copy and change
// through SetDefaultConfig and SetLogLevel. Per-logger overrides change
// through SetLoggerConfig and SetLoggerLevel and always win over runtime
// defaults for the fields they set; placeholder maps are merged, with the
// override winning on collision.
//
// Loggers are never replaced. When configuration changes, the registry
// recomputes the affected loggers' entry points and publishes them with
// one atomic store, so a *Logger obtained earlier always reflects the
// current configuration. Prefixes are rendered at that point, once per
// level, so an emission costs one atomic load and a function call, and a
// call below the configured level costs only the load.
//
// The output primitive is any value implementing some of the handler
// package's write interfaces. Missing level functions fall back to Print;
// when that is missing too, the entry point is a no-op.
//
// The package keeps a lazily created default registry behind the
// package-level functions. Tests can install a fresh one with SetDefault.
package logger
