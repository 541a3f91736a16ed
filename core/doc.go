// Package core defines the shared types used across prefixlog.
//
// It provides the Level type for severity filtering, the Config and
// PartialConfig types that describe a logger's configuration, and
// Resolve, which computes the effective configuration of one logger.
//
// Levels are ranked by their numeric value (trace=10 up to error=50)
// with SilentLevel (100) above every real level, so the level gate is a
// single integer comparison.
//
// Configuration is layered. Library defaults are fixed when a registry is
// built. Runtime defaults start as a copy of them and change through
// Config.Apply, where a present Placeholders map replaces the whole map.
// Per-logger overrides are PartialConfig values updated field by field
// through PartialConfig.Merge. Resolve combines runtime defaults with one
// override: scalar fields are override-wins, Placeholders are a union
// with the override winning on collision.
package core
