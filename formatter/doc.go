// Package formatter renders prefix templates.
//
// A template is literal text with tokens of the form %name, where name is
// one or more ASCII letters, digits or underscores, and the escape %%,
// which renders a single percent sign. Render substitutes tokens from a
// map and copies unresolved tokens through verbatim, so a typo in a
// template shows up in the output instead of failing the log call.
//
// Prefix adds the two reserved tokens, %loggerName and %logLevel, which
// always resolve and take precedence over caller placeholders. Loggers
// call Prefix once per level whenever their configuration changes, never
// on the emission path.
//
// Render writes into a pooled bytes.Buffer. Buffers larger than 64 KiB
// are not returned to the pool to prevent a single large template from
// permanently inflating memory usage.
package formatter
