package logger

import (
	"github.com/philipp01105/prefixlog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	TraceLevel  = core.TraceLevel
	DebugLevel  = core.DebugLevel
	InfoLevel   = core.InfoLevel
	WarnLevel   = core.WarnLevel
	ErrorLevel  = core.ErrorLevel
	SilentLevel = core.SilentLevel
)

// ParseLevel converts a string to a Level, falling back to InfoLevel for
// unknown names. Use core.ParseLevel to detect invalid input.
func ParseLevel(s string) Level {
	l, err := core.ParseLevel(s)
	if err != nil {
		return InfoLevel
	}
	return l
}
