package core

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidLevel is returned when a level name cannot be parsed.
var ErrInvalidLevel = errors.New("invalid log level")

// Level represents the severity of a log call. The numeric value is the
// level's rank: a logger configured at level L emits a call at level S
// only when L <= S.
type Level int8

const (
	// TraceLevel for the most detailed diagnostics
	TraceLevel Level = 10
	// DebugLevel for debugging information
	DebugLevel Level = 20
	// InfoLevel for general informational messages (default)
	InfoLevel Level = 30
	// WarnLevel for warning messages
	WarnLevel Level = 40
	// ErrorLevel for error messages
	ErrorLevel Level = 50
	// SilentLevel sits above every real level and disables all emission
	SilentLevel Level = 100
)

// emitLevels lists the levels that have an entry point, ascending.
var emitLevels = [...]Level{TraceLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel}

// EmitLevels returns the five levels that can be emitted, in ascending order.
func EmitLevels() []Level {
	out := make([]Level, len(emitLevels))
	copy(out, emitLevels[:])
	return out
}

// String returns the upper-case name of the level
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case SilentLevel:
		return "SILENT"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	switch l {
	case TraceLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel, SilentLevel:
		return true
	}
	return false
}

// Enables reports whether a logger configured at l forwards calls made at s.
func (l Level) Enables(s Level) bool {
	return l <= s
}

// ParseLevel converts a level name to a Level. Matching is case-insensitive
// and "warning" is accepted for WarnLevel.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return TraceLevel, nil
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	case "silent":
		return SilentLevel, nil
	default:
		return 0, errors.Wrapf(ErrInvalidLevel, "%q", s)
	}
}

// MarshalText encodes the level as its lower-case name.
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, errors.Wrapf(ErrInvalidLevel, "%d", int(l))
	}
	return []byte(strings.ToLower(l.String())), nil
}

// UnmarshalText decodes a level name.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
