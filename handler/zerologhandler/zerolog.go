// Package zerologhandler adapts a zerolog.Logger to the prefixlog output
// interfaces. Every level maps to the zerolog level of the same name;
// Print writes an event without a level.
package zerologhandler

import (
	"github.com/rs/zerolog"

	"github.com/philipp01105/prefixlog/handler"
)

// Output writes log calls as zerolog messages.
type Output struct {
	logger zerolog.Logger
}

// New creates an output writing to l.
func New(l zerolog.Logger) *Output {
	return &Output{logger: l}
}

var nop = zerolog.Nop()

// log returns the wrapped logger; a nil *Output discards everything.
func (o *Output) log() *zerolog.Logger {
	if o == nil {
		return &nop
	}
	return &o.logger
}

func send(e *zerolog.Event, args []any) {
	if e == nil {
		return
	}
	e.Msg(handler.Sprint(args...))
}

// Trace writes at zerolog.TraceLevel.
func (o *Output) Trace(args ...any) { send(o.log().Trace(), args) }

// Debug writes at zerolog.DebugLevel.
func (o *Output) Debug(args ...any) { send(o.log().Debug(), args) }

// Info writes at zerolog.InfoLevel.
func (o *Output) Info(args ...any) { send(o.log().Info(), args) }

// Warn writes at zerolog.WarnLevel.
func (o *Output) Warn(args ...any) { send(o.log().Warn(), args) }

// Error writes at zerolog.ErrorLevel.
func (o *Output) Error(args ...any) { send(o.log().Error(), args) }

// Print writes an event with no level.
func (o *Output) Print(args ...any) { send(o.log().Log(), args) }
