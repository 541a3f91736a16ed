// Package zaphandler adapts a *zap.Logger to the prefixlog output
// interfaces.
//
// zap has no trace level, so the adapter deliberately leaves out Trace:
// trace calls fall back to Print, which writes at info level.
package zaphandler

import (
	"go.uber.org/zap"
)

// Output writes log calls through a sugared zap logger, joining
// arguments with spaces.
type Output struct {
	sugar *zap.SugaredLogger
}

var nop = zap.NewNop().Sugar()

// New creates an output writing to l. A nil l discards everything.
func New(l *zap.Logger) *Output {
	if l == nil {
		l = zap.NewNop()
	}
	return &Output{sugar: l.Sugar()}
}

// log returns the sugared logger; a nil *Output discards everything.
func (o *Output) log() *zap.SugaredLogger {
	if o == nil {
		return nop
	}
	return o.sugar
}

// Debug writes at zap.DebugLevel.
func (o *Output) Debug(args ...any) { o.log().Debugln(args...) }

// Info writes at zap.InfoLevel.
func (o *Output) Info(args ...any) { o.log().Infoln(args...) }

// Warn writes at zap.WarnLevel.
func (o *Output) Warn(args ...any) { o.log().Warnln(args...) }

// Error writes at zap.ErrorLevel.
func (o *Output) Error(args ...any) { o.log().Errorln(args...) }

// Print writes at zap.InfoLevel.
func (o *Output) Print(args ...any) { o.log().Infoln(args...) }

// Sync flushes any buffered zap output.
func (o *Output) Sync() error {
	return o.log().Sync()
}
