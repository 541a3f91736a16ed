// Package logrushandler adapts a *logrus.Logger to the prefixlog output
// interfaces.
package logrushandler

import (
	"github.com/sirupsen/logrus"
)

// Output writes log calls through logrus, joining arguments with spaces.
// A nil *Output writes nothing.
type Output struct {
	logger *logrus.Logger
}

// New creates an output writing to l. A nil l uses logrus.StandardLogger().
func New(l *logrus.Logger) *Output {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &Output{logger: l}
}

// Trace writes at logrus.TraceLevel.
func (o *Output) Trace(args ...any) {
	if o != nil {
		o.logger.Traceln(args...)
	}
}

// Debug writes at logrus.DebugLevel.
func (o *Output) Debug(args ...any) {
	if o != nil {
		o.logger.Debugln(args...)
	}
}

// Info writes at logrus.InfoLevel.
func (o *Output) Info(args ...any) {
	if o != nil {
		o.logger.Infoln(args...)
	}
}

// Warn writes at logrus.WarnLevel.
func (o *Output) Warn(args ...any) {
	if o != nil {
		o.logger.Warnln(args...)
	}
}

// Error writes at logrus.ErrorLevel.
func (o *Output) Error(args ...any) {
	if o != nil {
		o.logger.Errorln(args...)
	}
}

// Print writes at logrus.InfoLevel.
func (o *Output) Print(args ...any) {
	if o != nil {
		o.logger.Println(args...)
	}
}
