package handler

import (
	"context"
	"log/slog"
)

// LevelTrace is the slog level used for trace calls.
const LevelTrace = slog.Level(-8)

// SlogOutput is an adapter that writes log calls to a *slog.Logger.
// The joined arguments become the record message. A nil *SlogOutput
// writes nothing.
type SlogOutput struct {
	logger *slog.Logger
}

// NewSlog creates an output writing to l. A nil l uses slog.Default().
func NewSlog(l *slog.Logger) *SlogOutput {
	if l == nil {
		l = slog.Default()
	}
	return &SlogOutput{logger: l}
}

func (s *SlogOutput) log(level slog.Level, args []any) {
	if s == nil {
		return
	}
	ctx := context.Background()
	if !s.logger.Enabled(ctx, level) {
		return
	}
	s.logger.Log(ctx, level, Sprint(args...))
}

// Trace writes at LevelTrace.
func (s *SlogOutput) Trace(args ...any) { s.log(LevelTrace, args) }

// Debug writes at slog.LevelDebug.
func (s *SlogOutput) Debug(args ...any) { s.log(slog.LevelDebug, args) }

// Info writes at slog.LevelInfo.
func (s *SlogOutput) Info(args ...any) { s.log(slog.LevelInfo, args) }

// Warn writes at slog.LevelWarn.
func (s *SlogOutput) Warn(args ...any) { s.log(slog.LevelWarn, args) }

// Error writes at slog.LevelError.
func (s *SlogOutput) Error(args ...any) { s.log(slog.LevelError, args) }

// Print writes at slog.LevelInfo.
func (s *SlogOutput) Print(args ...any) { s.log(slog.LevelInfo, args) }
