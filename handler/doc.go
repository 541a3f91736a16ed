// Package handler defines the boundary between loggers and the output
// primitive they write to.
//
// An output is any value. It is inspected once per bind, not per call,
// for the optional write interfaces Tracer, Debugger, Infoer, Warner and
// Errorer. When the method for a level is missing, the generic Printer
// is used instead, and when that is missing too the level becomes a
// no-op. Outputs that decide per level at lookup time implement
// Selector.
//
// Built-in outputs:
//
//   - Funcs assembles an output from plain functions.
//   - Multi fans each call out to several outputs.
//   - SlogOutput writes to a *slog.Logger.
//
// Sub-packages provide a console output (consolehandler), adapters for
// zap, zerolog and logrus, and a recording output for tests
// (handlertest).
package handler
