// Package handlertest provides an output that records every call, for
// tests of code that writes through the handler interfaces.
package handlertest

import (
	"sync"
)

// Call is one recorded write.
type Call struct {
	// Method is the lower-case name of the write function that was
	// called: "trace", "debug", "info", "warn", "error" or "print".
	Method string
	Args   []any
}

// Recorder implements every level-specific write function plus Print and
// remembers the calls it receives. It is safe for concurrent use.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(method string, args []any) {
	if r == nil {
		return
	}
	cp := make([]any, len(args))
	copy(cp, args)
	r.mu.Lock()
	r.calls = append(r.calls, Call{Method: method, Args: cp})
	r.mu.Unlock()
}

func (r *Recorder) Trace(args ...any) { r.record("trace", args) }
func (r *Recorder) Debug(args ...any) { r.record("debug", args) }
func (r *Recorder) Info(args ...any)  { r.record("info", args) }
func (r *Recorder) Warn(args ...any)  { r.record("warn", args) }
func (r *Recorder) Error(args ...any) { r.record("error", args) }
func (r *Recorder) Print(args ...any) { r.record("print", args) }

// Calls returns a copy of every recorded call, oldest first.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// CallsTo returns the recorded calls made to method.
func (r *Recorder) CallsTo(method string) []Call {
	var out []Call
	for _, c := range r.Calls() {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

// Last returns the most recent call.
func (r *Recorder) Last() (Call, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return Call{}, false
	}
	return r.calls[len(r.calls)-1], true
}

// Len returns the number of recorded calls.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// Reset forgets every recorded call.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.calls = nil
	r.mu.Unlock()
}
