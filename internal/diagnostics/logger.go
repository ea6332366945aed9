// Package diagnostics emits evaluator and inferencer errors as structured
// log lines tagged with the step path or source file name (not with source
// positions), so a host (REPL,
// LSP-style client, test harness) gets a consistent trail of what was
// evaluated instead of bare error strings (spec.md §7 "Diagnostics").
package diagnostics

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Logger wraps a *log.Logger with the step/type diagnostic helpers used
// throughout the module. verbose gates Step (every single reduction);
// EvalError/TypeError/Info are always printed.
type Logger struct {
	l       *log.Logger
	verbose bool
}

// New builds a Logger that writes to stderr with a "[stepwise] " prefix and
// standard timestamp flags, mirroring the log.New(os.Stderr, prefix, flags)
// convention a language-server-shaped CLI in this pack uses for its own
// startup/diagnostic trail. verbose enables per-step logging; otherwise only
// errors and Info messages are reported.
func New(verbose bool) (*Logger, error) {
	return &Logger{
		l:       log.New(os.Stderr, "[stepwise] ", log.LstdFlags),
		verbose: verbose,
	}, nil
}

// NewNop returns a Logger that discards everything, for tests and library
// callers that have not configured logging.
func NewNop() *Logger {
	return &Logger{l: log.New(io.Discard, "", 0)}
}

// Sync is a no-op for the stdlib logger; kept so callers can
// unconditionally `defer log.Sync()` regardless of the logging backend.
func (l *Logger) Sync() error { return nil }

// Step logs one evaluation step: the path taken and the resulting
// expression's rendered form. Only printed when verbose.
func (l *Logger) Step(path, result string) {
	if !l.verbose {
		return
	}
	l.l.Printf("step path=%q result=%q", path, result)
}

// EvalError logs an evaluation failure at the given path.
func (l *Logger) EvalError(path string, err error) {
	l.l.Printf("eval error path=%q: %v", path, err)
}

// TypeError logs a type inference failure.
func (l *Logger) TypeError(source string, err error) {
	l.l.Printf("type error source=%q: %v", source, err)
}

// Field is a single structured key/value pair for Info.
type Field struct {
	Key   string
	Value any
}

// String builds a string-valued Field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int builds an int-valued Field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Info logs a freeform informational message with structured fields,
// rendered as key=value pairs after the message.
func (l *Logger) Info(msg string, fields ...Field) {
	for _, f := range fields {
		msg += fmt.Sprintf(" %s=%v", f.Key, f.Value)
	}
	l.l.Println(msg)
}
