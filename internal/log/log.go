// Package log provides context-aware logging for stepper.
//
// Diagnostics go to stderr; stdout is reserved for the submitted record
// (see the output package).
package log

import (
	"context"
	"fmt"
	"io"
	"strings"
)

type ctxKey struct{}

// Logger provides diagnostic output and verbose step logging.
type Logger struct {
	out     io.Writer
	verbose bool
	quiet   bool
}

// New creates a new logger. quiet suppresses everything but Errorf.
func New(out io.Writer, verbose, quiet bool) *Logger {
	return &Logger{out: out, verbose: verbose && !quiet, quiet: quiet}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a no-op logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return &Logger{out: io.Discard}
}

// Printf writes formatted output.
func (l *Logger) Printf(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, format, args...)
}

// Println writes a line of output.
func (l *Logger) Println(args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintln(l.out, args...)
}

// Errorf writes a formatted line even in quiet mode.
func (l *Logger) Errorf(format string, args ...any) {
	fmt.Fprintf(l.out, format+"\n", args...)
}

// Debug writes msg followed by key=value pairs.
// Only prints when verbose mode is enabled. An odd trailing key is dropped.
func (l *Logger) Debug(msg string, keyvals ...any) {
	if !l.verbose {
		return
	}
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i+1 < len(keyvals); i += 2 {
		fmt.Fprintf(&b, " %v=%v", keyvals[i], keyvals[i+1])
	}
	fmt.Fprintln(l.out, b.String())
}

// Step logs a wizard transition: the 1-based step position, the step
// key and the form fields filled so far.
// Only prints when verbose mode is enabled.
func (l *Logger) Step(index, count int, key string, fields []string) {
	if !l.verbose {
		return
	}
	fmt.Fprintf(l.out, "step %d/%d (%s) fields=[%s]\n", index+1, count, key, strings.Join(fields, " "))
}

// IsVerbose returns true if verbose mode is enabled.
func (l *Logger) IsVerbose() bool {
	return l.verbose
}

// Quiet returns true if quiet mode is enabled.
func (l *Logger) Quiet() bool {
	return l.quiet
}

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer {
	return l.out
}
