// Package diag provides the diagnostic sink through which parsers report
// recoverable per-line problems. Parsers stay pure: they never print and
// never fail on a bad line, they hand the problem to the caller's sink and
// move on. The CLI boundary decides whether warnings reach the user.
package diag

import (
	"fmt"
	"log"
	"sync"
)

// Sink receives non-fatal diagnostics from parsers.
type Sink interface {
	// Warnf reports one recoverable problem. Implementations must not fail.
	Warnf(format string, args ...any)
}

// Discard is a Sink that drops every diagnostic.
var Discard Sink = discard{}

type discard struct{}

func (discard) Warnf(string, ...any) {}

// List is a Sink that accumulates formatted warnings in order. It is safe
// for concurrent use. The zero value is ready to use.
type List struct {
	mu       sync.Mutex
	warnings []string
}

// Warnf appends the formatted warning.
func (l *List) Warnf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = append(l.warnings, fmt.Sprintf(format, args...))
}

// Warnings returns a copy of the accumulated warnings in arrival order.
func (l *List) Warnings() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.warnings))
	copy(out, l.warnings)
	return out
}

// Logger is a Sink that forwards warnings to a standard library logger with
// a "warning:" prefix. A nil logger uses log.Default.
type Logger struct {
	L *log.Logger
}

// Warnf logs the formatted warning.
func (s Logger) Warnf(format string, args ...any) {
	l := s.L
	if l == nil {
		l = log.Default()
	}
	l.Printf("warning: "+format, args...)
}
