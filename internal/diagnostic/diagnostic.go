// Package diagnostic collects and formats the errors and warnings the
// parser reports while walking a compilation unit. Nova's front end
// never runs a binder, type checker, or optimizer (see the project's
// Non-goals), so unlike the teacher's diagnostic subsystem this one
// carries no category axis (syntax/type/semantic/performance/style/
// security) and no suggested-fix machinery — every diagnostic here
// originates from a grammar production or the recovery layer built
// around it, and Level is the only thing worth branching on.
package diagnostic

import (
	"fmt"
	"sort"

	"github.com/nova-lang/novac/internal/position"
)

// Level distinguishes a diagnostic that should fail a build from one
// that merely flags something worth a second look.
type Level int

const (
	LevelError Level = iota
	LevelWarning
)

func (l Level) String() string {
	if l == LevelWarning {
		return "warning"
	}

	return "error"
}

// Diagnostic is a single reported issue: a stable code a tool can key
// off of, a short title, an optional longer message, and the span in
// source it points at.
type Diagnostic struct {
	Code    string
	Title   string
	Message string
	Span    position.Span
	Level   Level
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d: %s[%s]: %s", d.Span.Start.Filename, d.Span.Start.Line, d.Span.Start.Column, d.Level, d.Code, d.Title)
}

// EngineConfig controls how many errors an Engine accumulates before it
// stops silently and instead emits a single truncation diagnostic in
// their place.
type EngineConfig struct {
	MaxErrors int
}

// DiagnosticEngine accumulates diagnostics reported over the lifetime of
// a parse and answers the handful of queries the renderer and the CLI
// need: everything so far, errors only, sorted by source position.
type DiagnosticEngine struct {
	diagnostics []Diagnostic
	maxErrors   int
	truncated   bool
}

// NewDiagnosticEngine builds an Engine bounded by cfg.MaxErrors. A
// non-positive MaxErrors means unbounded, which is what the parser
// itself uses — the grammar's own errDist throttle already keeps a
// malformed file from producing an unreasonable diagnostic count, so
// the engine-level cap exists for embedding tools that want a harder
// ceiling than the throttle gives them.
func NewDiagnosticEngine(cfg EngineConfig) *DiagnosticEngine {
	max := cfg.MaxErrors
	if max <= 0 {
		max = 1 << 30
	}

	return &DiagnosticEngine{maxErrors: max}
}

// AddDiagnostic records d. When that brings the error count to the cap,
// it also appends one truncation diagnostic, and every diagnostic
// reported after that is ignored.
func (de *DiagnosticEngine) AddDiagnostic(d Diagnostic) {
	if de.truncated {
		return
	}

	de.diagnostics = append(de.diagnostics, d)

	if de.errorCount() >= de.maxErrors {
		de.truncated = true
		de.diagnostics = append(de.diagnostics, Diagnostic{
			Code:    "E0001",
			Title:   "too many errors",
			Message: fmt.Sprintf("stopping after %d errors", de.maxErrors),
			Level:   LevelError,
		})
	}
}

func (de *DiagnosticEngine) errorCount() int {
	n := 0

	for _, d := range de.diagnostics {
		if d.Level == LevelError {
			n++
		}
	}

	return n
}

// GetDiagnostics returns every diagnostic recorded so far.
func (de *DiagnosticEngine) GetDiagnostics() []Diagnostic {
	return de.diagnostics
}

// HasErrors reports whether any error-level diagnostic was recorded.
func (de *DiagnosticEngine) HasErrors() bool {
	return de.errorCount() > 0
}

// SortDiagnostics orders diagnostics by file, then line, then column,
// with errors sorted ahead of warnings at the same position.
func (de *DiagnosticEngine) SortDiagnostics() {
	sort.Slice(de.diagnostics, func(i, j int) bool {
		a, b := de.diagnostics[i], de.diagnostics[j]

		if a.Span.Start.Filename != b.Span.Start.Filename {
			return a.Span.Start.Filename < b.Span.Start.Filename
		}

		if a.Span.Start.Line != b.Span.Start.Line {
			return a.Span.Start.Line < b.Span.Start.Line
		}

		if a.Span.Start.Column != b.Span.Start.Column {
			return a.Span.Start.Column < b.Span.Start.Column
		}

		return a.Level < b.Level
	})
}
