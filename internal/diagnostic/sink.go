package diagnostic

import (
	"fmt"

	"github.com/nova-lang/novac/internal/position"
)

// Sink is the reporting contract: a single method that records a
// (span, message) tuple and never blocks or aborts the caller. Collector
// implements it. The parser itself holds a *Collector rather than a Sink
// (it also calls Collector.Advance to drive the throttle), so another
// Sink implementation cannot be handed to parser.New.
type Sink interface {
	Report(span position.Span, code, title, message string)
}

// Collector is the default Sink: a DiagnosticEngine plus the distance
// throttle the source parser uses to avoid diagnostic storms while
// skipping through a badly malformed region. minErrDist mirrors the
// figure the grammar's own error recovery uses.
type Collector struct {
	engine     *DiagnosticEngine
	errDist    int
	minErrDist int
}

// NewCollector creates a Collector with an unbounded diagnostic budget;
// the parser itself never stops early, only individual reports are
// throttled.
func NewCollector() *Collector {
	const minErrDist = 2

	return &Collector{
		engine:     NewDiagnosticEngine(EngineConfig{MaxErrors: 1 << 30}),
		errDist:    minErrDist,
		minErrDist: minErrDist,
	}
}

// Advance must be called once per token the parser consumes. It is how
// the throttle measures "distance since the last reported error".
func (c *Collector) Advance() {
	c.errDist++
}

// Report records a diagnostic unless fewer than minErrDist tokens have
// been consumed since the previous report, per the throttle described in
// the grammar's error-recovery design. Reporting always resets the
// distance counter, whether or not this particular call was throttled —
// a storm of malformed tokens should not re-arm the throttle on every
// single one.
func (c *Collector) Report(span position.Span, code, title, message string) {
	defer func() { c.errDist = 0 }()

	if c.errDist < c.minErrDist {
		return
	}

	c.engine.AddDiagnostic(Diagnostic{
		Code:    code,
		Title:   title,
		Message: message,
		Span:    span,
		Level:   LevelError,
	})
}

// ReportUnconditional records a diagnostic bypassing the errDist
// throttle, then resets the distance counter. Nothing in this module
// calls it; every parser diagnostic goes through Report.
func (c *Collector) ReportUnconditional(span position.Span, code, title, message string) {
	c.engine.AddDiagnostic(Diagnostic{
		Code:    code,
		Title:   title,
		Message: message,
		Span:    span,
		Level:   LevelError,
	})
	c.errDist = 0
}

// Diagnostics returns every diagnostic recorded so far, in source order.
func (c *Collector) Diagnostics() []Diagnostic {
	c.engine.SortDiagnostics()

	return c.engine.GetDiagnostics()
}

// HasErrors reports whether any diagnostic was recorded.
func (c *Collector) HasErrors() bool {
	return c.engine.HasErrors()
}

// Simple renders each diagnostic as the plain "{line, column, message}"
// tuple external tooling that recognizes the fixed error-message list
// expects, one per line.
func (c *Collector) Simple() []string {
	diags := c.Diagnostics()
	out := make([]string, 0, len(diags))

	for _, d := range diags {
		out = append(out, fmt.Sprintf("%d:%d: %s", d.Span.Start.Line, d.Span.Start.Column, d.Message))
	}

	return out
}
