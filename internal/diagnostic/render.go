package diagnostic

import (
	"fmt"
	"io"
	"os"

	"github.com/nova-lang/novac/internal/position"
)

const (
	ansiRed    = "\x1b[31;1m"
	ansiYellow = "\x1b[33;1m"
	ansiReset  = "\x1b[0m"
)

// Renderer prints a Collector's diagnostics to a writer, colorized when
// the writer is a real terminal and annotated with the offending source
// line when a SourceMap is available.
type Renderer struct {
	Out       io.Writer
	Sources   *position.SourceMap
	ForceCode bool // when true, colorize even if Out isn't detected as a terminal (used by tests)
}

// NewStderrRenderer builds a Renderer over os.Stderr, auto-detecting
// whether stderr is attached to a terminal.
func NewStderrRenderer(sources *position.SourceMap) *Renderer {
	return &Renderer{Out: os.Stderr, Sources: sources}
}

func (r *Renderer) colorize() bool {
	if r.ForceCode {
		return true
	}

	f, ok := r.Out.(*os.File)
	if !ok {
		return false
	}

	return isTerminal(f.Fd())
}

// Render prints every diagnostic in c, one block per diagnostic; no
// summary line is printed.
func (r *Renderer) Render(c *Collector) {
	color := r.colorize()
	highlighter := (*position.SpanHighlighter)(nil)

	if r.Sources != nil {
		highlighter = position.NewSpanHighlighter(r.Sources)
	}

	for _, d := range c.Diagnostics() {
		prefix := "error"
		code := ansiRed

		if d.Level == LevelWarning {
			prefix = "warning"
			code = ansiYellow
		}

		if color {
			fmt.Fprintf(r.Out, "%s%s[%s]%s: %s\n", code, prefix, d.Code, ansiReset, d.Title)
		} else {
			fmt.Fprintf(r.Out, "%s[%s]: %s\n", prefix, d.Code, d.Title)
		}

		fmt.Fprintf(r.Out, "  --> %s\n", d.Span.Start.String())

		if d.Message != "" {
			fmt.Fprintf(r.Out, "  %s\n", d.Message)
		}

		if highlighter != nil {
			fmt.Fprintln(r.Out, highlighter.HighlightSpan(d.Span))
		}
	}
}
