package position

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// SpanHighlighter renders a span as a source excerpt with a caret line
// underneath it, the annotation style the diagnostic renderer prints
// under every reported error and warning.
type SpanHighlighter struct {
	sourceMap *SourceMap
}

// NewSpanHighlighter builds a SpanHighlighter backed by sourceMap.
func NewSpanHighlighter(sourceMap *SourceMap) *SpanHighlighter {
	return &SpanHighlighter{sourceMap: sourceMap}
}

// contextLines is how many lines of surrounding source are shown above
// and below a highlighted span.
const contextLines = 2

// HighlightSpan renders span as a numbered excerpt of its source file
// with the covered columns underlined by carets.
func (sh *SpanHighlighter) HighlightSpan(span Span) string {
	if !span.IsValid() {
		return "invalid span"
	}

	file := sh.sourceMap.GetFile(span.Start.Filename)
	if file == nil {
		return fmt.Sprintf("file not found: %s", span.Start.Filename)
	}

	var out strings.Builder

	fmt.Fprintf(&out, "%s\n", span.String())

	start := max(1, span.Start.Line-contextLines)
	end := min(len(file.Lines), span.End.Line+contextLines)

	for line := start; line <= end; line++ {
		fmt.Fprintf(&out, "%4d | %s\n", line, file.GetLine(line))

		if line >= span.Start.Line && line <= span.End.Line {
			sh.underline(&out, line, file.GetLine(line), span)
		}
	}

	return out.String()
}

// underline writes the caret line beneath one source line covered by
// span, handling the three shapes a span can take relative to that
// line: the only line, the first of several, or a middle/last one.
func (sh *SpanHighlighter) underline(out *strings.Builder, line int, text string, span Span) {
	out.WriteString("     | ")

	switch {
	case line == span.Start.Line && line == span.End.Line:
		sh.mark(out, text, span.Start.Column, span.End.Column)
	case line == span.Start.Line:
		sh.mark(out, text, span.Start.Column, utf8.RuneCountInString(text)+1)
	case line == span.End.Line:
		sh.mark(out, text, 1, span.End.Column)
	default:
		sh.mark(out, text, 1, utf8.RuneCountInString(text)+1)
	}

	out.WriteString("\n")
}

// mark writes leading whitespace up to startCol (preserving tabs so the
// caret still lines up under a tab-indented line) followed by one caret
// per column through endCol.
func (sh *SpanHighlighter) mark(out *strings.Builder, text string, startCol, endCol int) {
	runes := []rune(text)

	for i := 1; i < startCol; i++ {
		if i <= len(runes) && runes[i-1] == '\t' {
			out.WriteByte('\t')
		} else {
			out.WriteByte(' ')
		}
	}

	if n := endCol - startCol; n > 0 {
		out.WriteString(strings.Repeat("^", min(n, len(runes)-startCol+1)))
	}
}
