package position

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newHighlighterFixture() *SpanHighlighter {
	sm := NewSourceMap()
	sm.AddFile("f.nova", "class Foo\n{\n    int x;\n}\n")

	return NewSpanHighlighter(sm)
}

func TestHighlightSpanSingleLineUnderlinesTheCoveredColumns(t *testing.T) {
	sh := newHighlighterFixture()

	span := Span{
		Start: Position{Filename: "f.nova", Line: 1, Column: 7, Offset: 6},
		End:   Position{Filename: "f.nova", Line: 1, Column: 10, Offset: 9},
	}

	out := sh.HighlightSpan(span)

	assert.Contains(t, out, "class Foo")
	assert.Contains(t, out, "^^^", "the three columns of Foo should be underlined")
}

func TestHighlightSpanMultiLineMarksEveryLine(t *testing.T) {
	sh := newHighlighterFixture()

	span := Span{
		Start: Position{Filename: "f.nova", Line: 2, Column: 1, Offset: 10},
		End:   Position{Filename: "f.nova", Line: 4, Column: 2, Offset: 26},
	}

	out := sh.HighlightSpan(span)
	lines := strings.Split(out, "\n")

	marked := 0

	for _, l := range lines {
		if strings.Contains(l, "^") {
			marked++
		}
	}

	assert.Equal(t, 3, marked, "one caret line per source line the span covers")
}

func TestHighlightSpanShowsSurroundingContext(t *testing.T) {
	sh := newHighlighterFixture()

	span := Span{
		Start: Position{Filename: "f.nova", Line: 3, Column: 5, Offset: 17},
		End:   Position{Filename: "f.nova", Line: 3, Column: 6, Offset: 18},
	}

	out := sh.HighlightSpan(span)

	assert.Contains(t, out, "class Foo", "two lines of leading context should be shown")
	assert.Contains(t, out, "int x;")
}

func TestHighlightSpanUnknownFileReportsNotFound(t *testing.T) {
	sh := NewSpanHighlighter(NewSourceMap())

	span := Span{
		Start: Position{Filename: "missing.nova", Line: 1, Column: 1, Offset: 0},
		End:   Position{Filename: "missing.nova", Line: 1, Column: 2, Offset: 1},
	}

	assert.Contains(t, sh.HighlightSpan(span), "not found")
}

func TestHighlightSpanInvalidSpanIsReportedNotPanicked(t *testing.T) {
	sh := newHighlighterFixture()

	backwards := Span{
		Start: Position{Filename: "f.nova", Line: 3, Column: 5, Offset: 20},
		End:   Position{Filename: "f.nova", Line: 1, Column: 1, Offset: 0},
	}

	assert.Equal(t, "invalid span", sh.HighlightSpan(backwards))
}

func TestHighlightSpanPreservesTabIndentation(t *testing.T) {
	sm := NewSourceMap()
	sm.AddFile("t.nova", "\tint x;\n")
	sh := NewSpanHighlighter(sm)

	span := Span{
		Start: Position{Filename: "t.nova", Line: 1, Column: 2, Offset: 1},
		End:   Position{Filename: "t.nova", Line: 1, Column: 5, Offset: 4},
	}

	out := sh.HighlightSpan(span)

	underline := strings.Split(out, "\n")[2]
	assert.True(t, strings.HasPrefix(underline, "     | \t"), "leading tab in the source line must be echoed, not replaced with a space")
}
