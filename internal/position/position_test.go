package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionIsValid(t *testing.T) {
	assert.True(t, Position{Line: 1, Column: 1, Offset: 0}.IsValid())
	assert.False(t, Position{Line: 0, Column: 1, Offset: 0}.IsValid())
	assert.False(t, Position{Line: 1, Column: 0, Offset: 0}.IsValid())
	assert.False(t, Position{Line: 1, Column: 1, Offset: -1}.IsValid())
}

func TestPositionStringWithAndWithoutFilename(t *testing.T) {
	withFile := Position{Filename: "/tmp/prog.nova", Line: 3, Column: 7}
	assert.Equal(t, "prog.nova:3:7", withFile.String())

	noFile := Position{Line: 3, Column: 7}
	assert.Equal(t, "3:7", noFile.String())
}

func TestSpanIsValidRejectsBackwardsOrCrossFileSpans(t *testing.T) {
	a := Position{Filename: "f.nova", Line: 2, Column: 5, Offset: 10}
	b := Position{Filename: "f.nova", Line: 2, Column: 9, Offset: 14}

	assert.True(t, Span{Start: a, End: b}.IsValid())
	assert.False(t, Span{Start: b, End: a}.IsValid(), "end before start is invalid")

	other := Position{Filename: "g.nova", Line: 1, Column: 1, Offset: 0}
	assert.False(t, Span{Start: a, End: other}.IsValid(), "spans cannot cross files")
}

func TestSpanStringSingleAndMultiLine(t *testing.T) {
	start := Position{Filename: "f.nova", Line: 4, Column: 1, Offset: 0}
	sameLine := Position{Filename: "f.nova", Line: 4, Column: 10, Offset: 9}
	nextLine := Position{Filename: "f.nova", Line: 5, Column: 3, Offset: 20}

	assert.Equal(t, "f.nova:4:1-10", Span{Start: start, End: sameLine}.String())
	assert.Equal(t, "f.nova:4:1-5:3", Span{Start: start, End: nextLine}.String())
}

func TestSourceFileGetLineOutOfRangeIsEmpty(t *testing.T) {
	f := NewSourceFile("f.nova", "line one\nline two\nline three")

	assert.Equal(t, "line one", f.GetLine(1))
	assert.Equal(t, "line three", f.GetLine(3))
	assert.Equal(t, "", f.GetLine(0))
	assert.Equal(t, "", f.GetLine(4))
}

func TestSourceFileGetSpanText(t *testing.T) {
	content := "class Foo { }"
	f := NewSourceFile("f.nova", content)

	span := Span{
		Start: Position{Filename: "f.nova", Line: 1, Column: 1, Offset: 0},
		End:   Position{Filename: "f.nova", Line: 1, Column: 6, Offset: 5},
	}

	assert.Equal(t, "class", f.GetSpanText(span))
}

func TestSourceFileGetSpanTextRejectsWrongFileOrOutOfBounds(t *testing.T) {
	f := NewSourceFile("f.nova", "abc")

	wrongFile := Span{
		Start: Position{Filename: "other.nova", Line: 1, Column: 1, Offset: 0},
		End:   Position{Filename: "other.nova", Line: 1, Column: 2, Offset: 1},
	}
	assert.Equal(t, "", f.GetSpanText(wrongFile))

	outOfBounds := Span{
		Start: Position{Filename: "f.nova", Line: 1, Column: 1, Offset: 0},
		End:   Position{Filename: "f.nova", Line: 1, Column: 10, Offset: 10},
	}
	assert.Equal(t, "", f.GetSpanText(outOfBounds))
}

func TestSourceMapAddAndLookup(t *testing.T) {
	sm := NewSourceMap()
	sm.AddFile("a.nova", "namespace A { }")
	sm.AddFile("b.nova", "namespace B { }")

	assert.NotNil(t, sm.GetFile("a.nova"))
	assert.Nil(t, sm.GetFile("missing.nova"))
	assert.Len(t, sm.GetFiles(), 2)

	pos := Position{Filename: "b.nova", Line: 1, Column: 1}
	assert.Equal(t, "namespace B { }", sm.GetLine(pos))

	span := Span{
		Start: Position{Filename: "a.nova", Line: 1, Column: 1, Offset: 0},
		End:   Position{Filename: "a.nova", Line: 1, Column: 10, Offset: 9},
	}
	assert.Equal(t, "namespace", sm.GetSpanText(span))
}

func TestSourceMapGetFilesReturnsACopy(t *testing.T) {
	sm := NewSourceMap()
	sm.AddFile("a.nova", "x")

	files := sm.GetFiles()
	files["injected.nova"] = NewSourceFile("injected.nova", "y")

	assert.Nil(t, sm.GetFile("injected.nova"), "mutating the returned map must not affect the SourceMap")
}
