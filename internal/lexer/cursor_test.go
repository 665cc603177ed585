package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nova-lang/novac/internal/token"
)

func TestCursorAdvanceWalksForward(t *testing.T) {
	c := NewCursor("t.nova", "a b c")

	assert.Equal(t, "a", c.Current().Value)
	assert.Equal(t, "a", c.Advance().Value)
	assert.Equal(t, "b", c.Current().Value)
	assert.Equal(t, "b", c.Advance().Value)
	assert.Equal(t, "c", c.Current().Value)
}

func TestCursorLookaheadDoesNotMove(t *testing.T) {
	c := NewCursor("t.nova", "a b c d")

	assert.Equal(t, "c", c.Lookahead(2).Value)
	assert.Equal(t, "a", c.Current().Value, "Lookahead must not move the committed position")
	assert.Equal(t, "b", c.Lookahead(1).Value)
}

func TestCursorPeekIsIndependentOfCurrent(t *testing.T) {
	c := NewCursor("t.nova", "a b c")

	c.StartPeek()
	first := c.Peek()
	second := c.Peek()
	c.ResetPeek()

	assert.Equal(t, "a", first.Value)
	assert.Equal(t, "b", second.Value)
	assert.Equal(t, "a", c.Current().Value, "peeking must never move Current")
}

func TestCursorPeekAtDoesNotMoveTheMark(t *testing.T) {
	c := NewCursor("t.nova", "a b c")

	c.StartPeek()
	assert.Equal(t, "a", c.PeekAt(0).Value)
	assert.Equal(t, "a", c.PeekAt(0).Value, "PeekAt must be repeatable without side effects")
	assert.Equal(t, "b", c.PeekAt(1).Value)
	assert.Equal(t, "a", c.PeekAt(0).Value, "PeekAt(1) must not have moved the mark either")

	assert.Equal(t, "a", c.Peek().Value, "Peek still commits the token PeekAt just inspected")
	assert.Equal(t, "b", c.PeekAt(0).Value)
	c.ResetPeek()

	assert.Equal(t, "a", c.Current().Value, "PeekAt must never move the committed position")
}

func TestCursorCommitPeekFastForwards(t *testing.T) {
	c := NewCursor("t.nova", "a b c")

	c.StartPeek()
	c.Peek()
	c.Peek()
	c.CommitPeek()

	assert.Equal(t, "c", c.Current().Value)
}

func TestCursorSkipCurrentBlockHandlesNesting(t *testing.T) {
	c := NewCursor("t.nova", "{ a { b } c } d")

	c.SkipCurrentBlock()
	assert.Equal(t, "d", c.Current().Value)
}

func TestCursorMarkResetRewinds(t *testing.T) {
	c := NewCursor("t.nova", "a b c")

	m := c.Mark()
	c.Advance()
	c.Advance()
	c.Reset(m)

	assert.Equal(t, "a", c.Current().Value)
}

func TestCursorEOFIsStable(t *testing.T) {
	c := NewCursor("t.nova", "a")

	c.Advance()
	require.Equal(t, token.EOF, c.Current().Kind)
	assert.Equal(t, token.EOF, c.Advance().Kind)
	assert.Equal(t, token.EOF, c.Current().Kind)
}
