package lexer

import "github.com/nova-lang/novac/internal/token"

// Cursor layers a token ring buffer over a Scanner so the parser gets an
// arbitrary-lookahead peek cursor even though the underlying Scanner
// only ever moves forward. Current/Lookahead/Advance walk the committed
// position; StartPeek/Peek/CommitPeek walk an independent mark that
// predicates use to look further ahead without disturbing the committed
// position. Predicates never call Advance, so this separation is what
// keeps them pure.
type Cursor struct {
	scanner *Scanner
	buf     []token.Token
	pos     int // index into buf of the current token
	peekPos int // index into buf used while a peek is in progress; -1 when idle
}

// NewCursor builds a Cursor over src, priming the buffer with the first
// token so Current is valid immediately.
func NewCursor(filename, src string) *Cursor {
	c := &Cursor{scanner: NewScanner(filename, src), peekPos: -1}
	c.fill(1)

	return c
}

// fill ensures at least n tokens are buffered from pos onward.
func (c *Cursor) fill(n int) {
	for len(c.buf)-c.pos < n {
		c.buf = append(c.buf, c.scanner.Next())

		if c.buf[len(c.buf)-1].Kind == token.EOF {
			return
		}
	}
}

// Current returns the token at the committed cursor position.
func (c *Cursor) Current() token.Token {
	c.fill(1)

	return c.at(c.pos)
}

func (c *Cursor) at(i int) token.Token {
	if i >= len(c.buf) {
		return c.buf[len(c.buf)-1] // EOF sentinel, once buffered
	}

	return c.buf[i]
}

// Lookahead returns the token n places ahead of the committed position
// (Lookahead(0) == Current()) without moving anything.
func (c *Cursor) Lookahead(n int) token.Token {
	c.fill(n + 1)

	return c.at(c.pos + n)
}

// Advance commits the cursor forward by one token and returns the token
// that was current before advancing (the one just consumed).
func (c *Cursor) Advance() token.Token {
	t := c.Current()
	if t.Kind != token.EOF {
		c.pos++
	}

	return t
}

// StartPeek opens an independent peek mark at the committed position.
// Predicates call this once, then Peek() repeatedly, then either discard
// the mark (simply stop calling Peek) or CommitPeek to fast-forward the
// real cursor to the mark — used nowhere in the current grammar since
// predicates only ever report a bool, but kept for parity with the
// contract's own wording ("mark/reset").
func (c *Cursor) StartPeek() {
	c.peekPos = c.pos
}

// Peek returns the token at the peek mark and advances the mark by one,
// leaving Current/Lookahead/the committed position untouched. Use this
// only to commit a token a predicate has already decided to consume in
// peek-space; to look at the token without moving the mark, use PeekAt.
func (c *Cursor) Peek() token.Token {
	if c.peekPos < 0 {
		c.peekPos = c.pos
	}

	c.fill(c.peekPos - c.pos + 1)
	t := c.at(c.peekPos)

	if t.Kind != token.EOF {
		c.peekPos++
	}

	return t
}

// PeekKind is a convenience for the common case of testing only the kind
// of the token Peek() would consume next.
func (c *Cursor) PeekKind() token.Kind {
	return c.Peek().Kind
}

// PeekAt returns the token n places past the peek mark without moving
// the mark, so a predicate can inspect it repeatedly and decide whether
// to commit it with Peek() — the non-consuming counterpart to Peek/
// PeekKind, for the "look, then maybe consume" idiom every predicate in
// this package's caller uses.
func (c *Cursor) PeekAt(n int) token.Token {
	base := c.peekPos
	if base < 0 {
		base = c.pos
	}

	c.fill(base - c.pos + n + 1)

	return c.at(base + n)
}

// ResetPeek closes the current peek mark; the next StartPeek reopens it
// at the (possibly since-advanced) committed position.
func (c *Cursor) ResetPeek() {
	c.peekPos = -1
}

// CommitPeek fast-forwards the committed cursor to the current peek
// mark, skipping over every token the peek inspected. The parser does
// not call it; its predicates only report a bool.
func (c *Cursor) CommitPeek() {
	if c.peekPos > c.pos {
		c.pos = c.peekPos
	}

	c.ResetPeek()
}

// SkipCurrentBlock advances the committed cursor past a balanced
// {...} / (...) / [...] group starting at Current(), used by error
// recovery to resynchronize after an unrecoverable construct. It
// tolerates unbalanced input by stopping at EOF.
func (c *Cursor) SkipCurrentBlock() {
	open := c.Current().Kind

	var closeKind token.Kind

	switch open {
	case token.LBrace:
		closeKind = token.RBrace
	case token.LParen:
		closeKind = token.RParen
	case token.LBracket:
		closeKind = token.RBracket
	default:
		c.Advance()

		return
	}

	depth := 0

	for {
		k := c.Current().Kind
		if k == token.EOF {
			return
		}

		c.Advance()

		switch k {
		case open:
			depth++
		case closeKind:
			depth--

			if depth == 0 {
				return
			}
		}
	}
}

// Mark and Reset give the parser's error-recovery pass a coarse-grained
// save/restore over the committed position, distinct from the
// fine-grained Peek used by predicates.
type Mark struct{ pos int }

func (c *Cursor) Mark() Mark { return Mark{pos: c.pos} }

func (c *Cursor) Reset(m Mark) { c.pos = m.pos }
