package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nova-lang/novac/internal/token"
)

func scanAll(t *testing.T, src string) []token.Token {
	t.Helper()

	s := NewScanner("test.nova", src)

	var out []token.Token

	for {
		tok := s.Next()
		out = append(out, tok)

		if tok.Kind == token.EOF {
			return out
		}
	}
}

func TestScannerKeywordsVsIdentifiers(t *testing.T) {
	toks := scanAll(t, "class Foo { public int x; }")

	kinds := make([]token.Kind, 0, len(toks))
	for _, tk := range toks {
		kinds = append(kinds, tk.Kind)
	}

	assert.Equal(t, []token.Kind{
		token.KwClass, token.Ident, token.LBrace, token.KwPublic, token.KwInt,
		token.Ident, token.Semicolon, token.RBrace, token.EOF,
	}, kinds)
}

func TestScannerContextualKeywordsStayIdentifiers(t *testing.T) {
	toks := scanAll(t, "where get set add remove yield partial assembly")

	for _, tk := range toks {
		if tk.Kind == token.EOF {
			continue
		}

		assert.Equal(t, token.Ident, tk.Kind, "contextual word %q must lex as identifier", tk.Value)
	}
}

func TestScannerNumericLiterals(t *testing.T) {
	toks := scanAll(t, "1 3.14 1e10 0xFF 10L 1.5f")

	require.Len(t, toks, 7)
	assert.Equal(t, token.IntLit, toks[0].Kind)
	assert.Equal(t, token.FloatLit, toks[1].Kind)
	assert.Equal(t, token.FloatLit, toks[2].Kind)
}

func TestScannerStringAndCharEscapes(t *testing.T) {
	toks := scanAll(t, `"a\nb" 'x' '\''`)

	require.Len(t, toks, 4)
	assert.Equal(t, token.StringLit, toks[0].Kind)
	assert.Equal(t, "a\nb", toks[0].Literal)
	assert.Equal(t, token.CharLit, toks[1].Kind)
	assert.Equal(t, "x", toks[1].Literal)
}

func TestScannerShiftRightIsOneToken(t *testing.T) {
	toks := scanAll(t, "a >> b")
	require.Len(t, toks, 4)
	assert.Equal(t, token.Shr, toks[1].Kind)
}

func TestScannerCommentsAreSkipped(t *testing.T) {
	toks := scanAll(t, "a // line comment\nb /* block\ncomment */ c")

	var kinds []token.Kind

	for _, tk := range toks {
		kinds = append(kinds, tk.Kind)
	}

	assert.Equal(t, []token.Kind{token.Ident, token.Ident, token.Ident, token.EOF}, kinds)
}

func TestScannerMultiCharOperatorsLongestMatchFirst(t *testing.T) {
	toks := scanAll(t, "a <<= b; a <= b; a << b;")

	assert.Equal(t, token.ShlAssign, toks[1].Kind)
	assert.Equal(t, token.Le, toks[5].Kind)
	assert.Equal(t, token.Shl, toks[9].Kind)
}
