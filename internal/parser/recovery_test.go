package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nova-lang/novac/internal/ast"
	"github.com/nova-lang/novac/internal/token"
)

func TestExpectAdvancesOnMatch(t *testing.T) {
	p := newTestParser(";")
	tok := p.expect(token.Semicolon)
	assert.Equal(t, token.Semicolon, tok.Kind)
	assert.True(t, p.at(token.EOF))
}

func TestExpectDoesNotAdvanceOnMismatch(t *testing.T) {
	p := newTestParser("}")
	p.expect(token.Semicolon)
	assert.True(t, p.at(token.RBrace), "expect must leave the cursor in place on failure")
	assert.True(t, p.sink.HasErrors())
}

func TestWeakSeparatorToleratesMissingComma(t *testing.T) {
	p := newTestParser("public class C { public void M(int a int b) {} }")
	cu := p.Parse()

	td := cu.Members[0].(*ast.TypeDeclaration)
	method := td.Members[0].(*ast.MethodDeclaration)
	require.Len(t, method.Parameters, 2, "a missing comma between parameters must still recover both parameters")
	assert.True(t, p.sink.HasErrors())
}

func TestErrDistThrottleCollapsesCascadingErrors(t *testing.T) {
	// Every one of these five tokens is individually invalid at
	// top level; without a throttle each would report its own
	// "declaration expected" error.
	p := newTestParser("} } } } }")
	p.Parse()

	assert.Less(t, len(p.Diagnostics()), 5, "cascading errors at the same malformed position must collapse under the throttle")
}

func TestParseRecoversAfterMalformedTopLevelDeclaration(t *testing.T) {
	p := newTestParser(`
		&&&
		public class Good {}
	`)
	cu := p.Parse()

	require.NotEmpty(t, cu.Members, "a later well-formed declaration must still be parsed after a garbage prefix")

	td, ok := cu.Members[len(cu.Members)-1].(*ast.TypeDeclaration)
	require.True(t, ok)
	assert.Equal(t, "Good", td.Name)
}
