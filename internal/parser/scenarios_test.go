package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nova-lang/novac/internal/ast"
)

// This file exercises the concrete boundary scenarios the grammar's own
// design notes call out: the three fixed source bugs, plus the
// trickiest lookahead cases the predicate layer exists to resolve.

// Scenario 1: checked/unchecked block statement immediately followed by
// a block-opening brace must not be swallowed by the expression form
// `checked(expr)` — the parenthesized form and the block form are
// distinguished by whether '(' or '{' follows, and the block form must
// win when a brace is there, unlike the operator-precedence bug the
// source's UnCheckedAndLBrace handling had.
func TestScenarioCheckedBlockNotMistakenForCheckedExpression(t *testing.T) {
	p := newTestParser("checked { x = 1; }")
	stmt := p.parseStatement()

	cs, ok := stmt.(*ast.CheckedStatement)
	require.True(t, ok, "checked followed by '{' must parse as a checked block statement")
	assert.False(t, cs.Unchecked)
}

func TestScenarioUncheckedBlockNotMistakenForUncheckedExpression(t *testing.T) {
	p := newTestParser("unchecked { x = 1; }")
	stmt := p.parseStatement()

	cs, ok := stmt.(*ast.CheckedStatement)
	require.True(t, ok)
	assert.True(t, cs.Unchecked)
}

// Scenario 2: the global attribute-target set recognizes both
// "assembly" and "module", not only the literal "assembly".
func TestScenarioGlobalAttributeTargetAcceptsModule(t *testing.T) {
	p := newTestParser(`
		[module: SkipVerification]
		public class C {}
	`)
	cu := p.Parse()

	require.Empty(t, p.Diagnostics())

	td := cu.Members[0].(*ast.TypeDeclaration)
	require.Len(t, td.Attributes, 1)
	assert.Equal(t, "module", td.Attributes[0].Target)
}

// Scenario 3: a local (member-level) attribute target is validated
// against its own closed set, distinct from the global set — a
// `[return: ...]` on a method parameter list is valid; `[assembly: ...]`
// on a field is not and falls back to an untargeted section instead of
// crashing the parser.
func TestScenarioLocalAttributeTargetRejectsGlobalOnlySpelling(t *testing.T) {
	p := newTestParser(`
		public class C {
			[assembly: Foo]
			public int x;
		}
	`)
	cu := p.Parse()

	td := cu.Members[0].(*ast.TypeDeclaration)
	field := td.Members[0].(*ast.FieldDeclaration)
	require.Len(t, field.Attributes, 1)
	assert.Empty(t, field.Attributes[0].Target, "assembly is not a valid member-level target, so the section is untargeted")
}

// Scenario 4: a cast of a parenthesized generic type must still be
// recognized as a cast, not a comparison chain.
func TestScenarioCastOfGenericType(t *testing.T) {
	p := newTestParser("(List<int>)obj")
	expr := p.ParseExpression()

	cast, ok := expr.(*ast.CastExpr)
	require.True(t, ok)
	assert.Equal(t, "List", cast.Type.(*ast.TypeRef).Name)
}

// Scenario 5: a generic method call nested inside another generic
// argument list must correctly split a trailing ">>" into two closing
// angle brackets rather than treating it as the shift operator.
func TestScenarioDeeplyNestedGenericsSplitMultipleShiftRights(t *testing.T) {
	p := newTestParser("var x = new Dictionary<string, List<int>>();")
	stmt := p.parseStatement().(*ast.LocalVariableDeclaration)

	require.Len(t, stmt.Declarators, 1)

	creation, ok := stmt.Declarators[0].Init.(*ast.ObjectCreationExpr)
	require.True(t, ok)
	assert.Equal(t, "Dictionary", creation.Type.(*ast.TypeRef).Name)
}

// Scenario 6: a label at the start of a statement is distinguished from
// a ternary conditional's colon and from a named-argument colon, both of
// which only ever appear once an expression is already underway.
func TestScenarioLabelNotConfusedWithTernaryColon(t *testing.T) {
	p := newTestParser("x = a ? b : c;")
	stmt := p.parseStatement()

	_, ok := stmt.(*ast.ExpressionStatement)
	assert.True(t, ok, "a colon inside an in-progress ternary must never be mistaken for a label")
}

// Scenario 7: `is` and `as` chain correctly against a following
// relational operator without the type operand absorbing it.
func TestScenarioIsExpressionInsideLargerRelational(t *testing.T) {
	p := newTestParser("a is int == b")
	expr := p.ParseExpression()

	eq, ok := expr.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "==", eq.Operator)

	_, ok = eq.Left.(*ast.IsExpr)
	assert.True(t, ok)
}

// Scenario 8: a missing separator inside an argument list recovers by
// treating the next token as the start of a new argument rather than
// aborting the whole call.
func TestScenarioMissingCommaInArgumentListRecovers(t *testing.T) {
	p := newTestParser("Foo(1 2, 3)")
	expr := p.ParseExpression()

	call, ok := expr.(*ast.CallExpr)
	require.True(t, ok)
	require.Len(t, call.Arguments, 3)
	assert.True(t, p.sink.HasErrors())
}
