package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nova-lang/novac/internal/ast"
)

func TestParseExpressionPrecedenceOfArithmetic(t *testing.T) {
	p := newTestParser("1 + 2 * 3")
	expr := p.ParseExpression()

	bin, ok := expr.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Operator)

	right, ok := bin.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "*", right.Operator)
}

func TestParseExpressionAssignmentIsRightAssociative(t *testing.T) {
	p := newTestParser("a = b = c")
	expr := p.ParseExpression()

	outer, ok := expr.(*ast.AssignmentExpr)
	require.True(t, ok)

	inner, ok := outer.Value.(*ast.AssignmentExpr)
	require.True(t, ok)
	assert.Equal(t, "c", inner.Value.(*ast.Ident).Name)
}

func TestParseExpressionTernary(t *testing.T) {
	p := newTestParser("a ? b : c")
	expr := p.ParseExpression()

	cond, ok := expr.(*ast.ConditionalExpr)
	require.True(t, ok)
	assert.Equal(t, "b", cond.Then.(*ast.Ident).Name)
	assert.Equal(t, "c", cond.Else.(*ast.Ident).Name)
}

func TestParseExpressionCastBindsTighterThanAdditive(t *testing.T) {
	p := newTestParser("(int)a + b")
	expr := p.ParseExpression()

	bin, ok := expr.(*ast.BinaryExpr)
	require.True(t, ok)

	cast, ok := bin.Left.(*ast.CastExpr)
	require.True(t, ok)
	assert.Equal(t, "int", cast.Type.String())
}

func TestParseExpressionGenericMethodCall(t *testing.T) {
	p := newTestParser("Foo<int>(1, 2)")
	expr := p.ParseExpression()

	call, ok := expr.(*ast.CallExpr)
	require.True(t, ok)

	id, ok := call.Callee.(*ast.Ident)
	require.True(t, ok)
	assert.Equal(t, "Foo", id.Name)
	assert.Len(t, id.GenericArgs, 1)
	assert.Len(t, call.Arguments, 2)
}

func TestParseExpressionNestedGenericsSplitShiftRight(t *testing.T) {
	p := newTestParser("Foo<Bar<int>>(1)")
	expr := p.ParseExpression()

	call, ok := expr.(*ast.CallExpr)
	require.True(t, ok)

	id, ok := call.Callee.(*ast.Ident)
	require.True(t, ok)
	require.Len(t, id.GenericArgs, 1)

	inner, ok := id.GenericArgs[0].(*ast.TypeRef)
	require.True(t, ok)
	assert.Equal(t, "Bar", inner.Name)
}

func TestParseExpressionLambda(t *testing.T) {
	p := newTestParser("(x, y) => x + y")
	expr := p.ParseExpression()

	lam, ok := expr.(*ast.LambdaExpr)
	require.True(t, ok)
	assert.Len(t, lam.Params, 2)
	_, isExpr := lam.Body.(*ast.BinaryExpr)
	assert.True(t, isExpr)
}

func TestParseExpressionSingleIdentLambda(t *testing.T) {
	p := newTestParser("x => x")
	expr := p.ParseExpression()

	lam, ok := expr.(*ast.LambdaExpr)
	require.True(t, ok)
	require.Len(t, lam.Params, 1)
	assert.Equal(t, "x", lam.Params[0].Name)
}

func TestParseExpressionIsAndAs(t *testing.T) {
	p := newTestParser("obj is Foo")
	expr := p.ParseExpression()
	isExpr, ok := expr.(*ast.IsExpr)
	require.True(t, ok)
	assert.Equal(t, "Foo", isExpr.Type.String())

	p2 := newTestParser("obj as Foo")
	expr2 := p2.ParseExpression()
	asExpr, ok := expr2.(*ast.AsExpr)
	require.True(t, ok)
	assert.Equal(t, "Foo", asExpr.Type.String())
}

func TestParseExpressionNullableTypeDesugarsToNullable(t *testing.T) {
	p := newTestParser("int?")
	typ := p.parseType()
	assert.Equal(t, "System.Nullable", typ.(*ast.TypeRef).Name)
}
