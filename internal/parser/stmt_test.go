package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nova-lang/novac/internal/ast"
)

func TestParseIfElse(t *testing.T) {
	p := newTestParser("if (a) b; else c;")
	stmt := p.parseStatement()

	ifs, ok := stmt.(*ast.IfStatement)
	require.True(t, ok)
	assert.NotNil(t, ifs.Then)
	assert.NotNil(t, ifs.Else)
}

func TestParseDanglingElseBindsToNearestIf(t *testing.T) {
	p := newTestParser("if (a) if (b) c; else d;")
	stmt := p.parseStatement().(*ast.IfStatement)

	inner, ok := stmt.Then.(*ast.IfStatement)
	require.True(t, ok)
	assert.NotNil(t, inner.Else, "else must bind to the nearest unmatched if")
	assert.Nil(t, stmt.Else)
}

func TestParseForLoop(t *testing.T) {
	p := newTestParser("for (int i = 0; i < 10; i++) x;")
	stmt := p.parseStatement().(*ast.ForStatement)

	require.NotNil(t, stmt.Initializer)
	assert.NotNil(t, stmt.Condition)
	assert.Len(t, stmt.Iterators, 1)
}

func TestParseForEach(t *testing.T) {
	p := newTestParser("foreach (var x in items) print(x);")
	stmt := p.parseStatement().(*ast.ForEachStatement)

	assert.True(t, stmt.IsVar)
	assert.Equal(t, "x", stmt.Name)
}

func TestParseTryCatchFinally(t *testing.T) {
	p := newTestParser(`
		try { a(); }
		catch (IOException e) { b(); }
		catch { c(); }
		finally { d(); }
	`)
	stmt := p.parseStatement().(*ast.TryStatement)

	require.Len(t, stmt.Catches, 2)
	assert.NotNil(t, stmt.Catches[0].Type)
	assert.Nil(t, stmt.Catches[1].Type)
	assert.NotNil(t, stmt.Finally)
}

func TestParseGeneralCatchNotLastReportsError(t *testing.T) {
	p := newTestParser(`
		try { a(); }
		catch { b(); }
		catch (IOException e) { c(); }
	`)
	p.parseStatement()

	assert.True(t, p.sink.HasErrors())
}

func TestParseSwitchWithMultipleLabelsPerSection(t *testing.T) {
	p := newTestParser(`
		switch (x) {
		case 1:
		case 2:
			a();
			break;
		default:
			b();
			break;
		}
	`)
	stmt := p.parseStatement().(*ast.SwitchStatement)

	require.Len(t, stmt.Sections, 2)
	assert.Len(t, stmt.Sections[0].Labels, 2)
}

func TestParseYieldReturnAndBreak(t *testing.T) {
	p := newTestParser("yield return 1;")
	stmt := p.parseStatement().(*ast.YieldStatement)
	assert.False(t, stmt.Break)
	assert.NotNil(t, stmt.Value)

	p2 := newTestParser("yield break;")
	stmt2 := p2.parseStatement().(*ast.YieldStatement)
	assert.True(t, stmt2.Break)
}

func TestParseLabeledStatement(t *testing.T) {
	p := newTestParser("start: goto start;")
	stmt := p.parseStatement().(*ast.LabeledStatement)
	assert.Equal(t, "start", stmt.Label)

	goStmt, ok := stmt.Statement.(*ast.GotoStatement)
	require.True(t, ok)
	assert.Equal(t, "start", goStmt.Label)
}

func TestParseLocalVarDeclVsExpressionStatement(t *testing.T) {
	p := newTestParser("int x = 1;")
	_, ok := p.parseStatement().(*ast.LocalVariableDeclaration)
	assert.True(t, ok)

	p2 := newTestParser("x = 1;")
	_, ok2 := p2.parseStatement().(*ast.ExpressionStatement)
	assert.True(t, ok2)
}

func TestParseFixedWithPointerTypeIsAccepted(t *testing.T) {
	p := newTestParser("fixed (int* p = &x) { Use(p); }")
	stmt := p.parseStatement().(*ast.FixedStatement)

	require.Len(t, stmt.Declarators, 1)
	assert.False(t, p.sink.HasErrors())
}

func TestParseFixedWithoutPointerTypeReportsError(t *testing.T) {
	p := newTestParser("fixed (int p = &x) { Use(p); }")
	p.parseStatement()

	assert.True(t, p.sink.HasErrors(), "fixed requires the declared type to have pointer nesting >= 1")
}

func TestParseUsingStatementWithDeclaration(t *testing.T) {
	p := newTestParser("using (var f = Open()) { Read(f); }")
	stmt := p.parseStatement().(*ast.UsingStatement)
	require.NotNil(t, stmt.Decl)
	assert.Nil(t, stmt.Resource)
}
