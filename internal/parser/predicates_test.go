package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nova-lang/novac/internal/token"
)

func TestIsTypeCastAcceptsCast(t *testing.T) {
	p := newTestParser("(int)x")
	assert.True(t, p.isTypeCast())
	assert.Equal(t, token.LParen, p.kind(), "predicate must not move the cursor")
}

func TestIsTypeCastRejectsParenthesizedExpression(t *testing.T) {
	p := newTestParser("(a + b)")
	assert.False(t, p.isTypeCast())
	assert.Equal(t, token.LParen, p.kind())
}

func TestIsTypeCastRejectsParenthesizedCallLikeValue(t *testing.T) {
	p := newTestParser("(a)")
	// "(a)" alone with nothing meaningful after is ambiguous with a cast
	// of a value expression to be applied to nothing; here it is
	// followed by EOF, which is not a cast follower, so it must reject.
	assert.False(t, p.isTypeCast())
}

func TestIsGenericFollowedByAcceptsInstantiation(t *testing.T) {
	p := newTestParser("Foo<Bar>(")
	follow := map[token.Kind]bool{token.LParen: true}
	assert.True(t, p.isGenericFollowedBy(follow))
	assert.Equal(t, "Foo", p.tok().Value, "predicate must not move the cursor")
}

func TestIsGenericFollowedByRejectsComparison(t *testing.T) {
	p := newTestParser("Foo < Bar")
	follow := map[token.Kind]bool{token.LParen: true}
	assert.False(t, p.isGenericFollowedBy(follow))
}

func TestIsLocalVarDeclDetectsVarKeyword(t *testing.T) {
	p := newTestParser("var x = 1;")
	assert.True(t, p.isLocalVarDecl())
}

func TestIsLocalVarDeclDetectsTypedDeclaration(t *testing.T) {
	p := newTestParser("int x = 1;")
	assert.True(t, p.isLocalVarDecl())
}

func TestIsLocalVarDeclRejectsExpressionStatement(t *testing.T) {
	p := newTestParser("x = 1;")
	assert.False(t, p.isLocalVarDecl())
}

func TestIsLocalVarDeclRejectsBareCall(t *testing.T) {
	p := newTestParser("Foo();")
	assert.False(t, p.isLocalVarDecl())
}

func TestIsAssignmentAcceptsCompoundOperators(t *testing.T) {
	for _, src := range []string{"=", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<=", ">>="} {
		p := newTestParser(src)
		assert.Truef(t, p.isAssignment(), "expected %q to be an assignment operator", src)
	}
}

func TestIsAssignmentRejectsEquality(t *testing.T) {
	p := newTestParser("==")
	assert.False(t, p.isAssignment())
}

func TestIsLabelAcceptsIdentifierColon(t *testing.T) {
	p := newTestParser("done: return;")
	assert.True(t, p.isLabel())
}

func TestIsLabelRejectsPlainIdentifier(t *testing.T) {
	p := newTestParser("x = 1;")
	assert.False(t, p.isLabel())
}

func TestIsDimsAcceptsEmptyBrackets(t *testing.T) {
	p := newTestParser("[] x")
	assert.True(t, p.isDims())
}

func TestIsDimsRejectsIndexExpression(t *testing.T) {
	p := newTestParser("[1]")
	assert.False(t, p.isDims())
}

func TestIsYieldStatementRecognizesReturnAndBreak(t *testing.T) {
	p := newTestParser("yield return 1;")
	assert.True(t, p.isYieldStatement())

	p2 := newTestParser("yield break;")
	assert.True(t, p2.isYieldStatement())
}

func TestIsYieldStatementRejectsPlainIdentifierNamedYield(t *testing.T) {
	p := newTestParser("yield = 1;")
	assert.False(t, p.isYieldStatement())
}

func TestContextualKeywordPredicates(t *testing.T) {
	assert.True(t, newTestParser("where T : class").idIsWhere())
	assert.True(t, newTestParser("get;").idIsGet())
	assert.True(t, newTestParser("set;").idIsSet())
	assert.True(t, newTestParser("add;").idIsAdd())
	assert.True(t, newTestParser("remove;").idIsRemove())
	assert.False(t, newTestParser("Get;").idIsGet(), "contextual keywords are case-sensitive spellings, not case-insensitive")
}

func TestIsLocalAttrTargetAcceptsClosedSet(t *testing.T) {
	p := newTestParser("")

	for _, name := range []string{"field", "method", "param", "property", "return", "type"} {
		assert.Truef(t, p.isLocalAttrTarget(name), "expected %q to be a valid local attribute target", name)
	}

	assert.False(t, p.isLocalAttrTarget("assembly"))
}

func TestIsGlobalAttrTargetAcceptsFullSetNotJustAssembly(t *testing.T) {
	p := newTestParser("")

	assert.True(t, p.isGlobalAttrTarget("assembly"))
	assert.True(t, p.isGlobalAttrTarget("module"), "module is a valid global attribute target alongside assembly")
	assert.False(t, p.isGlobalAttrTarget("field"))
}

func TestIsTypedCatchDistinguishesFromCatchAll(t *testing.T) {
	p := newTestParser("catch (Exception e) {}")
	p.advance() // consume 'catch'
	assert.True(t, p.isTypedCatch())

	p2 := newTestParser("catch {}")
	p2.advance()
	assert.False(t, p2.isTypedCatch())
}
