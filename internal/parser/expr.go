package parser

import (
	"github.com/nova-lang/novac/internal/ast"
	"github.com/nova-lang/novac/internal/langver"
	"github.com/nova-lang/novac/internal/token"
)

// This file is the expression half of component R: the full precedence
// cascade from assignment down to primary, one level per method, each
// calling the next tighter level for its operands. Every level is
// left-associative unless noted; assignment and the conditional
// operator are right-associative.
type precLevel int

const (
	precAssignment precLevel = iota
	precConditional
	precNullCoalescing
	precLogicalOr
	precLogicalAnd
	precBitOr
	precBitXor
	precBitAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
	precUnary
)

func (p *Parser) parseExpressionAt(min precLevel) ast.Expression {
	if min <= precAssignment {
		return p.parseAssignment()
	}

	return p.parseConditional()
}

func (p *Parser) parseAssignment() ast.Expression {
	start := p.pos()
	left := p.parseConditional()

	if p.isAssignment() {
		op := p.tok().Value
		p.advance()
		right := p.parseAssignment() // right-associative

		return &ast.AssignmentExpr{
			Span: ast.SpanBetween(start, p.endPos()), Operator: op, Target: left, Value: right,
		}
	}

	return left
}

func (p *Parser) parseConditional() ast.Expression {
	start := p.pos()
	cond := p.parseNullCoalescing()

	if p.at(token.Question) {
		p.advance()

		then := p.parseAssignment()
		p.expect(token.Colon)
		els := p.parseAssignment()

		return &ast.ConditionalExpr{
			Span: ast.SpanBetween(start, p.endPos()), Condition: cond, Then: then, Else: els,
		}
	}

	return cond
}

func (p *Parser) parseNullCoalescing() ast.Expression {
	start := p.pos()
	left := p.parseLogicalOr()

	for p.at(token.QuestionQuestion) {
		p.advance()
		right := p.parseLogicalOr()
		left = &ast.BinaryExpr{Span: ast.SpanBetween(start, p.endPos()), Operator: "??", Left: left, Right: right}
	}

	return left
}

func (p *Parser) parseLogicalOr() ast.Expression {
	return p.parseLeftAssocBinary(token.PipePipe, "||", p.parseLogicalAnd)
}

func (p *Parser) parseLogicalAnd() ast.Expression {
	return p.parseLeftAssocBinary(token.AmpAmp, "&&", p.parseBitOr)
}

func (p *Parser) parseBitOr() ast.Expression {
	return p.parseLeftAssocBinary(token.Pipe, "|", p.parseBitXor)
}

func (p *Parser) parseBitXor() ast.Expression {
	return p.parseLeftAssocBinary(token.Caret, "^", p.parseBitAnd)
}

func (p *Parser) parseBitAnd() ast.Expression {
	return p.parseLeftAssocBinary(token.Amp, "&", p.parseEquality)
}

func (p *Parser) parseEquality() ast.Expression {
	start := p.pos()
	left := p.parseRelational()

	for p.at(token.Eq) || p.at(token.Ne) {
		op := p.tok().Kind.String()
		p.advance()
		right := p.parseRelational()
		left = &ast.BinaryExpr{Span: ast.SpanBetween(start, p.endPos()), Operator: op, Left: left, Right: right}
	}

	return left
}

func (p *Parser) parseRelational() ast.Expression {
	start := p.pos()
	left := p.parseShift()

	for {
		switch {
		case p.at(token.Lt) || p.at(token.Le) || p.at(token.Gt) || p.at(token.Ge):
			op := p.tok().Kind.String()
			p.advance()
			right := p.parseShift()
			left = &ast.BinaryExpr{Span: ast.SpanBetween(start, p.endPos()), Operator: op, Left: left, Right: right}
		case p.at(token.KwIs):
			p.advance()
			typ := p.parseType()
			left = &ast.IsExpr{Span: ast.SpanBetween(start, p.endPos()), Left: left, Type: typ}
		case p.at(token.KwAs):
			p.advance()
			typ := p.parseType()
			left = &ast.AsExpr{Span: ast.SpanBetween(start, p.endPos()), Left: left, Type: typ}
		default:
			return left
		}
	}
}

// parseShift is where isShiftRight matters: a '>>' seen here is always
// the shift operator (a generic argument list closes its own '>>' via
// peekGenericArgList before control ever reaches expression parsing at
// this level), so no splitting logic is needed at this call site.
func (p *Parser) parseShift() ast.Expression {
	return p.parseLeftAssocBinary2(token.Shl, "<<", token.Shr, ">>", p.parseAdditive)
}

func (p *Parser) parseAdditive() ast.Expression {
	return p.parseLeftAssocBinary2(token.Plus, "+", token.Minus, "-", p.parseMultiplicative)
}

func (p *Parser) parseMultiplicative() ast.Expression {
	start := p.pos()
	left := p.parseUnary()

	for p.at(token.Star) || p.at(token.Slash) || p.at(token.Percent) {
		op := p.tok().Kind.String()
		p.advance()
		right := p.parseUnary()
		left = &ast.BinaryExpr{Span: ast.SpanBetween(start, p.endPos()), Operator: op, Left: left, Right: right}
	}

	return left
}

func (p *Parser) parseLeftAssocBinary(k token.Kind, op string, next func() ast.Expression) ast.Expression {
	start := p.pos()
	left := next()

	for p.at(k) {
		p.advance()
		right := next()
		left = &ast.BinaryExpr{Span: ast.SpanBetween(start, p.endPos()), Operator: op, Left: left, Right: right}
	}

	return left
}

func (p *Parser) parseLeftAssocBinary2(k1 token.Kind, op1 string, k2 token.Kind, op2 string, next func() ast.Expression) ast.Expression {
	start := p.pos()
	left := next()

	for p.at(k1) || p.at(k2) {
		op := op1
		if p.at(k2) {
			op = op2
		}

		p.advance()

		right := next()
		left = &ast.BinaryExpr{Span: ast.SpanBetween(start, p.endPos()), Operator: op, Left: left, Right: right}
	}

	return left
}

// parseUnary handles prefix operators, casts (via isTypeCast) and
// pre-increment/decrement, bottoming out at parsePostfix.
func (p *Parser) parseUnary() ast.Expression {
	start := p.pos()

	if p.isTypeCast() {
		p.advance() // '('
		typ := p.parseType()
		p.expect(token.RParen)
		operand := p.parseUnary()

		return &ast.CastExpr{Span: ast.SpanBetween(start, p.endPos()), Type: typ, Target: operand}
	}

	if token.UnaryPrefixOperators[p.kind()] {
		op := p.tok().Kind.String()
		p.advance()
		operand := p.parseUnary()

		return &ast.UnaryExpr{Span: ast.SpanBetween(start, p.endPos()), Operator: op, Operand: operand}
	}

	return p.parsePostfix()
}

func (p *Parser) parsePostfix() ast.Expression {
	start := p.pos()
	expr := p.parsePrimary()

	for {
		switch {
		case p.at(token.Dot):
			p.advance()
			name := p.expectIdent()
			expr = &ast.MemberExpr{Span: ast.SpanBetween(start, p.endPos()), Target: expr, Name: name}
		case p.at(token.Arrow):
			p.advance()
			name := p.expectIdent()
			expr = &ast.PointerMemberExpr{Span: ast.SpanBetween(start, p.endPos()), Target: expr, Name: name}
		case p.at(token.LParen):
			expr = &ast.CallExpr{Span: ast.SpanBetween(start, p.endPos()), Callee: expr, Arguments: p.parseArgumentList(token.LParen, token.RParen)}
		case p.at(token.LBracket) && !p.isDims():
			expr = &ast.IndexExpr{Span: ast.SpanBetween(start, p.endPos()), Target: expr, Arguments: p.parseArgumentList(token.LBracket, token.RBracket)}
		case p.at(token.Inc):
			p.advance()
			expr = &ast.PostfixExpr{Span: ast.SpanBetween(start, p.endPos()), Operator: "++", Operand: expr}
		case p.at(token.Dec):
			p.advance()
			expr = &ast.PostfixExpr{Span: ast.SpanBetween(start, p.endPos()), Operator: "--", Operand: expr}
		default:
			return expr
		}
	}
}

func (p *Parser) parseArgumentList(open, close token.Kind) []*ast.Argument {
	p.expect(open)

	var args []*ast.Argument

	if !p.at(close) {
		for {
			args = append(args, p.parseArgument())

			if !p.weakSeparator(func() bool { return !p.at(close) && !p.at(token.EOF) }) {
				break
			}
		}
	}

	p.expect(close)

	return args
}

func (p *Parser) parseArgument() *ast.Argument {
	start := p.pos()

	name := ""
	if p.at(token.Ident) && p.look(1).Kind == token.Colon {
		name = p.advance().Value
		p.advance() // ':'
	}

	mod := ""
	if p.at(token.KwRef) || p.at(token.KwOut) {
		mod = p.tok().Kind.String()
		p.advance()
	}

	val := p.parseAssignment()

	return &ast.Argument{Span: ast.SpanBetween(start, p.endPos()), Name: name, Modifier: mod, Value: val}
}

func (p *Parser) parsePrimary() ast.Expression {
	start := p.pos()

	switch {
	case p.at(token.Ident):
		return p.parseIdentOrLambda()
	case p.at(token.IntLit), p.at(token.FloatLit), p.at(token.StringLit), p.at(token.CharLit), p.at(token.BoolLit), p.at(token.NullLit):
		t := p.advance()

		return &ast.Literal{Span: ast.SpanBetween(start, p.endPos()), Kind: literalKindName(t.Kind), Raw: t.Value, Value: t.Literal}
	case p.at(token.KwThis):
		p.advance()

		return &ast.ThisExpr{Span: ast.SpanBetween(start, p.endPos())}
	case p.at(token.KwBase):
		p.advance()

		return &ast.BaseExpr{Span: ast.SpanBetween(start, p.endPos())}
	case p.at(token.LParen):
		return p.parseParenOrLambda()
	case p.at(token.KwNew):
		return p.parseNewExpression()
	case p.at(token.KwStackalloc):
		p.advance()

		elemType := p.parseType()
		p.expect(token.LBracket)
		size := p.parseAssignment()
		p.expect(token.RBracket)

		return &ast.StackAllocExpr{Span: ast.SpanBetween(start, p.endPos()), ElementType: elemType, Size: size}
	case p.at(token.KwTypeof):
		p.advance()
		p.expect(token.LParen)
		typ := p.parseType()
		p.expect(token.RParen)

		return &ast.TypeofExpr{Span: ast.SpanBetween(start, p.endPos()), Type: typ}
	case p.at(token.KwSizeof):
		p.advance()
		p.expect(token.LParen)
		typ := p.parseType()
		p.expect(token.RParen)

		return &ast.SizeofExpr{Span: ast.SpanBetween(start, p.endPos()), Type: typ}
	case p.at(token.KwDefault):
		p.advance()

		if p.at(token.LParen) {
			p.advance()
			typ := p.parseType()
			p.expect(token.RParen)

			return &ast.DefaultExpr{Span: ast.SpanBetween(start, p.endPos()), Type: typ}
		}

		return &ast.DefaultExpr{Span: ast.SpanBetween(start, p.endPos())}
	case p.at(token.KwChecked), p.at(token.KwUnchecked):
		unchecked := p.at(token.KwUnchecked)
		p.advance()
		p.expect(token.LParen)
		inner := p.parseAssignment()
		p.expect(token.RParen)

		return &ast.CheckedExpr{Span: ast.SpanBetween(start, p.endPos()), Unchecked: unchecked, Inner: inner}
	case p.at(token.KwDelegate):
		return p.parseAnonymousMethod()
	default:
		p.errorAt(p.pos(), "E0200", msgExpectedExpression)
		p.advance()

		return &ast.Literal{Span: ast.SpanBetween(start, p.endPos()), Kind: "error", Raw: ""}
	}
}

func literalKindName(k token.Kind) string {
	switch k {
	case token.IntLit:
		return "int"
	case token.FloatLit:
		return "float"
	case token.StringLit:
		return "string"
	case token.CharLit:
		return "char"
	case token.BoolLit:
		return "bool"
	case token.NullLit:
		return "null"
	default:
		return "literal"
	}
}

// parseIdentOrLambda disambiguates `id => body` from a plain identifier
// (with an optional generic argument list) by lookahead on the token
// immediately after the identifier.
func (p *Parser) parseIdentOrLambda() ast.Expression {
	start := p.pos()

	if p.look(1).Kind == token.FatArrow {
		name := p.advance().Value
		p.advance() // '=>'
		body := p.parseLambdaBody()
		param := &ast.Parameter{Name: name}

		return &ast.LambdaExpr{Span: ast.SpanBetween(start, p.endPos()), Params: []*ast.Parameter{param}, Body: body}
	}

	genericFollow := map[token.Kind]bool{
		token.LParen: true, token.RParen: true, token.RBracket: true, token.Semicolon: true,
		token.Comma: true, token.Dot: true, token.Question: true, token.Colon: true,
		token.EOF: true,
	}

	name := p.advance().Value
	id := &ast.Ident{Span: ast.SpanBetween(start, p.endPos()), Name: name}

	if p.at(token.Lt) && p.isGenericFollowedByCurrent(genericFollow) {
		id.GenericArgs = p.parseGenericArgList()
	}

	return id
}

// isGenericFollowedByCurrent re-checks isGenericFollowedBy from the
// identifier just consumed; since parseIdentOrLambda already advanced
// past the identifier, this wraps the '<' lookahead directly rather than
// reusing isGenericFollowedBy's own identifier check.
func (p *Parser) isGenericFollowedByCurrent(follow map[token.Kind]bool) bool {
	p.cur.StartPeek()
	defer p.cur.ResetPeek()

	if !p.peekGenericArgList() {
		return false
	}

	return follow[p.cur.PeekAt(0).Kind]
}

func (p *Parser) parseGenericArgList() []ast.TypeExpr {
	p.expect(token.Lt)

	var args []ast.TypeExpr

	for {
		args = append(args, p.parseType())

		if p.at(token.Comma) {
			p.advance()

			continue
		}

		break
	}

	if p.isShiftRight() {
		// Split the '>>' into this level's close plus a synthetic '>'
		// for the enclosing level by simply consuming it once here;
		// nested calls rely on the same rule at their own level.
		p.advance()
	} else {
		p.expect(token.Gt)
	}

	return args
}

func (p *Parser) parseParenOrLambda() ast.Expression {
	start := p.pos()

	if p.looksLikeLambdaParams() {
		params := p.parseLambdaParamList()
		p.expect(token.FatArrow)
		body := p.parseLambdaBody()

		return &ast.LambdaExpr{Span: ast.SpanBetween(start, p.endPos()), Params: params, Body: body}
	}

	p.advance() // '('
	inner := p.parseAssignment()
	p.expect(token.RParen)

	return &ast.ParenExpr{Span: ast.SpanBetween(start, p.endPos()), Inner: inner}
}

// looksLikeLambdaParams peeks past a balanced '(' ... ')' to see whether
// it is immediately followed by '=>'.
func (p *Parser) looksLikeLambdaParams() bool {
	p.cur.StartPeek()
	defer p.cur.ResetPeek()

	depth := 0

	for {
		k := p.cur.PeekAt(0).Kind
		if k == token.EOF {
			return false
		}

		p.cur.Peek() // consume it

		if k == token.LParen {
			depth++
		} else if k == token.RParen {
			depth--
			if depth == 0 {
				break
			}
		}
	}

	return p.cur.PeekAt(0).Kind == token.FatArrow
}

func (p *Parser) parseLambdaParamList() []*ast.Parameter {
	p.expect(token.LParen)

	var params []*ast.Parameter

	for !p.at(token.RParen) && !p.at(token.EOF) {
		params = append(params, p.parseLambdaParam())

		if !p.weakSeparator(func() bool { return !p.at(token.RParen) && !p.at(token.EOF) }) {
			break
		}
	}

	p.expect(token.RParen)

	return params
}

func (p *Parser) parseLambdaParam() *ast.Parameter {
	start := p.pos()

	// A lambda parameter may be a bare name or a typed `Type name` pair;
	// disambiguated the same way isLocalVarDecl disambiguates a
	// statement, by checking whether a type name is followed by another
	// identifier.
	if p.at(token.Ident) && (p.look(1).Kind == token.Comma || p.look(1).Kind == token.RParen) {
		name := p.advance().Value

		return &ast.Parameter{Span: ast.SpanBetween(start, p.endPos()), Name: name}
	}

	typ := p.parseType()
	name := p.expectIdent()

	return &ast.Parameter{Span: ast.SpanBetween(start, p.endPos()), Type: typ, Name: name}
}

func (p *Parser) parseLambdaBody() ast.Node {
	if p.at(token.LBrace) {
		return p.parseBlock()
	}

	return p.parseAssignment()
}

func (p *Parser) parseAnonymousMethod() ast.Expression {
	start := p.pos()
	p.advance() // 'delegate'

	var params []*ast.Parameter
	if p.at(token.LParen) {
		params = p.parseLambdaParamList()
	}

	body := p.parseBlock()

	return &ast.AnonymousMethodExpr{Span: ast.SpanBetween(start, p.endPos()), Params: params, Body: body}
}

func (p *Parser) parseNewExpression() ast.Expression {
	start := p.pos()
	p.advance() // 'new'

	if p.at(token.LBracket) {
		p.advance()

		var sizes []ast.Expression
		for !p.at(token.RBracket) {
			sizes = append(sizes, p.parseAssignment())

			if !p.weakSeparator(func() bool { return !p.at(token.RBracket) }) {
				break
			}
		}

		p.expect(token.RBracket)
		init := p.parseArrayInitializerIfPresent()

		return &ast.ArrayCreationExpr{Span: ast.SpanBetween(start, p.endPos()), Sizes: sizes, Initializer: init}
	}

	typ := p.parseType()

	if p.at(token.LBracket) {
		p.advance()

		var sizes []ast.Expression
		for !p.at(token.RBracket) {
			sizes = append(sizes, p.parseAssignment())

			if !p.weakSeparator(func() bool { return !p.at(token.RBracket) }) {
				break
			}
		}

		p.expect(token.RBracket)
		init := p.parseArrayInitializerIfPresent()

		return &ast.ArrayCreationExpr{Span: ast.SpanBetween(start, p.endPos()), ElementType: typ, Sizes: sizes, Initializer: init}
	}

	var args []*ast.Argument
	if p.at(token.LParen) {
		args = p.parseArgumentList(token.LParen, token.RParen)
	}

	init := p.parseObjectInitializerIfPresent()

	return &ast.ObjectCreationExpr{Span: ast.SpanBetween(start, p.endPos()), Type: typ, Arguments: args, Initializer: init}
}

func (p *Parser) parseArrayInitializerIfPresent() []ast.Expression {
	if !p.at(token.LBrace) {
		return nil
	}

	return p.parseInitializerList()
}

func (p *Parser) parseObjectInitializerIfPresent() []ast.Expression {
	if !p.at(token.LBrace) {
		return nil
	}

	return p.parseInitializerList()
}

func (p *Parser) parseInitializerList() []ast.Expression {
	p.expect(token.LBrace)

	var elems []ast.Expression

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		elems = append(elems, p.parseAssignment())

		if !p.weakSeparator(func() bool { return !p.at(token.RBrace) && !p.at(token.EOF) }) {
			break
		}
	}

	p.expect(token.RBrace)

	return elems
}

// parseType is the type-name production shared by every declaration and
// cast site: identifier or built-in keyword, optional dotted
// qualification, optional generic argument list, optional array rank
// suffixes and pointer stars, optional trailing '?' for nullability.
func (p *Parser) parseType() ast.TypeExpr {
	start := p.pos()

	if p.at(token.KwVoid) {
		p.advance()

		return &ast.TypeRef{Span: ast.SpanBetween(start, p.endPos()), Name: "void"}
	}

	global := false
	if p.at(token.Ident) && p.tok().Value == "global" && p.look(1).Kind == token.DoubleColon {
		global = true
		p.advance()
		p.advance()
	}

	var name string

	if token.BuiltinTypeKeywords[p.kind()] {
		name = p.tok().Kind.String()
		p.advance()
	} else {
		name = p.expectIdent()

		for p.at(token.Dot) {
			p.advance()
			name += "." + p.expectIdent()
		}
	}

	tr := &ast.TypeRef{Name: name, IsGlobalQualified: global}

	if p.at(token.Lt) {
		tr.GenericArgs = p.parseGenericArgList()
	}

	for p.at(token.Star) {
		p.advance()
		tr.PointerDepth++
	}

	for p.isDims() {
		p.advance()

		rank := 1
		for p.at(token.Comma) {
			p.advance()
			rank++
		}

		p.expect(token.RBracket)
		tr.RankSpecifiers = append(tr.RankSpecifiers, rank)
	}

	if p.at(token.Question) && p.version.Supports(langver.FeatureNullableReferenceTypes) {
		p.advance()
		tr.IsNullable = true
	}

	tr.Span = ast.SpanBetween(start, p.endPos())

	if tr.IsNullable {
		return tr.AsNullable()
	}

	return tr
}
