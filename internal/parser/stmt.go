package parser

import (
	"github.com/nova-lang/novac/internal/ast"
	"github.com/nova-lang/novac/internal/token"
)

// This file is the statement half of component R: parseStatement is the
// twenty-way dispatch the grammar calls for, keyed on the current
// token's kind, falling through to the local-declaration/expression
// disambiguation (isLocalVarDecl) when nothing else matches.
func (p *Parser) parseStatement() ast.Statement {
	switch {
	case p.at(token.LBrace):
		return p.parseBlock()
	case p.at(token.Semicolon):
		start := p.pos()
		p.advance()

		return &ast.EmptyStatement{Span: ast.SpanBetween(start, p.endPos())}
	case p.at(token.KwIf):
		return p.parseIf()
	case p.at(token.KwSwitch):
		return p.parseSwitch()
	case p.at(token.KwWhile):
		return p.parseWhile()
	case p.at(token.KwDo):
		return p.parseDo()
	case p.at(token.KwFor):
		return p.parseFor()
	case p.at(token.KwForeach):
		return p.parseForEach()
	case p.at(token.KwBreak):
		return p.parseBreak()
	case p.at(token.KwContinue):
		return p.parseContinue()
	case p.at(token.KwGoto):
		return p.parseGoto()
	case p.at(token.KwReturn):
		return p.parseReturn()
	case p.at(token.KwThrow):
		return p.parseThrow()
	case p.at(token.KwTry):
		return p.parseTry()
	case p.at(token.KwLock):
		return p.parseLock()
	case p.at(token.KwUsing):
		return p.parseUsingStatement()
	case p.at(token.KwFixed):
		return p.parseFixed()
	case p.at(token.KwUnsafe):
		return p.parseUnsafe()
	case (p.at(token.KwChecked) || p.at(token.KwUnchecked)) && p.look(1).Kind == token.LBrace:
		return p.parseCheckedStatement()
	case p.isYieldStatement():
		return p.parseYield()
	case p.isLabel():
		return p.parseLabeled()
	case p.at(token.KwConst):
		return p.parseLocalConst()
	case p.isLocalVarDecl():
		return p.parseLocalVarDeclStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseBlock() *ast.BlockStatement {
	start := p.pos()
	p.expect(token.LBrace)

	var stmts []ast.Statement

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		before := p.cur.Mark()

		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}

		if p.cur.Mark() == before {
			p.errorAt(p.pos(), "E0201", msgExpectedStatement)
			p.advance()
		}
	}

	p.expect(token.RBrace)

	return &ast.BlockStatement{Span: ast.SpanBetween(start, p.endPos()), Statements: stmts}
}

func (p *Parser) parseIf() ast.Statement {
	start := p.pos()
	p.advance()
	p.expect(token.LParen)
	cond := p.parseExpressionAt(precAssignment)
	p.expect(token.RParen)
	then := p.parseStatement()

	var els ast.Statement
	if p.at(token.KwElse) {
		p.advance()
		els = p.parseStatement()
	}

	return &ast.IfStatement{Span: ast.SpanBetween(start, p.endPos()), Condition: cond, Then: then, Else: els}
}

func (p *Parser) parseSwitch() ast.Statement {
	start := p.pos()
	p.advance()
	p.expect(token.LParen)
	subject := p.parseExpressionAt(precAssignment)
	p.expect(token.RParen)
	p.expect(token.LBrace)

	var sections []*ast.SwitchSection

	for p.at(token.KwCase) || p.at(token.KwDefault) {
		sections = append(sections, p.parseSwitchSection())
	}

	p.expect(token.RBrace)

	return &ast.SwitchStatement{Span: ast.SpanBetween(start, p.endPos()), Subject: subject, Sections: sections}
}

func (p *Parser) parseSwitchSection() *ast.SwitchSection {
	start := p.pos()

	var labels []ast.Expression

	for p.at(token.KwCase) || p.at(token.KwDefault) {
		if p.at(token.KwDefault) {
			p.advance()
			labels = append(labels, nil)
		} else {
			p.advance()
			labels = append(labels, p.parseExpressionAt(precAssignment))
		}

		p.expect(token.Colon)
	}

	var stmts []ast.Statement
	for !p.at(token.KwCase) && !p.at(token.KwDefault) && !p.at(token.RBrace) && !p.at(token.EOF) {
		stmts = append(stmts, p.parseStatement())
	}

	return &ast.SwitchSection{Span: ast.SpanBetween(start, p.endPos()), Labels: labels, Statements: stmts}
}

func (p *Parser) parseWhile() ast.Statement {
	start := p.pos()
	p.advance()
	p.expect(token.LParen)
	cond := p.parseExpressionAt(precAssignment)
	p.expect(token.RParen)
	body := p.parseStatement()

	return &ast.WhileStatement{Span: ast.SpanBetween(start, p.endPos()), Condition: cond, Body: body}
}

func (p *Parser) parseDo() ast.Statement {
	start := p.pos()
	p.advance()
	body := p.parseStatement()
	p.expect(token.KwWhile)
	p.expect(token.LParen)
	cond := p.parseExpressionAt(precAssignment)
	p.expect(token.RParen)
	p.expect(token.Semicolon)

	return &ast.DoStatement{Span: ast.SpanBetween(start, p.endPos()), Body: body, Condition: cond}
}

func (p *Parser) parseFor() ast.Statement {
	start := p.pos()
	p.advance()
	p.expect(token.LParen)

	fs := &ast.ForStatement{}

	if !p.at(token.Semicolon) {
		if p.isLocalVarDecl() {
			fs.Initializer = p.parseLocalVarDeclNoSemicolon()
		} else {
			fs.InitExprs = append(fs.InitExprs, p.parseExpressionAt(precAssignment))

			for p.at(token.Comma) {
				p.advance()
				fs.InitExprs = append(fs.InitExprs, p.parseExpressionAt(precAssignment))
			}
		}
	}

	p.expect(token.Semicolon)

	if !p.at(token.Semicolon) {
		fs.Condition = p.parseExpressionAt(precAssignment)
	}

	p.expect(token.Semicolon)

	if !p.at(token.RParen) {
		fs.Iterators = append(fs.Iterators, p.parseExpressionAt(precAssignment))

		for p.at(token.Comma) {
			p.advance()
			fs.Iterators = append(fs.Iterators, p.parseExpressionAt(precAssignment))
		}
	}

	p.expect(token.RParen)
	fs.Body = p.parseStatement()
	fs.Span = ast.SpanBetween(start, p.endPos())

	return fs
}

func (p *Parser) parseForEach() ast.Statement {
	start := p.pos()
	p.advance()
	p.expect(token.LParen)

	isVar := false

	var typ ast.TypeExpr

	if p.at(token.KwVar) {
		isVar = true
		p.advance()
	} else {
		typ = p.parseType()
	}

	name := p.expectIdent()
	p.expect(token.KwIn)
	coll := p.parseExpressionAt(precAssignment)
	p.expect(token.RParen)
	body := p.parseStatement()

	return &ast.ForEachStatement{
		Span: ast.SpanBetween(start, p.endPos()), IsVar: isVar, Type: typ, Name: name, Collection: coll, Body: body,
	}
}

func (p *Parser) parseBreak() ast.Statement {
	start := p.pos()
	p.advance()
	p.expect(token.Semicolon)

	return &ast.BreakStatement{Span: ast.SpanBetween(start, p.endPos())}
}

func (p *Parser) parseContinue() ast.Statement {
	start := p.pos()
	p.advance()
	p.expect(token.Semicolon)

	return &ast.ContinueStatement{Span: ast.SpanBetween(start, p.endPos())}
}

func (p *Parser) parseGoto() ast.Statement {
	start := p.pos()
	p.advance()

	g := &ast.GotoStatement{}

	switch {
	case p.at(token.KwCase):
		p.advance()
		g.CaseExpr = p.parseExpressionAt(precAssignment)
	case p.at(token.KwDefault):
		p.advance()
		g.IsDefault = true
	default:
		g.Label = p.expectIdent()
	}

	p.expect(token.Semicolon)
	g.Span = ast.SpanBetween(start, p.endPos())

	return g
}

func (p *Parser) parseReturn() ast.Statement {
	start := p.pos()
	p.advance()

	var val ast.Expression
	if !p.at(token.Semicolon) {
		val = p.parseExpressionAt(precAssignment)
	}

	p.expect(token.Semicolon)

	return &ast.ReturnStatement{Span: ast.SpanBetween(start, p.endPos()), Value: val}
}

func (p *Parser) parseThrow() ast.Statement {
	start := p.pos()
	p.advance()

	var val ast.Expression
	if !p.at(token.Semicolon) {
		val = p.parseExpressionAt(precAssignment)
	}

	p.expect(token.Semicolon)

	return &ast.ThrowStatement{Span: ast.SpanBetween(start, p.endPos()), Value: val}
}

func (p *Parser) parseTry() ast.Statement {
	start := p.pos()
	p.advance()
	body := p.parseBlock()

	var catches []*ast.CatchClause

	sawGeneral := false

	for p.at(token.KwCatch) {
		cstart := p.pos()
		p.advance()

		if sawGeneral {
			p.errorAt(cstart, "E0202", msgInvalidCatchOrder)
		}

		cc := &ast.CatchClause{}

		if p.isTypedCatch() {
			p.expect(token.LParen)
			cc.Type = p.parseType()

			if p.at(token.Ident) {
				cc.Name = p.advance().Value
			}

			p.expect(token.RParen)
		}

		if cc.Type == nil {
			sawGeneral = true
		}

		cc.Body = p.parseBlock()
		cc.Span = ast.SpanBetween(cstart, p.endPos())
		catches = append(catches, cc)
	}

	var finally *ast.BlockStatement
	if p.at(token.KwFinally) {
		p.advance()
		finally = p.parseBlock()
	}

	return &ast.TryStatement{Span: ast.SpanBetween(start, p.endPos()), Body: body, Catches: catches, Finally: finally}
}

func (p *Parser) parseLock() ast.Statement {
	start := p.pos()
	p.advance()
	p.expect(token.LParen)
	target := p.parseExpressionAt(precAssignment)
	p.expect(token.RParen)
	body := p.parseStatement()

	return &ast.LockStatement{Span: ast.SpanBetween(start, p.endPos()), Target: target, Body: body}
}

func (p *Parser) parseUsingStatement() ast.Statement {
	start := p.pos()
	p.advance()
	p.expect(token.LParen)

	us := &ast.UsingStatement{}

	if p.isLocalVarDecl() {
		us.Decl = p.parseLocalVarDeclNoSemicolon()
	} else {
		us.Resource = p.parseExpressionAt(precAssignment)
	}

	p.expect(token.RParen)
	us.Body = p.parseStatement()
	us.Span = ast.SpanBetween(start, p.endPos())

	return us
}

func (p *Parser) parseFixed() ast.Statement {
	start := p.pos()
	p.advance()
	p.expect(token.LParen)

	typPos := p.pos()
	typ := p.parseType()

	if tr, ok := typ.(*ast.TypeRef); !ok || tr.PointerDepth < 1 {
		p.errorAt(typPos, "E0106", msgFixedRequiresPointer)
	}

	var decls []*ast.VariableDeclarator

	for {
		decls = append(decls, p.parseVariableDeclarator())

		if p.at(token.Comma) {
			p.advance()

			continue
		}

		break
	}

	p.expect(token.RParen)
	body := p.parseStatement()

	return &ast.FixedStatement{Span: ast.SpanBetween(start, p.endPos()), Type: typ, Declarators: decls, Body: body}
}

func (p *Parser) parseUnsafe() ast.Statement {
	start := p.pos()
	p.advance()
	body := p.parseBlock()

	return &ast.UnsafeStatement{Span: ast.SpanBetween(start, p.endPos()), Body: body}
}

func (p *Parser) parseCheckedStatement() ast.Statement {
	start := p.pos()
	unchecked := p.at(token.KwUnchecked)
	p.advance()
	body := p.parseBlock()

	return &ast.CheckedStatement{Span: ast.SpanBetween(start, p.endPos()), Unchecked: unchecked, Body: body}
}

func (p *Parser) parseYield() ast.Statement {
	start := p.pos()
	p.advance() // 'yield'

	if p.at(token.KwBreak) {
		p.advance()
		p.expect(token.Semicolon)

		return &ast.YieldStatement{Span: ast.SpanBetween(start, p.endPos()), Break: true}
	}

	p.expect(token.KwReturn)
	val := p.parseExpressionAt(precAssignment)
	p.expect(token.Semicolon)

	return &ast.YieldStatement{Span: ast.SpanBetween(start, p.endPos()), Value: val}
}

func (p *Parser) parseLabeled() ast.Statement {
	start := p.pos()
	label := p.advance().Value
	p.advance() // ':'
	stmt := p.parseStatement()

	return &ast.LabeledStatement{Span: ast.SpanBetween(start, p.endPos()), Label: label, Statement: stmt}
}

func (p *Parser) parseLocalConst() ast.Statement {
	start := p.pos()
	p.advance()
	typ := p.parseType()

	var decls []*ast.VariableDeclarator
	for {
		decls = append(decls, p.parseVariableDeclarator())

		if p.at(token.Comma) {
			p.advance()

			continue
		}

		break
	}

	p.expect(token.Semicolon)

	return &ast.LocalConstDeclaration{Span: ast.SpanBetween(start, p.endPos()), Type: typ, Declarators: decls}
}

func (p *Parser) parseLocalVarDeclStatement() ast.Statement {
	decl := p.parseLocalVarDeclNoSemicolon()
	p.expect(token.Semicolon)
	decl.Span = ast.SpanBetween(decl.Span.Start, p.endPos())

	return decl
}

func (p *Parser) parseLocalVarDeclNoSemicolon() *ast.LocalVariableDeclaration {
	start := p.pos()

	isVar := false

	var typ ast.TypeExpr

	if p.at(token.KwVar) {
		isVar = true
		p.advance()
	} else {
		typ = p.parseType()
	}

	var decls []*ast.VariableDeclarator
	for {
		decls = append(decls, p.parseVariableDeclarator())

		if p.at(token.Comma) {
			p.advance()

			continue
		}

		break
	}

	return &ast.LocalVariableDeclaration{Span: ast.SpanBetween(start, p.endPos()), IsVar: isVar, Type: typ, Declarators: decls}
}

func (p *Parser) parseVariableDeclarator() *ast.VariableDeclarator {
	start := p.pos()
	name := p.expectIdent()

	var init ast.Expression
	if p.at(token.Assign) {
		p.advance()
		init = p.parseAssignment()
	}

	return &ast.VariableDeclarator{Span: ast.SpanBetween(start, p.endPos()), Name: name, Init: init}
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	start := p.pos()
	expr := p.parseExpressionAt(precAssignment)
	p.expect(token.Semicolon)

	return &ast.ExpressionStatement{Span: ast.SpanBetween(start, p.endPos()), Expression: expr}
}
