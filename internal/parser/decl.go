package parser

import (
	"github.com/nova-lang/novac/internal/ast"
	"github.com/nova-lang/novac/internal/token"
)

// parseUsingDirectives consumes every leading `using ...;` directive at
// the top of a compilation unit or the start of a namespace body.
func (p *Parser) parseUsingDirectives() []*ast.UsingDirective {
	var out []*ast.UsingDirective

	for p.at(token.KwUsing) {
		start := p.pos()
		p.advance()

		u := &ast.UsingDirective{}

		if p.at(token.Ident) && p.look(1).Kind == token.Assign {
			u.Alias = p.advance().Value
			p.advance() // '='
		}

		u.Name = p.parseQualident()
		p.expect(token.Semicolon)
		u.Span = ast.SpanBetween(start, p.endPos())
		out = append(out, u)
	}

	return out
}

func (p *Parser) parseQualident() string {
	name := p.expectIdent()

	for p.at(token.Dot) {
		p.advance()
		name += "." + p.expectIdent()
	}

	return name
}

// parseNamespaceMember dispatches on the current token to one of:
// attribute section, namespace declaration, or type declaration —
// everything that may sit directly inside a compilation unit or a
// namespace body.
func (p *Parser) parseNamespaceMember() ast.Declaration {
	attrs := p.parseAttributeSections(false)

	switch {
	case p.at(token.KwNamespace):
		return p.parseNamespace()
	case p.startsTypeDeclaration():
		return p.parseTypeDeclaration(attrs)
	case p.at(token.EOF), p.at(token.RBrace):
		return nil
	default:
		p.errorAt(p.pos(), "E0002", msgExpectedDeclaration)
		p.syncTo(declarationSync)

		return nil
	}
}

// startsTypeDeclaration reports whether the current position (after any
// modifiers) begins a class/struct/interface/enum/delegate declaration.
// Modifiers are peeked past without being consumed.
func (p *Parser) startsTypeDeclaration() bool {
	p.cur.StartPeek()
	defer p.cur.ResetPeek()

	for modifierBit[p.cur.PeekAt(0).Kind] != 0 {
		p.cur.Peek() // consume the modifier
	}

	k := p.cur.PeekAt(0).Kind

	return k == token.KwClass || k == token.KwStruct || k == token.KwInterface ||
		k == token.KwEnum || k == token.KwDelegate
}

func (p *Parser) parseNamespace() ast.Declaration {
	start := p.pos()
	p.advance()
	name := p.parseQualident()
	p.expect(token.LBrace)

	ns := &ast.NamespaceDeclaration{Name: name}
	ns.Usings = p.parseUsingDirectives()

	p.unit.blockStart(nsContainer{ns})

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		before := p.cur.Mark()

		decl := p.parseNamespaceMember()
		if decl != nil {
			p.unit.addChild(decl)
		}

		if p.cur.Mark() == before {
			p.advance()
		}
	}

	p.unit.blockEnd()
	p.expect(token.RBrace)
	ns.Span = ast.SpanBetween(start, p.endPos())

	return ns
}

// parseAttributeSections consumes zero or more bracketed attribute
// sections. Adjacent sections never merge: each `[...]` group always
// yields its own *ast.AttributeSection even when its target and
// contents are identical to the previous one, and local-declaration
// targets are validated against the closed set (isLocalAttrTarget) or,
// at the top of a compilation unit, against the global set
// (isGlobalAttrTarget) — which recognizes both "assembly" and "module",
// unlike the single-literal check this grammar's ancestor used.
func (p *Parser) parseAttributeSections(local bool) []*ast.AttributeSection {
	var sections []*ast.AttributeSection

	for p.at(token.LBracket) {
		start := p.pos()
		p.advance()

		target := ""

		if p.at(token.Ident) && p.look(1).Kind == token.Colon {
			candidate := p.tok().Value

			valid := false
			if local {
				valid = p.isLocalAttrTarget(candidate)
			} else {
				valid = p.isGlobalAttrTarget(candidate)
			}

			// The colon-qualified prefix is always consumed once it has
			// this shape, valid or not: leaving it in place would strand
			// the attribute-name production on a bare ':' it can never
			// consume. An invalid target is reported and dropped rather
			// than recorded on the section.
			p.advance()
			p.advance() // ':'

			if valid {
				target = candidate
			} else {
				p.errorAt(start, "E0105", msgInvalidAttrTarget, candidate)
			}
		}

		var attrs []*ast.Attribute

		for !p.at(token.RBracket) && !p.at(token.EOF) {
			attrs = append(attrs, p.parseAttribute())

			if !p.weakSeparator(func() bool { return !p.at(token.RBracket) && !p.at(token.EOF) }) {
				break
			}
		}

		p.expect(token.RBracket)

		sections = append(sections, &ast.AttributeSection{
			Span: ast.SpanBetween(start, p.endPos()), Target: target, Attributes: attrs,
		})
	}

	return sections
}

func (p *Parser) parseAttribute() *ast.Attribute {
	start := p.pos()
	name := p.parseQualident()

	var args []ast.AttributeArgument

	if p.at(token.LParen) {
		p.advance()

		for !p.at(token.RParen) && !p.at(token.EOF) {
			argName := ""

			if p.at(token.Ident) && p.look(1).Kind == token.Assign {
				argName = p.advance().Value
				p.advance()
			}

			args = append(args, ast.AttributeArgument{Name: argName, Value: p.parseAssignment()})

			if !p.weakSeparator(func() bool { return !p.at(token.RParen) && !p.at(token.EOF) }) {
				break
			}
		}

		p.expect(token.RParen)
	}

	return &ast.Attribute{Span: ast.SpanBetween(start, p.endPos()), Name: name, Arguments: args}
}

func (p *Parser) parseTypeDeclaration(attrs []*ast.AttributeSection) ast.Declaration {
	start := p.pos()
	mods := p.parseModifiers()

	switch {
	case p.at(token.KwClass):
		return p.parseClassLike(start, attrs, mods, ast.TypeClass)
	case p.at(token.KwStruct):
		return p.parseClassLike(start, attrs, mods, ast.TypeStruct)
	case p.at(token.KwInterface):
		return p.parseClassLike(start, attrs, mods, ast.TypeInterface)
	case p.at(token.KwEnum):
		return p.parseEnum(start, attrs, mods)
	case p.at(token.KwDelegate):
		return p.parseDelegate(start, attrs, mods)
	default:
		p.errorAt(p.pos(), "E0003", msgExpectedDeclaration)
		p.syncTo(declarationSync)

		return nil
	}
}

func (p *Parser) parseClassLike(start ast.Position, attrs []*ast.AttributeSection, mods ast.ModifierSet, kind ast.TypeKind) ast.Declaration {
	p.advance() // class/struct/interface

	allowed := ast.ClassModifiers
	if kind != ast.TypeClass {
		allowed = ast.StructIfaceMods
	}

	p.checkModifiers(mods, allowed)

	name := p.expectIdent()

	td := &ast.TypeDeclaration{Attributes: attrs, Modifiers: mods, Kind: kind, Name: name}

	if p.at(token.Lt) {
		td.TypeParameters = p.parseTypeParameterList()
	}

	if p.at(token.Colon) {
		p.advance()
		td.BaseList = append(td.BaseList, p.parseType())

		for p.at(token.Comma) {
			p.advance()
			td.BaseList = append(td.BaseList, p.parseType())
		}
	}

	td.Constraints = p.parseConstraintClauses()

	p.expect(token.LBrace)
	p.unit.blockStart(typeContainer{td})

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		before := p.cur.Mark()

		member := p.parseMember(kind)
		if member != nil {
			p.unit.addChild(member)
		}

		if p.cur.Mark() == before {
			p.errorAt(p.pos(), "E0004", msgExpectedMember)
			p.advance()
		}
	}

	p.unit.blockEnd()
	p.expect(token.RBrace)

	if p.at(token.Semicolon) {
		p.advance()
	}

	td.Span = ast.SpanBetween(start, p.endPos())

	return td
}

func (p *Parser) parseTypeParameterList() []*ast.TypeParameter {
	p.expect(token.Lt)

	var params []*ast.TypeParameter

	for {
		start := p.pos()
		attrs := p.parseAttributeSections(true)

		variance := ""
		if p.at(token.KwIn) {
			variance = "in"
			p.advance()
		} else if p.at(token.Ident) && p.tok().Value == "out" {
			variance = "out"
			p.advance()
		}

		name := p.expectIdent()

		var attr *ast.AttributeSection
		if len(attrs) > 0 {
			attr = attrs[0]
		}

		params = append(params, &ast.TypeParameter{
			Span: ast.SpanBetween(start, p.endPos()), Name: name, Variance: variance, Attribute: attr,
		})

		if p.at(token.Comma) {
			p.advance()

			continue
		}

		break
	}

	if p.isShiftRight() {
		p.advance()
	} else {
		p.expect(token.Gt)
	}

	return params
}

func (p *Parser) parseConstraintClauses() []*ast.ConstraintClause {
	var clauses []*ast.ConstraintClause

	for p.idIsWhere() {
		start := p.pos()
		p.advance()
		paramName := p.expectIdent()
		p.expect(token.Colon)

		cc := &ast.ConstraintClause{ParameterName: paramName}

		for {
			switch {
			case p.at(token.KwClass):
				cc.HasClassConstr = true
				p.advance()
			case p.at(token.KwStruct):
				cc.HasStructConst = true
				p.advance()
			case p.at(token.KwNew):
				p.advance()
				p.expect(token.LParen)
				p.expect(token.RParen)
				cc.HasNewConstr = true
			default:
				cc.Constraints = append(cc.Constraints, p.parseType())
			}

			if p.at(token.Comma) {
				p.advance()

				continue
			}

			break
		}

		cc.Span = ast.SpanBetween(start, p.endPos())
		clauses = append(clauses, cc)
	}

	return clauses
}

func (p *Parser) parseEnum(start ast.Position, attrs []*ast.AttributeSection, mods ast.ModifierSet) ast.Declaration {
	p.advance() // enum
	p.checkModifiers(mods, ast.StructIfaceMods)

	name := p.expectIdent()

	td := &ast.TypeDeclaration{Attributes: attrs, Modifiers: mods, Kind: ast.TypeEnum, Name: name}

	if p.at(token.Colon) {
		p.advance()
		td.EnumUnderlying = p.parseType()
	}

	p.expect(token.LBrace)

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		mstart := p.pos()
		mattrs := p.parseAttributeSections(true)
		mname := p.expectIdent()

		em := &ast.EnumMember{Span: ast.SpanBetween(mstart, p.endPos()), Attributes: mattrs, Name: mname}

		if p.at(token.Assign) {
			p.advance()
			em.Value = p.parseAssignment()
		}

		td.EnumMembers = append(td.EnumMembers, em)

		if !p.weakSeparator(func() bool { return !p.at(token.RBrace) && !p.at(token.EOF) }) {
			break
		}
	}

	p.expect(token.RBrace)

	if p.at(token.Semicolon) {
		p.advance()
	}

	td.Span = ast.SpanBetween(start, p.endPos())

	return td
}

func (p *Parser) parseDelegate(start ast.Position, attrs []*ast.AttributeSection, mods ast.ModifierSet) ast.Declaration {
	p.advance() // delegate
	p.checkModifiers(mods, ast.StructIfaceMods)

	ret := p.parseType()
	name := p.expectIdent()

	td := &ast.TypeDeclaration{
		Attributes: attrs, Modifiers: mods, Kind: ast.TypeDelegate, Name: name, DelegateReturn: ret,
	}

	if p.at(token.Lt) {
		td.DelegateTypeParm = p.parseTypeParameterList()
	}

	td.DelegateParams = p.parseParameterList()
	td.Constraints = p.parseConstraintClauses()
	p.expect(token.Semicolon)
	td.Span = ast.SpanBetween(start, p.endPos())

	return td
}

func (p *Parser) parseParameterList() []*ast.Parameter {
	p.expect(token.LParen)

	var params []*ast.Parameter

	for !p.at(token.RParen) && !p.at(token.EOF) {
		params = append(params, p.parseParameter())

		if !p.weakSeparator(func() bool { return !p.at(token.RParen) && !p.at(token.EOF) }) {
			break
		}
	}

	p.expect(token.RParen)

	return params
}

func (p *Parser) parseParameter() *ast.Parameter {
	start := p.pos()
	attrs := p.parseAttributeSections(true)

	modifier := ""

	switch {
	case p.at(token.KwRef):
		modifier = "ref"
		p.advance()
	case p.at(token.KwOut):
		modifier = "out"
		p.advance()
	case p.at(token.KwParams):
		modifier = "params"
		p.advance()
	case p.at(token.KwThis):
		modifier = "this"
		p.advance()
	}

	typ := p.parseType()
	name := p.expectIdent()

	var def ast.Expression
	if p.at(token.Assign) {
		p.advance()
		def = p.parseAssignment()
	}

	var attr *ast.AttributeSection
	if len(attrs) > 0 {
		attr = attrs[0]
	}

	return &ast.Parameter{
		Span: ast.SpanBetween(start, p.endPos()), Attributes: attrOrNil(attr), Modifier: modifier,
		Type: typ, Name: name, Default: def,
	}
}

func attrOrNil(a *ast.AttributeSection) []*ast.AttributeSection {
	if a == nil {
		return nil
	}

	return []*ast.AttributeSection{a}
}

// parseMember is the twenty-way member dispatch inside a class/struct/
// interface body: constants, fields, methods (incl. generics and
// explicit interface implementations), properties, indexers, events,
// constructors, static constructors, destructors, and operators.
func (p *Parser) parseMember(owner ast.TypeKind) ast.Declaration {
	start := p.pos()
	attrs := p.parseAttributeSections(true)
	mods := p.parseModifiers()

	switch {
	case p.at(token.RBrace), p.at(token.EOF):
		return nil
	case p.at(token.KwConst):
		return p.parseConstMember(start, attrs, mods)
	case p.at(token.Tilde):
		return p.parseDestructor(start, attrs, mods)
	case p.at(token.KwEvent):
		return p.parseEvent(start, attrs, mods)
	case p.at(token.KwOperator):
		return p.parseOperator(start, attrs, mods, "")
	case (p.at(token.KwImplicit) || p.at(token.KwExplicit)) && p.look(1).Kind == token.KwOperator:
		kind := p.tok().Kind.String()
		p.advance()

		return p.parseOperator(start, attrs, mods, kind)
	case p.isConstructorStart():
		return p.parseConstructor(start, attrs, mods)
	case p.at(token.KwClass):
		return p.parseClassLike(start, attrs, mods, ast.TypeClass)
	case p.at(token.KwStruct):
		return p.parseClassLike(start, attrs, mods, ast.TypeStruct)
	case p.at(token.KwInterface):
		return p.parseClassLike(start, attrs, mods, ast.TypeInterface)
	case p.at(token.KwEnum):
		return p.parseEnum(start, attrs, mods)
	case p.at(token.KwDelegate):
		return p.parseDelegate(start, attrs, mods)
	default:
		return p.parseTypedMember(start, attrs, mods)
	}
}

// isConstructorStart reports whether the current position is
// `identifier '('` where identifier repeats the enclosing type's own
// name — the shape a constructor uniquely takes among class members.
// Since the parser tracks the enclosing container instead of a name
// stack, this checks the weaker but sufficient shape "identifier
// directly followed by '(' or ':'", which is unambiguous here because every
// other member form requires a type name before the member name.
func (p *Parser) isConstructorStart() bool {
	return p.at(token.Ident) && (p.look(1).Kind == token.LParen || p.look(1).Kind == token.Colon)
}

func (p *Parser) parseConstMember(start ast.Position, attrs []*ast.AttributeSection, mods ast.ModifierSet) ast.Declaration {
	p.advance()
	p.checkModifiers(mods, ast.ConstModifiers)

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

	return &ast.ConstDeclaration{Span: ast.SpanBetween(start, p.endPos()), Attributes: attrs, Modifiers: mods, Type: typ, Declarators: decls}
}

func (p *Parser) parseDestructor(start ast.Position, attrs []*ast.AttributeSection, mods ast.ModifierSet) ast.Declaration {
	p.advance() // '~'
	p.checkModifiers(mods, ast.DestructorMods)

	name := p.expectIdent()
	p.expect(token.LParen)
	p.expect(token.RParen)
	body := p.parseBlock()

	return &ast.DestructorDeclaration{Span: ast.SpanBetween(start, p.endPos()), Attributes: attrs, Modifiers: mods, Name: name, Body: body}
}

func (p *Parser) parseConstructor(start ast.Position, attrs []*ast.AttributeSection, mods ast.ModifierSet) ast.Declaration {
	name := p.advance().Value
	allowed := ast.CtorModifiers
	if mods.Has(ast.ModStatic) {
		allowed = ast.StaticCtorMods
	}

	p.checkModifiers(mods, allowed)

	params := p.parseParameterList()

	c := &ast.ConstructorDeclaration{Attributes: attrs, Modifiers: mods, Name: name, Parameters: params}

	if p.at(token.Colon) {
		p.advance()

		if p.at(token.KwBase) {
			c.InitializerIs = "base"
		} else {
			c.InitializerIs = "this"
		}

		p.advance()
		c.InitArgs = argValues(p.parseArgumentList(token.LParen, token.RParen))
	}

	if p.at(token.Semicolon) {
		p.advance()
	} else {
		c.Body = p.parseBlock()
	}

	c.Span = ast.SpanBetween(start, p.endPos())

	return c
}

func argValues(args []*ast.Argument) []ast.Expression {
	out := make([]ast.Expression, 0, len(args))
	for _, a := range args {
		out = append(out, a.Value)
	}

	return out
}

func (p *Parser) parseOperator(start ast.Position, attrs []*ast.AttributeSection, mods ast.ModifierSet, conversionKind string) ast.Declaration {
	p.checkModifiers(mods, ast.OperatorModifiers)

	if conversionKind != "" {
		p.expect(token.KwOperator)
		ret := p.parseType()
		params := p.parseParameterList()
		body := p.tryParseBodyOrSemicolon()

		return &ast.OperatorDeclaration{
			Span: ast.SpanBetween(start, p.endPos()), Attributes: attrs, Modifiers: mods,
			IsConversion: true, ConversionKind: conversionKind, ReturnType: ret, Parameters: params, Body: body,
		}
	}

	ret := p.parseType()
	p.expect(token.KwOperator)
	opTok := p.tok().Kind.String()

	if p.at(token.KwTrue) || p.at(token.KwFalse) {
		opTok = p.tok().Kind.String()
	}

	p.advance()
	params := p.parseParameterList()
	body := p.tryParseBodyOrSemicolon()

	return &ast.OperatorDeclaration{
		Span: ast.SpanBetween(start, p.endPos()), Attributes: attrs, Modifiers: mods,
		ReturnType: ret, OperatorToken: opTok, Parameters: params, Body: body,
	}
}

func (p *Parser) tryParseBodyOrSemicolon() *ast.BlockStatement {
	if p.at(token.Semicolon) {
		p.advance()

		return nil
	}

	return p.parseBlock()
}

// parseTypedMember handles the shared `[explicit-interface.]Type name`
// prefix and then dispatches on what follows the name: '(' for a
// method, '[' for an indexer (name must be `this`), or otherwise a
// field, property, or event depending on the following token.
func (p *Parser) parseTypedMember(start ast.Position, attrs []*ast.AttributeSection, mods ast.ModifierSet) ast.Declaration {
	typeStart := p.cur.Mark()
	typ := p.parseType()

	if p.at(token.KwOperator) {
		p.cur.Reset(typeStart)

		return p.parseOperator(start, attrs, mods, "")
	}

	explicitIface := ""

	if p.at(token.Ident) && p.look(1).Kind == token.Dot {
		save := p.cur.Mark()
		name := p.advance().Value
		p.advance() // '.'

		if p.at(token.Ident) || p.at(token.KwThis) {
			explicitIface = name
		} else {
			p.cur.Reset(save)
		}
	}

	if p.at(token.KwThis) {
		p.advance()

		return p.parseIndexer(start, attrs, mods, typ, explicitIface)
	}

	nameStart := p.pos()
	name := p.expectIdent()

	switch {
	case p.at(token.Lt) || p.at(token.LParen):
		return p.parseMethod(start, attrs, mods, typ, explicitIface, name)
	case p.at(token.LBrace):
		return p.parsePropertyOrEventBody(start, attrs, mods, typ, explicitIface, name)
	case p.at(token.FatArrow):
		return p.parseExpressionBodiedProperty(start, attrs, mods, typ, explicitIface, name)
	default:
		return p.parseFieldTail(start, nameStart, attrs, mods, typ, name)
	}
}

func (p *Parser) parseIndexer(start ast.Position, attrs []*ast.AttributeSection, mods ast.ModifierSet, typ ast.TypeExpr, explicitIface string) ast.Declaration {
	p.checkModifiers(mods, ast.IndexerModifiers)

	params := p.parseIndexerParameterList()
	accessors := p.parseAccessorList()

	return &ast.IndexerDeclaration{
		Span: ast.SpanBetween(start, p.endPos()), Attributes: attrs, Modifiers: mods,
		Type: typ, ExplicitInterface: explicitIface, Parameters: params, Accessors: accessors,
	}
}

func (p *Parser) parseIndexerParameterList() []*ast.Parameter {
	p.expect(token.LBracket)

	var params []*ast.Parameter

	for !p.at(token.RBracket) && !p.at(token.EOF) {
		params = append(params, p.parseParameter())

		if !p.weakSeparator(func() bool { return !p.at(token.RBracket) && !p.at(token.EOF) }) {
			break
		}
	}

	p.expect(token.RBracket)

	return params
}

func (p *Parser) parseMethod(start ast.Position, attrs []*ast.AttributeSection, mods ast.ModifierSet, ret ast.TypeExpr, explicitIface, name string) ast.Declaration {
	p.checkModifiers(mods, ast.MemberModifiers)

	var typeParams []*ast.TypeParameter
	if p.at(token.Lt) {
		typeParams = p.parseTypeParameterList()
	}

	params := p.parseParameterList()
	constraints := p.parseConstraintClauses()

	md := &ast.MethodDeclaration{
		Attributes: attrs, Modifiers: mods, ReturnType: ret, ExplicitInterface: explicitIface,
		Name: name, TypeParameters: typeParams, Parameters: params, Constraints: constraints,
	}

	if p.at(token.Semicolon) {
		p.advance()
	} else if p.at(token.FatArrow) {
		p.advance()

		val := p.parseAssignment()
		p.expect(token.Semicolon)
		md.Body = &ast.BlockStatement{Statements: []ast.Statement{&ast.ReturnStatement{Value: val}}}
	} else {
		md.Body = p.parseBlock()
		md.IsIterator = bodyContainsYield(md.Body)
	}

	md.Span = ast.SpanBetween(start, p.endPos())

	return md
}

func bodyContainsYield(b *ast.BlockStatement) bool {
	if b == nil {
		return false
	}

	for _, s := range b.Statements {
		if _, ok := s.(*ast.YieldStatement); ok {
			return true
		}

		if nested, ok := s.(*ast.BlockStatement); ok && bodyContainsYield(nested) {
			return true
		}
	}

	return false
}

func (p *Parser) parseExpressionBodiedProperty(start ast.Position, attrs []*ast.AttributeSection, mods ast.ModifierSet, typ ast.TypeExpr, explicitIface, name string) ast.Declaration {
	p.checkModifiers(mods, ast.MemberModifiers)
	p.advance() // '=>'
	val := p.parseAssignment()
	p.expect(token.Semicolon)

	getter := &ast.AccessorDeclaration{Kind: "get", Body: &ast.BlockStatement{Statements: []ast.Statement{&ast.ReturnStatement{Value: val}}}}

	return &ast.PropertyDeclaration{
		Span: ast.SpanBetween(start, p.endPos()), Attributes: attrs, Modifiers: mods,
		Type: typ, ExplicitInterface: explicitIface, Name: name, Accessors: []*ast.AccessorDeclaration{getter},
	}
}

func (p *Parser) parsePropertyOrEventBody(start ast.Position, attrs []*ast.AttributeSection, mods ast.ModifierSet, typ ast.TypeExpr, explicitIface, name string) ast.Declaration {
	p.checkModifiers(mods, ast.MemberModifiers)
	accessors := p.parseAccessorList()

	pd := &ast.PropertyDeclaration{
		Span: ast.SpanBetween(start, p.endPos()), Attributes: attrs, Modifiers: mods,
		Type: typ, ExplicitInterface: explicitIface, Name: name, Accessors: accessors,
	}

	if p.at(token.Assign) {
		p.advance()
		pd.Initializer = p.parseAssignment()
		p.expect(token.Semicolon)
	}

	pd.Span = ast.SpanBetween(start, p.endPos())

	return pd
}

// parseAccessorList parses the `{ get; set; }` / `{ get { ... } set { ... } }`
// body shared by properties and indexers, keying off the contextual
// `get`/`set` identifiers.
func (p *Parser) parseAccessorList() []*ast.AccessorDeclaration {
	p.expect(token.LBrace)

	var accessors []*ast.AccessorDeclaration

	for p.idIsGet() || p.idIsSet() || token.ModifierKeywords[p.kind()] {
		astart := p.pos()
		amods := p.parseModifiers()

		kind := "get"
		if p.idIsSet() {
			kind = "set"
		}

		p.advance()

		var body *ast.BlockStatement
		if p.at(token.Semicolon) {
			p.advance()
		} else if p.at(token.FatArrow) {
			p.advance()

			val := p.parseAssignment()
			p.expect(token.Semicolon)
			body = &ast.BlockStatement{Statements: []ast.Statement{&ast.ReturnStatement{Value: val}}}
		} else {
			body = p.parseBlock()
		}

		accessors = append(accessors, &ast.AccessorDeclaration{
			Span: ast.SpanBetween(astart, p.endPos()), Modifiers: amods, Kind: kind, Body: body,
		})
	}

	p.expect(token.RBrace)

	return accessors
}

func (p *Parser) parseFieldTail(start, nameStart ast.Position, attrs []*ast.AttributeSection, mods ast.ModifierSet, typ ast.TypeExpr, firstName string) ast.Declaration {
	p.checkModifiers(mods, ast.FieldModifiers)

	var decls []*ast.VariableDeclarator

	first := &ast.VariableDeclarator{Span: ast.SpanBetween(nameStart, p.endPos()), Name: firstName}

	if p.at(token.Assign) {
		p.advance()
		first.Init = p.parseAssignment()
	}

	decls = append(decls, first)

	for p.at(token.Comma) {
		p.advance()
		decls = append(decls, p.parseVariableDeclarator())
	}

	p.expect(token.Semicolon)

	return &ast.FieldDeclaration{Span: ast.SpanBetween(start, p.endPos()), Attributes: attrs, Modifiers: mods, Type: typ, Declarators: decls}
}

func (p *Parser) parseEvent(start ast.Position, attrs []*ast.AttributeSection, mods ast.ModifierSet) ast.Declaration {
	p.advance() // 'event'
	p.checkModifiers(mods, ast.MemberModifiers)

	typ := p.parseType()

	explicitIface := ""

	if p.at(token.Ident) && p.look(1).Kind == token.Dot {
		save := p.cur.Mark()
		name := p.advance().Value
		p.advance()

		if p.at(token.Ident) {
			explicitIface = name
		} else {
			p.cur.Reset(save)
		}
	}

	name := p.expectIdent()

	if p.at(token.LBrace) {
		accessors := p.parseEventAccessorList()

		return &ast.EventDeclaration{
			Span: ast.SpanBetween(start, p.endPos()), Attributes: attrs, Modifiers: mods,
			Type: typ, ExplicitInterface: explicitIface, Name: name, Accessors: accessors,
		}
	}

	decls := []*ast.VariableDeclarator{{Name: name}}

	for p.at(token.Comma) {
		p.advance()
		decls = append(decls, p.parseVariableDeclarator())
	}

	p.expect(token.Semicolon)

	return &ast.EventDeclaration{
		Span: ast.SpanBetween(start, p.endPos()), Attributes: attrs, Modifiers: mods,
		Type: typ, ExplicitInterface: explicitIface, Declarators: decls,
	}
}

func (p *Parser) parseEventAccessorList() []*ast.AccessorDeclaration {
	p.expect(token.LBrace)

	var accessors []*ast.AccessorDeclaration

	for p.idIsAdd() || p.idIsRemove() {
		astart := p.pos()
		kind := "add"

		if p.idIsRemove() {
			kind = "remove"
		}

		p.advance()
		body := p.parseBlock()

		accessors = append(accessors, &ast.AccessorDeclaration{
			Span: ast.SpanBetween(astart, p.endPos()), Kind: kind, Body: body,
		})
	}

	p.expect(token.RBrace)

	return accessors
}
