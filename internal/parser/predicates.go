package parser

import "github.com/nova-lang/novac/internal/token"

// This file is component P: pure lookahead predicates. Every function
// here uses only StartPeek/Peek — never Advance — so calling one can
// never change what the next production sees. Predicates return their
// answer and discard the peek mark; nothing here commits.

// isTypeCast reports whether the parenthesized run starting at the
// current '(' is a cast, i.e. "(" typename ")" followed by a token that
// can start an expression. This is the classic C-family cast/paren
// ambiguity: "(a)" is a cast only if what follows makes sense as a
// unary operand and 'a' parses as a type name.
func (p *Parser) isTypeCast() bool {
	if !p.at(token.LParen) {
		return false
	}

	p.cur.StartPeek()
	defer p.cur.ResetPeek()

	p.cur.Peek() // consume '('

	if !p.peekIsTypeName() {
		return false
	}

	if p.cur.PeekAt(0).Kind != token.RParen {
		return false
	}

	p.cur.Peek() // consume ')'

	return token.CastFollowers[p.cur.PeekAt(0).Kind]
}

// peekIsTypeName consumes (via Peek) a type-name production starting at
// the peek mark: identifier or built-in keyword, optional dotted
// qualification, optional generic argument list, optional array rank
// suffixes and pointer stars. Returns false, leaving the mark wherever
// it stopped, if the peeked tokens can't form a type name.
func (p *Parser) peekIsTypeName() bool {
	k := p.cur.PeekAt(0).Kind
	if !(k == token.Ident || token.BuiltinTypeKeywords[k]) {
		return false
	}

	p.cur.Peek() // consume the identifier/keyword

	for p.cur.PeekAt(0).Kind == token.Dot {
		p.cur.Peek() // consume '.'

		if p.cur.PeekAt(0).Kind != token.Ident {
			return false
		}

		p.cur.Peek() // consume the qualifying identifier
	}

	if p.cur.PeekAt(0).Kind == token.Lt {
		if !p.peekGenericArgList() {
			return false
		}
	}

	for {
		if p.cur.PeekAt(0).Kind == token.Star {
			p.cur.Peek() // consume '*'

			continue
		}

		if p.cur.PeekAt(0).Kind == token.LBracket {
			p.cur.Peek() // consume '['

			for p.cur.PeekAt(0).Kind == token.Comma {
				p.cur.Peek() // consume ','
			}

			if p.cur.PeekAt(0).Kind != token.RBracket {
				return false
			}

			p.cur.Peek() // consume ']'

			continue
		}

		if p.cur.PeekAt(0).Kind == token.Question {
			p.cur.Peek() // consume '?'
		}

		break
	}

	return true
}

// peekGenericArgList consumes a '<' ... '>' generic argument list at the
// peek mark, using isShiftRight-style splitting so a closing '>>' can
// end a nested argument list. Returns false if the run doesn't close.
func (p *Parser) peekGenericArgList() bool {
	p.cur.Peek() // consume '<'

	for {
		if !p.peekIsTypeName() {
			return false
		}

		if p.cur.PeekAt(0).Kind == token.Comma {
			p.cur.Peek() // consume ','

			continue
		}

		break
	}

	switch p.cur.PeekAt(0).Kind {
	case token.Gt:
		p.cur.Peek() // consume '>'

		return true
	case token.Shr:
		// '>>' closes this level and the enclosing level; the caller
		// (another peekGenericArgList frame) will see a synthetic
		// close on its next check via isShiftRight at the real cursor,
		// so here we only need to accept it as a valid close.
		p.cur.Peek() // consume '>>'

		return true
	default:
		return false
	}
}

// isLocalVarDecl reports whether the statement starting here is a local
// variable (or const) declaration rather than an expression statement:
// `var` always is; otherwise it's a declaration iff a type name is
// followed by an identifier, which no valid expression-statement can
// start with (a bare type name is not itself a statement).
func (p *Parser) isLocalVarDecl() bool {
	if p.at(token.KwVar) {
		return true
	}

	if !(p.at(token.Ident) || token.BuiltinTypeKeywords[p.kind()]) {
		return false
	}

	p.cur.StartPeek()
	defer p.cur.ResetPeek()

	if !p.peekIsTypeName() {
		return false
	}

	return p.cur.PeekAt(0).Kind == token.Ident
}

// isGenericFollowedBy reports whether the identifier at the current
// position is followed by a generic argument list that itself is
// followed by one of the tokens in follow — the standard trick for
// telling `Foo<Bar>` (generic instantiation) from `Foo < Bar` (a
// less-than comparison) without unbounded lookahead.
func (p *Parser) isGenericFollowedBy(follow map[token.Kind]bool) bool {
	if !p.at(token.Ident) || p.look(1).Kind != token.Lt {
		return false
	}

	p.cur.StartPeek()
	defer p.cur.ResetPeek()

	p.cur.Peek() // consume the identifier

	if !p.peekGenericArgList() {
		return false
	}

	return follow[p.cur.PeekAt(0).Kind]
}

// isShiftRight reports whether the current '>>' token should be treated
// as two separate '>' closers (inside a generic argument list) rather
// than the shift operator. The grammar never re-lexes; instead callers
// that expect a lone '>' accept a Shr token and consume only "half" of
// it by tracking a pending-close flag — represented here simply as "is
// the current token a Shr", leaving the split itself to the generic
// argument list production.
func (p *Parser) isShiftRight() bool {
	return p.at(token.Shr)
}

// isAssignment reports whether the current token is '=' or any
// compound-assignment operator.
func (p *Parser) isAssignment() bool {
	return token.AssignmentOperators[p.kind()]
}

// isLabel reports whether the current position starts a label
// (`identifier ':'`, but not `identifier "::"` and not the ternary's
// or a named-argument's colon context, which callers only invoke this
// from statement position where those don't apply).
func (p *Parser) isLabel() bool {
	return p.at(token.Ident) && p.look(1).Kind == token.Colon
}

// isDims reports whether the current position starts an array rank
// specifier: one or more '[' ']' pairs, optionally with commas inside
// for higher-rank arrays, with no size expressions (a bare type-suffix
// rank, as opposed to an array-creation size list).
func (p *Parser) isDims() bool {
	if !p.at(token.LBracket) {
		return false
	}

	p.cur.StartPeek()
	defer p.cur.ResetPeek()

	p.cur.Peek() // consume '['

	for p.cur.PeekAt(0).Kind == token.Comma {
		p.cur.Peek() // consume ','
	}

	return p.cur.PeekAt(0).Kind == token.RBracket
}

// isYieldStatement reports whether the current position is the
// contextual keyword `yield` followed by `return` or `break` — the two
// token lookahead that keeps `yield` from being reserved everywhere.
func (p *Parser) isYieldStatement() bool {
	if !(p.at(token.Ident) && p.tok().Value == "yield") {
		return false
	}

	nk := p.look(1)

	return nk.Kind == token.KwReturn || nk.Kind == token.KwBreak
}

// idIs reports whether the current token is the identifier spelled name
// — used for every contextual keyword (`where`, `get`, `set`, `add`,
// `remove`, `partial`, ...).
func (p *Parser) idIs(name string) bool {
	return p.at(token.Ident) && p.tok().Value == name
}

func (p *Parser) idIsWhere() bool  { return p.idIs("where") }
func (p *Parser) idIsGet() bool    { return p.idIs("get") }
func (p *Parser) idIsSet() bool    { return p.idIs("set") }
func (p *Parser) idIsAdd() bool    { return p.idIs("add") }
func (p *Parser) idIsRemove() bool { return p.idIs("remove") }
func (p *Parser) idIsPartial() bool { return p.idIs("partial") }

// localAttrTargets is the closed set of valid local-declaration
// attribute targets, tested by set membership.
var localAttrTargets = map[string]bool{
	"field": true, "method": true, "param": true, "property": true,
	"return": true, "type": true,
}

// isLocalAttrTarget reports whether name is a valid target specifier for
// an attribute section attached to a local (member-level) declaration.
func (p *Parser) isLocalAttrTarget(name string) bool {
	return localAttrTargets[name]
}

// globalAttrTargets is the closed set of valid attribute-section targets
// at the top of a compilation unit. The source this grammar was ported
// from only special-cased the literal spelling "assembly" here, silently
// accepting no other spelling (including the equally valid "module")
// as ever matching — a bug fixed in this port by testing full set
// membership instead of one literal.
var globalAttrTargets = map[string]bool{
	"assembly": true, "module": true,
}

// isGlobalAttrTarget reports whether name is a valid target specifier
// for an attribute section read before a namespace member, i.e. after
// the using directives at the top of a compilation unit or inside a
// namespace body.
func (p *Parser) isGlobalAttrTarget(name string) bool {
	return globalAttrTargets[name]
}

// isTypedCatch reports, once `catch` has been consumed, whether the
// clause names an exception type (the current token is '('), as opposed
// to the catch-all `catch { ... }` form.
func (p *Parser) isTypedCatch() bool {
	return p.at(token.LParen)
}
