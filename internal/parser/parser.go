// Package parser implements a hand-written recursive-descent parser for
// the Nova language grammar: a cursor with independent peek support
// (internal/lexer.Cursor), a set of pure lookahead predicates that
// disambiguate productions sharing a common token prefix, the
// productions themselves, an errDist-throttled recovery layer, and a
// compilation-unit assembler that threads together the declarations the
// productions build.
package parser

import (
	"github.com/nova-lang/novac/internal/ast"
	"github.com/nova-lang/novac/internal/diagnostic"
	"github.com/nova-lang/novac/internal/lexer"
	"github.com/nova-lang/novac/internal/langver"
	"github.com/nova-lang/novac/internal/token"
)

// Parser holds all state shared across the productions: the peek cursor,
// the diagnostic sink, the language version gate, and the compilation
// unit assembler's stack.
type Parser struct {
	cur      *lexer.Cursor
	sink     *diagnostic.Collector
	filename string
	version  langver.Version
	unit     *unitAssembler
	lastTok  token.Token // the token most recently consumed by advance()
}

// New builds a Parser over src, reporting diagnostics through sink and
// gating version-sensitive productions at ver.
func New(filename, src string, sink *diagnostic.Collector, ver langver.Version) *Parser {
	return &Parser{
		cur:      lexer.NewCursor(filename, src),
		sink:     sink,
		filename: filename,
		version:  ver,
		unit:     newUnitAssembler(),
	}
}

// Parse runs the compilation-unit production (§4.3) to completion,
// returning the assembled tree. Parsing never aborts on error: recovery
// resynchronizes and continues so a single file yields every diagnostic
// in one pass.
func (p *Parser) Parse() *ast.CompilationUnit {
	start := p.pos()

	cu := &ast.CompilationUnit{Filename: p.filename}
	p.unit.push(cuContainer{cu})

	for _, u := range p.parseUsingDirectives() {
		cu.Usings = append(cu.Usings, u)
	}

	for !p.at(token.EOF) {
		before := p.cur.Mark()

		decl := p.parseNamespaceMember()
		if decl != nil {
			p.unit.addChild(decl)
		}

		if p.cur.Mark() == before {
			// No production consumed anything: force progress so a
			// pathological input can never spin the parser forever.
			p.errorAt(p.pos(), "E0001", msgExpectedDeclaration)
			p.cur.Advance()
		}
	}

	cu.Span = ast.SpanBetween(start, p.pos())

	return cu
}

// ParseExpression parses a single standalone expression, used by tools
// (and tests) that want the expression grammar without a surrounding
// declaration.
func (p *Parser) ParseExpression() ast.Expression {
	return p.parseExpressionAt(precAssignment)
}

// Diagnostics returns every diagnostic collected while parsing.
func (p *Parser) Diagnostics() []diagnostic.Diagnostic {
	return p.sink.Diagnostics()
}

// --- token access helpers shared by every production file. ---

func (p *Parser) tok() token.Token       { return p.cur.Current() }
func (p *Parser) kind() token.Kind       { return p.cur.Current().Kind }
func (p *Parser) at(k token.Kind) bool   { return p.kind() == k }
func (p *Parser) look(n int) token.Token { return p.cur.Lookahead(n) }

func (p *Parser) pos() ast.Position {
	t := p.tok()

	return ast.Position{Filename: p.filename, Line: t.Line, Column: t.Column}
}

// endPos reports the end of the last token advance() consumed, used to
// close a node's span at the end of the last token of a production
// rather than at the start of whatever token follows it.
func (p *Parser) endPos() ast.Position {
	return ast.Position{Filename: p.filename, Line: p.lastTok.EndLine, Column: p.lastTok.EndColumn}
}

// advance commits the cursor forward by one token, notifying the
// recovery layer so its errDist throttle can count tokens consumed
// since the last reported error, and records the consumed token so
// endPos can report its end coordinates.
func (p *Parser) advance() token.Token {
	p.sink.Advance()

	p.lastTok = p.cur.Advance()

	return p.lastTok
}
