package parser

import (
	"fmt"

	"github.com/nova-lang/novac/internal/ast"
	"github.com/nova-lang/novac/internal/token"
)

// This file is component E: error recovery. Every reported error goes
// through the diagnostic.Collector's errDist throttle (advance() feeds
// it on every consumed token), so a run of cascading errors at the same
// position collapses into the first one instead of flooding the sink.

func (p *Parser) errorAt(pos ast.Position, code, format string, args ...interface{}) {
	p.sink.Report(ast.Span{Start: pos, End: pos}, code, fmt.Sprintf(format, args...), fmt.Sprintf(format, args...))
}

// expect consumes the current token if it has kind k, reporting a
// throttled "X expected" diagnostic and returning a Token of kind
// token.Error otherwise. The cursor is never advanced on failure, so callers that
// chain several expect() calls degrade gracefully: later calls simply
// fail against the same unmoved token instead of skipping input.
func (p *Parser) expect(k token.Kind) token.Token {
	if p.at(k) {
		return p.advance()
	}

	p.errorAt(p.pos(), "E0100", msgExpectedToken, k.String())

	return token.Token{Kind: token.Error}
}

// expectIdent is expect(token.Ident) with a message tailored to naming
// productions ("identifier expected" rather than "'identifier'
// expected").
func (p *Parser) expectIdent() string {
	if p.at(token.Ident) {
		return p.advance().Value
	}

	p.errorAt(p.pos(), "E0101", msgExpectedIdentifier)

	return ""
}

// weakSeparator consumes a comma if present. Unlike expect, a missing
// separator before a token that plausibly starts the next list element
// is reported (E0102) and the list then continues — this is what lets `(int a int b)` recover as
// a two-parameter list instead of aborting the whole parameter list at
// the first missing comma, matching the source grammar's own leniency
// around comma-separated lists.
func (p *Parser) weakSeparator(elementStarts func() bool) bool {
	if p.at(token.Comma) {
		p.advance()

		return true
	}

	if elementStarts() {
		p.errorAt(p.pos(), "E0102", msgExpectedToken, token.Comma.String())

		return true
	}

	return false
}

// syncTo advances the cursor until it sees a token in stop or reaches
// EOF, used to resynchronize after a production that could not make
// sense of the input in front of it. Balanced brace/paren/bracket groups
// are skipped whole via SkipCurrentBlock so a stray '{' in the skipped
// region can't fool later recovery into stopping mid-block.
func (p *Parser) syncTo(stop map[token.Kind]bool) {
	for !p.at(token.EOF) && !stop[p.kind()] {
		switch p.kind() {
		case token.LBrace, token.LParen, token.LBracket:
			p.sink.Advance()
			p.cur.SkipCurrentBlock()
		default:
			p.advance()
		}
	}
}

var declarationSync = map[token.Kind]bool{
	token.KwClass: true, token.KwStruct: true, token.KwInterface: true,
	token.KwEnum: true, token.KwDelegate: true, token.KwNamespace: true,
	token.KwUsing: true, token.RBrace: true, token.EOF: true,
}

var memberSync = map[token.Kind]bool{
	token.RBrace: true, token.Semicolon: true, token.EOF: true,
}

var statementSync = map[token.Kind]bool{
	token.Semicolon: true, token.RBrace: true, token.EOF: true,
}
