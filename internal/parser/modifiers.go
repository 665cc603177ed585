package parser

import (
	"github.com/nova-lang/novac/internal/ast"
	"github.com/nova-lang/novac/internal/token"
)

var modifierBit = map[token.Kind]ast.Modifier{
	token.KwPublic: ast.ModPublic, token.KwProtected: ast.ModProtected,
	token.KwInternal: ast.ModInternal, token.KwPrivate: ast.ModPrivate,
	token.KwStatic: ast.ModStatic, token.KwReadonly: ast.ModReadonly,
	token.KwSealed: ast.ModSealed, token.KwAbstract: ast.ModAbstract,
	token.KwVirtual: ast.ModVirtual, token.KwOverride: ast.ModOverride,
	token.KwExtern: ast.ModExtern, token.KwNew: ast.ModNew,
	token.KwVolatile: ast.ModVolatile, token.KwUnsafe: ast.ModUnsafe,
	token.KwConst: ast.ModConst,
}

// parseModifiers consumes every leading modifier keyword (plus the
// contextual `partial`), returning the accumulated set. It never
// reports an error itself — an invalid combination is caught later by
// ModifierSet.Check against the specific declaration kind's allowed
// mask, once that kind is known.
func (p *Parser) parseModifiers() ast.ModifierSet {
	var ms ast.ModifierSet

	for {
		if bit, ok := modifierBit[p.kind()]; ok {
			ms.Add(bit, p.pos())
			p.advance()

			continue
		}

		if p.idIsPartial() {
			ms.Add(ast.ModPartial, p.pos())
			p.advance()

			continue
		}

		break
	}

	return ms
}

// checkModifiers reports every modifier in ms outside allowed, and every
// modifier ms recorded as a duplicate, as recoverable diagnostics — the
// declaration is still built and attached, matching the source
// grammar's "keep going" philosophy for anything short of a syntax
// error.
func (p *Parser) checkModifiers(ms ast.ModifierSet, allowed ast.Modifier) {
	if bad := ms.Check(allowed); bad != 0 {
		for m := ast.Modifier(1); m != 0; m <<= 1 {
			if bad&m != 0 {
				p.errorAt(ms.FirstLocation, "E0103", msgInvalidModifier, m.String())
			}
		}
	}

	for _, m := range ms.Duplicates() {
		p.errorAt(ms.FirstLocation, "E0104", msgDuplicateModifier, m.String())
	}
}
