package parser

import "github.com/nova-lang/novac/internal/ast"

// unitAssembler is the compilation-unit assembler (§4.5): a stack of
// "current container" so productions can attach a finished declaration
// to whatever namespace or type is currently open without threading a
// parent pointer through every parse* call. blockStart/blockEnd bracket
// a nested container; addChild always attaches to the top of the stack.
type unitAssembler struct {
	stack []container
}

// container is anything that can receive a member: the compilation unit
// itself, a namespace, or a type declaration.
type container interface {
	addMember(ast.Declaration)
}

func newUnitAssembler() *unitAssembler {
	return &unitAssembler{}
}

func (u *unitAssembler) push(c container) {
	u.stack = append(u.stack, c)
}

func (u *unitAssembler) top() container {
	if len(u.stack) == 0 {
		return nil
	}

	return u.stack[len(u.stack)-1]
}

// addChild attaches decl to the currently open container.
func (u *unitAssembler) addChild(decl ast.Declaration) {
	if top := u.top(); top != nil {
		top.addMember(decl)
	}
}

// blockStart opens c as the new current container, used when entering a
// namespace or type body.
func (u *unitAssembler) blockStart(c container) {
	u.push(c)
}

// blockEnd closes the innermost container, used when a namespace or type
// body's closing brace is consumed.
func (u *unitAssembler) blockEnd() {
	if len(u.stack) > 1 {
		u.stack = u.stack[:len(u.stack)-1]
	}
}

// addMember implementations turn *ast.CompilationUnit, *ast.NamespaceDeclaration
// and *ast.TypeDeclaration into containers without those types needing to
// know about the parser package.

type cuContainer struct{ cu *ast.CompilationUnit }

func (c cuContainer) addMember(d ast.Declaration) { c.cu.Members = append(c.cu.Members, d) }

type nsContainer struct{ ns *ast.NamespaceDeclaration }

func (c nsContainer) addMember(d ast.Declaration) { c.ns.Members = append(c.ns.Members, d) }

type typeContainer struct{ td *ast.TypeDeclaration }

func (c typeContainer) addMember(d ast.Declaration) { c.td.Members = append(c.td.Members, d) }
