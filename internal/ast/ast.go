// Package ast defines the abstract syntax tree the Nova parser builds:
// value-type factories for declarations, statements, expressions,
// modifiers and type references. Nothing in this package touches the
// lexer or the parser — it is pure data, attached into the tree by the
// productions in internal/parser.
package ast

import (
	"strings"

	"github.com/nova-lang/novac/internal/position"
)

// Position and Span are the teacher's own source-tracking types, reused
// unchanged: every AST node carries a Span built from these.
type Position = position.Position

type Span = position.Span

// SpanBetween builds the half-open span from start to end that every
// production stamps onto the node it just finished building.
func SpanBetween(start, end Position) Span {
	return Span{Start: start, End: end}
}

// Node is the base interface every AST node satisfies.
type Node interface {
	GetSpan() Span
	String() string
}

// Declaration is any node that may appear directly inside a namespace or
// type body: namespaces, type declarations, and all member kinds.
type Declaration interface {
	Node
	declarationNode()
}

// Statement is any node that may appear inside a method or block body.
type Statement interface {
	Node
	statementNode()
}

// Expression is any node that yields a value.
type Expression interface {
	Node
	expressionNode()
}

// TypeExpr is a parsed type reference (§3 "Type reference").
type TypeExpr interface {
	Node
	typeNode()
}

// Modifier is a single bit in a ModifierSet.
type Modifier uint32

const (
	ModPublic Modifier = 1 << iota
	ModProtected
	ModInternal
	ModPrivate
	ModStatic
	ModReadonly
	ModSealed
	ModAbstract
	ModVirtual
	ModOverride
	ModExtern
	ModNew
	ModVolatile
	ModUnsafe
	ModPartial
	ModConst
)

var modifierNames = map[Modifier]string{
	ModPublic: "public", ModProtected: "protected", ModInternal: "internal",
	ModPrivate: "private", ModStatic: "static", ModReadonly: "readonly",
	ModSealed: "sealed", ModAbstract: "abstract", ModVirtual: "virtual",
	ModOverride: "override", ModExtern: "extern", ModNew: "new",
	ModVolatile: "volatile", ModUnsafe: "unsafe", ModPartial: "partial",
	ModConst: "const",
}

func (m Modifier) String() string {
	if n, ok := modifierNames[m]; ok {
		return n
	}

	return "modifier"
}

// ModifierSet is the bitmask over the closed modifier vocabulary, plus
// the source location of the first modifier token — used as the owning
// declaration's start location per §3.
type ModifierSet struct {
	Bits          Modifier
	FirstLocation Position
	duplicates    []Modifier
}

// Add sets bit m, recording it as a duplicate (for later diagnosis, never
// aborting) if it was already set. The first call also records loc as
// FirstLocation.
func (ms *ModifierSet) Add(m Modifier, loc Position) {
	if ms.Bits == 0 {
		ms.FirstLocation = loc
	}

	if ms.Bits&m != 0 {
		ms.duplicates = append(ms.duplicates, m)

		return
	}

	ms.Bits |= m
}

// Has reports whether m is set.
func (ms ModifierSet) Has(m Modifier) bool { return ms.Bits&m != 0 }

// Duplicates returns every modifier that was set more than once, in the
// order they were seen a second time.
func (ms ModifierSet) Duplicates() []Modifier { return ms.duplicates }

// Check validates the set against allowed, returning the subset of bits
// present in ms but not in allowed. It never mutates ms and never
// aborts parsing — the caller reports the invalid subset as a
// recoverable diagnostic and continues, per §7's semantic-ish error
// category.
func (ms ModifierSet) Check(allowed Modifier) Modifier {
	return ms.Bits &^ allowed
}

// String renders the set in a stable order for diagnostics and tests.
func (ms ModifierSet) String() string {
	var parts []string

	for m := Modifier(1); m != 0; m <<= 1 {
		if ms.Bits&m != 0 {
			parts = append(parts, m.String())
		}
	}

	return strings.Join(parts, " ")
}

// Per-declaration-kind allowed modifier masks, named after the source's
// own table (§9 Design Notes).
const (
	ClassModifiers    = ModPublic | ModProtected | ModInternal | ModPrivate | ModStatic | ModSealed | ModAbstract | ModPartial | ModUnsafe | ModNew
	StructIfaceMods   = ModPublic | ModProtected | ModInternal | ModPrivate | ModPartial | ModUnsafe | ModNew
	ConstModifiers    = ModPublic | ModProtected | ModInternal | ModPrivate | ModNew
	FieldModifiers    = ModPublic | ModProtected | ModInternal | ModPrivate | ModStatic | ModReadonly | ModVolatile | ModNew | ModUnsafe
	MemberModifiers   = ModPublic | ModProtected | ModInternal | ModPrivate | ModStatic | ModVirtual | ModOverride | ModAbstract | ModSealed | ModExtern | ModNew | ModUnsafe | ModPartial
	CtorModifiers     = ModPublic | ModProtected | ModInternal | ModPrivate | ModExtern | ModUnsafe
	StaticCtorMods    = ModStatic | ModUnsafe | ModExtern
	DestructorMods    = ModExtern | ModUnsafe
	OperatorModifiers = ModPublic | ModStatic | ModUnsafe | ModExtern
	IndexerModifiers  = MemberModifiers
)

// CompilationUnit is the root of the AST for one source file: an ordered
// child list built by the parser's compilation-unit assembler.
type CompilationUnit struct {
	Span     Span
	Usings   []*UsingDirective
	Members  []Declaration
	Filename string
}

func (c *CompilationUnit) GetSpan() Span { return c.Span }
func (c *CompilationUnit) String() string {
	return "CompilationUnit(" + c.Filename + ")"
}

// UsingDirective represents `using Qualident;` or `using id = Qualident;`.
type UsingDirective struct {
	Span  Span
	Alias string // empty for the plain import form
	Name  string
}

func (u *UsingDirective) GetSpan() Span { return u.Span }
func (u *UsingDirective) String() string {
	if u.Alias != "" {
		return "using " + u.Alias + " = " + u.Name
	}

	return "using " + u.Name
}

// AttributeArgument is a single argument inside an attribute's argument
// list; Name is non-empty for `name = expr` named arguments.
type AttributeArgument struct {
	Name  string
	Value Expression
}

// Attribute is one `Attr(args)` entry inside an attribute section.
type Attribute struct {
	Span      Span
	Name      string
	Arguments []AttributeArgument
}

// AttributeSection is a bracketed `[target: Attr(args), ...]` group. Two
// adjacent sections always parse to two siblings — see §8 idempotence
// invariant — never merged into one.
type AttributeSection struct {
	Span       Span
	Target     string // "", "assembly", "module", "field", "method", "param", "property", "return", "type"
	Attributes []*Attribute
}
