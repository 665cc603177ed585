// Package token defines the closed set of token kinds the Nova lexer
// produces and the constant bit-set tables the parser's predicates
// consult to disambiguate productions sharing a common prefix.
package token

import "fmt"

// Kind is one of the closed set of lexical categories described in the
// grammar: EOF, identifier, literal, one entry per punctuator, and one
// entry per reserved word.
type Kind int

const (
	EOF Kind = iota
	Error
	Comment

	// Identifiers and literals.
	Ident
	IntLit
	FloatLit
	StringLit
	CharLit
	BoolLit
	NullLit

	// Reserved words.
	KwAbstract
	KwAs
	KwBase
	KwBool
	KwBreak
	KwByte
	KwCase
	KwCatch
	KwChar
	KwChecked
	KwClass
	KwConst
	KwContinue
	KwDecimal
	KwDefault
	KwDelegate
	KwDo
	KwDouble
	KwElse
	KwEnum
	KwEvent
	KwExplicit
	KwExtern
	KwFalse
	KwFinally
	KwFixed
	KwFloat
	KwFor
	KwForeach
	KwGoto
	KwIf
	KwImplicit
	KwIn
	KwInt
	KwInterface
	KwInternal
	KwIs
	KwLock
	KwLong
	KwNamespace
	KwNew
	KwNull
	KwObject
	KwOperator
	KwOut
	KwOverride
	KwParams
	KwPrivate
	KwProtected
	KwPublic
	KwReadonly
	KwRef
	KwReturn
	KwSbyte
	KwSealed
	KwShort
	KwSizeof
	KwStackalloc
	KwStatic
	KwString
	KwStruct
	KwSwitch
	KwThis
	KwThrow
	KwTrue
	KwTry
	KwTypeof
	KwUint
	KwUlong
	KwUnchecked
	KwUnsafe
	KwUshort
	KwUsing
	KwVar
	KwVirtual
	KwVoid
	KwVolatile
	KwWhile

	// Punctuators.
	LBrace
	RBrace
	LParen
	RParen
	LBracket
	RBracket
	Semicolon
	Comma
	Dot
	Colon
	DoubleColon
	Arrow // ->
	FatArrow
	Question
	QuestionQuestion
	At
	Ellipsis

	Assign
	PlusAssign
	MinusAssign
	StarAssign
	SlashAssign
	PercentAssign
	AmpAssign
	PipeAssign
	CaretAssign
	ShlAssign
	ShrAssign

	Eq
	Ne
	Lt
	Le
	Gt
	Ge

	Plus
	Minus
	Star
	Slash
	Percent

	Inc
	Dec

	Amp
	Pipe
	Caret
	Tilde
	Shl
	Shr

	AmpAmp
	PipePipe
	Bang
)

var kindNames = map[Kind]string{
	EOF:      "EOF",
	Error:    "error token",
	Comment:  "comment",
	Ident:    "identifier",
	IntLit:   "integer literal",
	FloatLit: "float literal",
	StringLit: "string literal",
	CharLit:  "character literal",
	BoolLit:  "boolean literal",
	NullLit:  "null",

	LBrace: "{", RBrace: "}", LParen: "(", RParen: ")",
	LBracket: "[", RBracket: "]", Semicolon: ";", Comma: ",",
	Dot: ".", Colon: ":", DoubleColon: "::", Arrow: "->", FatArrow: "=>",
	Question: "?", QuestionQuestion: "??", At: "@", Ellipsis: "...",
	Assign: "=", PlusAssign: "+=", MinusAssign: "-=", StarAssign: "*=",
	SlashAssign: "/=", PercentAssign: "%=", AmpAssign: "&=", PipeAssign: "|=",
	CaretAssign: "^=", ShlAssign: "<<=", ShrAssign: ">>=",
	Eq: "==", Ne: "!=", Lt: "<", Le: "<=", Gt: ">", Ge: ">=",
	Plus: "+", Minus: "-", Star: "*", Slash: "/", Percent: "%",
	Inc: "++", Dec: "--",
	Amp: "&", Pipe: "|", Caret: "^", Tilde: "~", Shl: "<<", Shr: ">>",
	AmpAmp: "&&", PipePipe: "||", Bang: "!",
}

func init() {
	for k, n := range keywordNames {
		kindNames[k] = n
	}
}

var keywordNames = map[Kind]string{
	KwAbstract: "abstract", KwAs: "as", KwBase: "base", KwBool: "bool",
	KwBreak: "break", KwByte: "byte", KwCase: "case", KwCatch: "catch",
	KwChar: "char", KwChecked: "checked", KwClass: "class", KwConst: "const",
	KwContinue: "continue", KwDecimal: "decimal", KwDefault: "default",
	KwDelegate: "delegate", KwDo: "do", KwDouble: "double", KwElse: "else",
	KwEnum: "enum", KwEvent: "event", KwExplicit: "explicit", KwExtern: "extern",
	KwFalse: "false", KwFinally: "finally", KwFixed: "fixed", KwFloat: "float",
	KwFor: "for", KwForeach: "foreach", KwGoto: "goto", KwIf: "if",
	KwImplicit: "implicit", KwIn: "in", KwInt: "int", KwInterface: "interface",
	KwInternal: "internal", KwIs: "is", KwLock: "lock", KwLong: "long",
	KwNamespace: "namespace", KwNew: "new", KwNull: "null", KwObject: "object",
	KwOperator: "operator", KwOut: "out", KwOverride: "override", KwParams: "params",
	KwPrivate: "private", KwProtected: "protected", KwPublic: "public",
	KwReadonly: "readonly", KwRef: "ref", KwReturn: "return", KwSbyte: "sbyte",
	KwSealed: "sealed", KwShort: "short", KwSizeof: "sizeof", KwStackalloc: "stackalloc",
	KwStatic: "static", KwString: "string", KwStruct: "struct", KwSwitch: "switch",
	KwThis: "this", KwThrow: "throw", KwTrue: "true", KwTry: "try",
	KwTypeof: "typeof", KwUint: "uint", KwUlong: "ulong", KwUnchecked: "unchecked",
	KwUnsafe: "unsafe", KwUshort: "ushort", KwUsing: "using", KwVar: "var",
	KwVirtual: "virtual", KwVoid: "void", KwVolatile: "volatile", KwWhile: "while",
}

// Keywords maps the reserved-word spelling to its Kind, used by the
// scanner after it has already recognized an identifier-shaped run of
// characters.
var Keywords = func() map[string]Kind {
	m := make(map[string]Kind, len(keywordNames))
	for k, n := range keywordNames {
		m[n] = k
	}

	return m
}()

// String returns the token kind's canonical spelling, used verbatim in
// diagnostic messages ("';' expected", "'get' expected", ...).
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}

	return fmt.Sprintf("kind(%d)", int(k))
}

// Token is a single lexical unit: kind, literal spelling, an optional
// decoded literal value, and a half-open source span.
type Token struct {
	Kind      Kind
	Value     string
	Literal   interface{}
	Line      int
	Column    int
	EndLine   int
	EndColumn int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d:%d", t.Kind, t.Value, t.Line, t.Column)
}

// --- Component T: constant bit-sets used by the predicates. ---

// BuiltinTypeKeywords is the set of keywords that may stand in for a type
// name without further qualification ("keywords usable as types").
var BuiltinTypeKeywords = map[Kind]bool{
	KwBool: true, KwByte: true, KwSbyte: true, KwShort: true, KwUshort: true,
	KwInt: true, KwUint: true, KwLong: true, KwUlong: true, KwChar: true,
	KwFloat: true, KwDouble: true, KwDecimal: true, KwString: true,
	KwObject: true, KwVoid: true,
}

// CastFollowers is the set of token kinds that may legally begin an
// expression on the right of a parenthesized type name, used by
// IsTypeCast to tell "(T)x" (a cast) from "(e)" (a parenthesized
// expression).
var CastFollowers = map[Kind]bool{
	Ident: true, IntLit: true, FloatLit: true, StringLit: true, CharLit: true,
	BoolLit: true, NullLit: true,
	KwThis: true, KwBase: true, KwNew: true, KwTypeof: true, KwSizeof: true,
	KwChecked: true, KwUnchecked: true, KwDefault: true,
	LParen: true, Bang: true, Tilde: true, Plus: true, Minus: true,
	Star: true, Amp: true, Inc: true, Dec: true,
}

// UnaryPrefixOperators is the set of token kinds that may prefix a unary
// expression (arithmetic negation, logical/bitwise negation, pointer
// dereference/address-of, pre-increment/decrement).
var UnaryPrefixOperators = map[Kind]bool{
	Plus: true, Minus: true, Bang: true, Tilde: true, Star: true, Amp: true,
	Inc: true, Dec: true,
}

// AssignmentOperators covers plain '=' and every compound-assignment
// spelling.
var AssignmentOperators = map[Kind]bool{
	Assign: true, PlusAssign: true, MinusAssign: true, StarAssign: true,
	SlashAssign: true, PercentAssign: true, AmpAssign: true, PipeAssign: true,
	CaretAssign: true, ShlAssign: true, ShrAssign: true,
}

// ModifierKeywords is the set of reserved words that begin a modifier in
// a member or type declaration.
var ModifierKeywords = map[Kind]bool{
	KwPublic: true, KwProtected: true, KwInternal: true, KwPrivate: true,
	KwStatic: true, KwReadonly: true, KwSealed: true, KwAbstract: true,
	KwVirtual: true, KwOverride: true, KwExtern: true, KwNew: true,
	KwVolatile: true, KwUnsafe: true, KwConst: true,
}
