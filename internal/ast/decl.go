package ast

// NamespaceDeclaration groups usings and member declarations under a
// dotted name.
type NamespaceDeclaration struct {
	Span    Span
	Name    string
	Usings  []*UsingDirective
	Members []Declaration
}

func (n *NamespaceDeclaration) GetSpan() Span    { return n.Span }
func (n *NamespaceDeclaration) String() string   { return "namespace " + n.Name }
func (n *NamespaceDeclaration) declarationNode() {}

// TypeKind distinguishes the five declared-type forms sharing one
// production shape.
type TypeKind int

const (
	TypeClass TypeKind = iota
	TypeStruct
	TypeInterface
	TypeEnum
	TypeDelegate
)

func (k TypeKind) String() string {
	switch k {
	case TypeClass:
		return "class"
	case TypeStruct:
		return "struct"
	case TypeInterface:
		return "interface"
	case TypeEnum:
		return "enum"
	case TypeDelegate:
		return "delegate"
	default:
		return "type"
	}
}

// TypeDeclaration is a class/struct/interface/enum/delegate declaration.
type TypeDeclaration struct {
	Span             Span
	Attributes       []*AttributeSection
	Modifiers        ModifierSet
	Kind             TypeKind
	Name             string
	TypeParameters   []*TypeParameter
	BaseList         []TypeExpr // base class (struct/class only, at most one) then interfaces
	Constraints      []*ConstraintClause
	Members          []Declaration // class/struct/interface bodies
	EnumUnderlying   TypeExpr      // enum only; nil means int
	EnumMembers      []*EnumMember // enum only
	DelegateReturn   TypeExpr      // delegate only
	DelegateParams   []*Parameter  // delegate only
	DelegateTypeParm []*TypeParameter
}

func (t *TypeDeclaration) GetSpan() Span    { return t.Span }
func (t *TypeDeclaration) String() string   { return t.Kind.String() + " " + t.Name }
func (t *TypeDeclaration) declarationNode() {}

// EnumMember is one `Name` or `Name = expr` entry inside an enum body.
type EnumMember struct {
	Span       Span
	Attributes []*AttributeSection
	Name       string
	Value      Expression // nil when unspecified
}

// FieldDeclaration declares one or more variables of the same type,
// e.g. `private int x, y = 2;`.
type FieldDeclaration struct {
	Span         Span
	Attributes   []*AttributeSection
	Modifiers    ModifierSet
	Type         TypeExpr
	Declarators  []*VariableDeclarator
}

func (f *FieldDeclaration) GetSpan() Span    { return f.Span }
func (f *FieldDeclaration) String() string   { return "field" }
func (f *FieldDeclaration) declarationNode() {}

// VariableDeclarator is one `name` or `name = init` entry shared by
// field declarations and local-variable statements.
type VariableDeclarator struct {
	Span Span
	Name string
	Init Expression // nil when absent
}

// ConstDeclaration is `const Type a = expr, b = expr;`.
type ConstDeclaration struct {
	Span        Span
	Attributes  []*AttributeSection
	Modifiers   ModifierSet
	Type        TypeExpr
	Declarators []*VariableDeclarator
}

func (c *ConstDeclaration) GetSpan() Span    { return c.Span }
func (c *ConstDeclaration) String() string   { return "const" }
func (c *ConstDeclaration) declarationNode() {}

// Parameter is one formal parameter, covering ref/out/params modifiers
// and an optional default value.
type Parameter struct {
	Span       Span
	Attributes []*AttributeSection
	Modifier   string // "", "ref", "out", "params", "this" (extension methods)
	Type       TypeExpr
	Name       string
	Default    Expression // nil when absent
}

// MethodDeclaration covers ordinary methods, including generic ones and
// their constraint clauses; ExplicitInterface is non-empty for explicit
// interface member implementations (`void IFoo.Bar()`).
type MethodDeclaration struct {
	Span              Span
	Attributes        []*AttributeSection
	Modifiers         ModifierSet
	ReturnType        TypeExpr
	ExplicitInterface string
	Name              string
	TypeParameters    []*TypeParameter
	Parameters        []*Parameter
	Constraints       []*ConstraintClause
	Body              *BlockStatement // nil for abstract/extern/interface methods
	IsIterator        bool            // a yield statement sits directly in the body or in a nested bare block; yields inside loops, if, try and other compound statements are not found
}

func (m *MethodDeclaration) GetSpan() Span    { return m.Span }
func (m *MethodDeclaration) String() string   { return "method " + m.Name }
func (m *MethodDeclaration) declarationNode() {}

// ConstructorDeclaration is an instance constructor, optionally chaining
// to `base(...)` or `this(...)`.
type ConstructorDeclaration struct {
	Span          Span
	Attributes    []*AttributeSection
	Modifiers     ModifierSet
	Name          string
	Parameters    []*Parameter
	InitializerIs string // "", "base", "this"
	InitArgs      []Expression
	Body          *BlockStatement
}

func (c *ConstructorDeclaration) GetSpan() Span    { return c.Span }
func (c *ConstructorDeclaration) String() string   { return "constructor " + c.Name }
func (c *ConstructorDeclaration) declarationNode() {}

// DestructorDeclaration is `~Name() { ... }`.
type DestructorDeclaration struct {
	Span       Span
	Attributes []*AttributeSection
	Modifiers  ModifierSet
	Name       string
	Body       *BlockStatement
}

func (d *DestructorDeclaration) GetSpan() Span    { return d.Span }
func (d *DestructorDeclaration) String() string   { return "destructor ~" + d.Name }
func (d *DestructorDeclaration) declarationNode() {}

// AccessorDeclaration is one `get`/`set`/`add`/`remove` block, or a
// bodyless `get;`/`set;` inside an auto-property.
type AccessorDeclaration struct {
	Span       Span
	Attributes []*AttributeSection
	Modifiers  ModifierSet // rare accessor-level access modifier, e.g. `private set`
	Kind       string      // "get", "set", "add", "remove"
	Body       *BlockStatement
}

// PropertyDeclaration covers both auto-properties and full get/set
// property bodies.
type PropertyDeclaration struct {
	Span              Span
	Attributes        []*AttributeSection
	Modifiers         ModifierSet
	Type              TypeExpr
	ExplicitInterface string
	Name              string
	Accessors         []*AccessorDeclaration
	Initializer       Expression // auto-property initializer, may be nil
}

func (p *PropertyDeclaration) GetSpan() Span    { return p.Span }
func (p *PropertyDeclaration) String() string   { return "property " + p.Name }
func (p *PropertyDeclaration) declarationNode() {}

// IndexerDeclaration is `this[params] { get; set; }`.
type IndexerDeclaration struct {
	Span              Span
	Attributes        []*AttributeSection
	Modifiers         ModifierSet
	Type              TypeExpr
	ExplicitInterface string
	Parameters        []*Parameter
	Accessors         []*AccessorDeclaration
}

func (i *IndexerDeclaration) GetSpan() Span    { return i.Span }
func (i *IndexerDeclaration) String() string   { return "indexer" }
func (i *IndexerDeclaration) declarationNode() {}

// EventDeclaration covers both the field-like form (`event Handler E;`)
// and the block form with explicit add/remove accessors.
type EventDeclaration struct {
	Span              Span
	Attributes        []*AttributeSection
	Modifiers         ModifierSet
	Type              TypeExpr
	ExplicitInterface string
	Declarators       []*VariableDeclarator // field-like form; empty for block form
	Name              string                // block form
	Accessors         []*AccessorDeclaration // block form; empty for field-like form
}

func (e *EventDeclaration) GetSpan() Span    { return e.Span }
func (e *EventDeclaration) String() string   { return "event" }
func (e *EventDeclaration) declarationNode() {}

// OperatorDeclaration covers both unary/binary operator overloads and
// implicit/explicit user-defined conversions.
type OperatorDeclaration struct {
	Span           Span
	Attributes     []*AttributeSection
	Modifiers      ModifierSet
	IsConversion   bool
	ConversionKind string // "implicit", "explicit" — only when IsConversion
	ReturnType     TypeExpr
	OperatorToken  string // "+", "==", "true", etc — empty for conversions
	Parameters     []*Parameter
	Body           *BlockStatement
}

func (o *OperatorDeclaration) GetSpan() Span  { return o.Span }
func (o *OperatorDeclaration) String() string { return "operator " + o.OperatorToken }
func (o *OperatorDeclaration) declarationNode() {}
