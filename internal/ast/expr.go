package ast

// Ident is a bare identifier reference, possibly with a generic
// argument list attached (`Foo<int>`), disambiguated from a
// less-than comparison by IsGenericFollowedBy.
type Ident struct {
	Span        Span
	Name        string
	GenericArgs []TypeExpr
}

func (i *Ident) GetSpan() Span   { return i.Span }
func (i *Ident) String() string  { return i.Name }
func (i *Ident) expressionNode() {}

// Literal is any integer, float, string, char, bool or null literal.
type Literal struct {
	Span  Span
	Kind  string // "int", "float", "string", "char", "bool", "null"
	Raw   string
	Value interface{}
}

func (l *Literal) GetSpan() Span   { return l.Span }
func (l *Literal) String() string  { return l.Raw }
func (l *Literal) expressionNode() {}

// ThisExpr and BaseExpr are the `this`/`base` keywords used as primary
// expressions.
type ThisExpr struct{ Span Span }

func (t *ThisExpr) GetSpan() Span   { return t.Span }
func (t *ThisExpr) String() string  { return "this" }
func (t *ThisExpr) expressionNode() {}

type BaseExpr struct{ Span Span }

func (b *BaseExpr) GetSpan() Span   { return b.Span }
func (b *BaseExpr) String() string  { return "base" }
func (b *BaseExpr) expressionNode() {}

// ParenExpr is a parenthesized expression kept as its own node so a
// cast's parenthesized type isn't confused with it (see IsTypeCast).
type ParenExpr struct {
	Span  Span
	Inner Expression
}

func (p *ParenExpr) GetSpan() Span   { return p.Span }
func (p *ParenExpr) String() string  { return "(...)" }
func (p *ParenExpr) expressionNode() {}

// MemberExpr is `target.Name`.
type MemberExpr struct {
	Span   Span
	Target Expression
	Name   string
}

func (m *MemberExpr) GetSpan() Span   { return m.Span }
func (m *MemberExpr) String() string  { return m.Target.String() + "." + m.Name }
func (m *MemberExpr) expressionNode() {}

// PointerMemberExpr is `target->Name`, valid only inside unsafe context.
type PointerMemberExpr struct {
	Span   Span
	Target Expression
	Name   string
}

func (p *PointerMemberExpr) GetSpan() Span   { return p.Span }
func (p *PointerMemberExpr) String() string  { return p.Target.String() + "->" + p.Name }
func (p *PointerMemberExpr) expressionNode() {}

// CallExpr is `callee(args)`.
type CallExpr struct {
	Span      Span
	Callee    Expression
	Arguments []*Argument
}

func (c *CallExpr) GetSpan() Span   { return c.Span }
func (c *CallExpr) String() string  { return c.Callee.String() + "(...)" }
func (c *CallExpr) expressionNode() {}

// Argument is one call argument, covering the ref/out modifiers and
// named-argument form (`name: expr`).
type Argument struct {
	Span     Span
	Name     string // non-empty for named arguments
	Modifier string // "", "ref", "out"
	Value    Expression
}

// IndexExpr is `target[args]`.
type IndexExpr struct {
	Span      Span
	Target    Expression
	Arguments []*Argument
}

func (i *IndexExpr) GetSpan() Span   { return i.Span }
func (i *IndexExpr) String() string  { return i.Target.String() + "[...]" }
func (i *IndexExpr) expressionNode() {}

// ObjectCreationExpr is `new Type(args) [initializer]`.
type ObjectCreationExpr struct {
	Span        Span
	Type        TypeExpr
	Arguments   []*Argument
	Initializer []Expression // object/collection initializer elements, may be nil
}

func (o *ObjectCreationExpr) GetSpan() Span   { return o.Span }
func (o *ObjectCreationExpr) String() string  { return "new " + o.Type.String() }
func (o *ObjectCreationExpr) expressionNode() {}

// ArrayCreationExpr is `new Type[rank]{...}` or `new[]{...}`.
type ArrayCreationExpr struct {
	Span        Span
	ElementType TypeExpr // nil for the inferred `new[]{...}` form
	Sizes       []Expression
	RankOnly    []int // extra [,]* rank groups with no size expressions
	Initializer []Expression
}

func (a *ArrayCreationExpr) GetSpan() Span   { return a.Span }
func (a *ArrayCreationExpr) String() string  { return "new[]" }
func (a *ArrayCreationExpr) expressionNode() {}

// StackAllocExpr is `stackalloc Type[expr]`.
type StackAllocExpr struct {
	Span        Span
	ElementType TypeExpr
	Size        Expression
}

func (s *StackAllocExpr) GetSpan() Span   { return s.Span }
func (s *StackAllocExpr) String() string  { return "stackalloc" }
func (s *StackAllocExpr) expressionNode() {}

// TypeofExpr and SizeofExpr are `typeof(Type)` / `sizeof(Type)`.
type TypeofExpr struct {
	Span Span
	Type TypeExpr
}

func (t *TypeofExpr) GetSpan() Span   { return t.Span }
func (t *TypeofExpr) String() string  { return "typeof(...)" }
func (t *TypeofExpr) expressionNode() {}

type SizeofExpr struct {
	Span Span
	Type TypeExpr
}

func (s *SizeofExpr) GetSpan() Span   { return s.Span }
func (s *SizeofExpr) String() string  { return "sizeof(...)" }
func (s *SizeofExpr) expressionNode() {}

// DefaultExpr is `default(Type)` or the target-typed `default`.
type DefaultExpr struct {
	Span Span
	Type TypeExpr // nil for the target-typed form
}

func (d *DefaultExpr) GetSpan() Span   { return d.Span }
func (d *DefaultExpr) String() string  { return "default" }
func (d *DefaultExpr) expressionNode() {}

// CheckedExpr is `checked(expr)` / `unchecked(expr)`.
type CheckedExpr struct {
	Span      Span
	Unchecked bool
	Inner     Expression
}

func (c *CheckedExpr) GetSpan() Span   { return c.Span }
func (c *CheckedExpr) String() string  { return "checked(...)" }
func (c *CheckedExpr) expressionNode() {}

// CastExpr is `(Type)expr`, produced only when IsTypeCast's lookahead
// confirms the parenthesized name is a type, not a value.
type CastExpr struct {
	Span   Span
	Type   TypeExpr
	Target Expression
}

func (c *CastExpr) GetSpan() Span   { return c.Span }
func (c *CastExpr) String() string  { return "(" + c.Type.String() + ")" + c.Target.String() }
func (c *CastExpr) expressionNode() {}

// UnaryExpr is a prefix operator application: `-x`, `!x`, `~x`, `*p`,
// `&x`, `++x`, `--x`.
type UnaryExpr struct {
	Span     Span
	Operator string
	Operand  Expression
}

func (u *UnaryExpr) GetSpan() Span   { return u.Span }
func (u *UnaryExpr) String() string  { return u.Operator + u.Operand.String() }
func (u *UnaryExpr) expressionNode() {}

// PostfixExpr is a postfix `x++` / `x--`.
type PostfixExpr struct {
	Span     Span
	Operator string
	Operand  Expression
}

func (p *PostfixExpr) GetSpan() Span   { return p.Span }
func (p *PostfixExpr) String() string  { return p.Operand.String() + p.Operator }
func (p *PostfixExpr) expressionNode() {}

// BinaryExpr covers every left-associative binary operator level:
// multiplicative through logical-or.
type BinaryExpr struct {
	Span     Span
	Operator string
	Left     Expression
	Right    Expression
}

func (b *BinaryExpr) GetSpan() Span   { return b.Span }
func (b *BinaryExpr) String() string  { return "(" + b.Left.String() + " " + b.Operator + " " + b.Right.String() + ")" }
func (b *BinaryExpr) expressionNode() {}

// IsExpr and AsExpr are the `expr is Type` / `expr as Type` operators.
type IsExpr struct {
	Span Span
	Left Expression
	Type TypeExpr
}

func (i *IsExpr) GetSpan() Span   { return i.Span }
func (i *IsExpr) String() string  { return i.Left.String() + " is " + i.Type.String() }
func (i *IsExpr) expressionNode() {}

type AsExpr struct {
	Span Span
	Left Expression
	Type TypeExpr
}

func (a *AsExpr) GetSpan() Span   { return a.Span }
func (a *AsExpr) String() string  { return a.Left.String() + " as " + a.Type.String() }
func (a *AsExpr) expressionNode() {}

// ConditionalExpr is the ternary `cond ? then : else_`.
type ConditionalExpr struct {
	Span      Span
	Condition Expression
	Then      Expression
	Else      Expression
}

func (c *ConditionalExpr) GetSpan() Span   { return c.Span }
func (c *ConditionalExpr) String() string  { return "(...?...:...)" }
func (c *ConditionalExpr) expressionNode() {}

// AssignmentExpr is `lhs op rhs` where op is `=` or a compound-assign
// spelling; right-associative per the precedence cascade.
type AssignmentExpr struct {
	Span     Span
	Operator string
	Target   Expression
	Value    Expression
}

func (a *AssignmentExpr) GetSpan() Span   { return a.Span }
func (a *AssignmentExpr) String() string  { return a.Target.String() + " " + a.Operator + " " + a.Value.String() }
func (a *AssignmentExpr) expressionNode() {}

// LambdaExpr is `(params) => body` or `id => body`; Body holds either an
// Expression (expression-bodied) or a *BlockStatement.
type LambdaExpr struct {
	Span   Span
	Params []*Parameter
	Body   Node
}

func (l *LambdaExpr) GetSpan() Span   { return l.Span }
func (l *LambdaExpr) String() string  { return "(...) => ..." }
func (l *LambdaExpr) expressionNode() {}

// AnonymousMethodExpr is the pre-lambda `delegate(params) { body }` form.
type AnonymousMethodExpr struct {
	Span   Span
	Params []*Parameter
	Body   *BlockStatement
}

func (a *AnonymousMethodExpr) GetSpan() Span   { return a.Span }
func (a *AnonymousMethodExpr) String() string  { return "delegate(...) {...}" }
func (a *AnonymousMethodExpr) expressionNode() {}
