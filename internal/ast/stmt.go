package ast

// BlockStatement is a `{ ... }` sequence of statements.
type BlockStatement struct {
	Span       Span
	Statements []Statement
}

func (b *BlockStatement) GetSpan() Span   { return b.Span }
func (b *BlockStatement) String() string  { return "{...}" }
func (b *BlockStatement) statementNode()  {}

// EmptyStatement is a lone `;`.
type EmptyStatement struct{ Span Span }

func (e *EmptyStatement) GetSpan() Span  { return e.Span }
func (e *EmptyStatement) String() string { return ";" }
func (e *EmptyStatement) statementNode() {}

// LabeledStatement is `id: stmt`, recognized by IsLabel lookahead.
type LabeledStatement struct {
	Span      Span
	Label     string
	Statement Statement
}

func (l *LabeledStatement) GetSpan() Span  { return l.Span }
func (l *LabeledStatement) String() string { return l.Label + ":" }
func (l *LabeledStatement) statementNode() {}

// LocalVariableDeclaration is `[var|Type] a = e, b;` inside a block,
// disambiguated from an expression-statement by IsLocalVarDecl.
type LocalVariableDeclaration struct {
	Span        Span
	IsVar       bool // `var` inferred-type form
	Type        TypeExpr
	Declarators []*VariableDeclarator
}

func (l *LocalVariableDeclaration) GetSpan() Span  { return l.Span }
func (l *LocalVariableDeclaration) String() string { return "local var" }
func (l *LocalVariableDeclaration) statementNode() {}

// LocalConstDeclaration is `const Type a = e;` inside a block.
type LocalConstDeclaration struct {
	Span        Span
	Type        TypeExpr
	Declarators []*VariableDeclarator
}

func (l *LocalConstDeclaration) GetSpan() Span  { return l.Span }
func (l *LocalConstDeclaration) String() string { return "local const" }
func (l *LocalConstDeclaration) statementNode() {}

// ExpressionStatement wraps a bare expression used as a statement (a
// call, assignment, or increment/decrement).
type ExpressionStatement struct {
	Span       Span
	Expression Expression
}

func (e *ExpressionStatement) GetSpan() Span  { return e.Span }
func (e *ExpressionStatement) String() string { return e.Expression.String() + ";" }
func (e *ExpressionStatement) statementNode() {}

// IfStatement is `if (cond) then [else else_]`.
type IfStatement struct {
	Span      Span
	Condition Expression
	Then      Statement
	Else      Statement // nil when absent
}

func (i *IfStatement) GetSpan() Span  { return i.Span }
func (i *IfStatement) String() string { return "if (...)" }
func (i *IfStatement) statementNode() {}

// SwitchSection is one `case expr:`/`default:` label group sharing one
// statement list, ending at the next label or the closing brace.
type SwitchSection struct {
	Span       Span
	Labels     []Expression // nil entries mark `default:`
	Statements []Statement
}

// SwitchStatement is `switch (expr) { sections }`.
type SwitchStatement struct {
	Span     Span
	Subject  Expression
	Sections []*SwitchSection
}

func (s *SwitchStatement) GetSpan() Span  { return s.Span }
func (s *SwitchStatement) String() string { return "switch (...)" }
func (s *SwitchStatement) statementNode() {}

// WhileStatement is `while (cond) body`.
type WhileStatement struct {
	Span      Span
	Condition Expression
	Body      Statement
}

func (w *WhileStatement) GetSpan() Span  { return w.Span }
func (w *WhileStatement) String() string { return "while (...)" }
func (w *WhileStatement) statementNode() {}

// DoStatement is `do body while (cond);`.
type DoStatement struct {
	Span      Span
	Body      Statement
	Condition Expression
}

func (d *DoStatement) GetSpan() Span  { return d.Span }
func (d *DoStatement) String() string { return "do ... while (...)" }
func (d *DoStatement) statementNode() {}

// ForStatement is the classic three-clause form; Initializers may hold
// either a LocalVariableDeclaration or a list of expression statements.
type ForStatement struct {
	Span        Span
	Initializer Statement // *LocalVariableDeclaration or *ExpressionStatement list wrapped in a BlockStatement-less holder
	InitExprs   []Expression
	Condition   Expression // nil means "true"
	Iterators   []Expression
	Body        Statement
}

func (f *ForStatement) GetSpan() Span  { return f.Span }
func (f *ForStatement) String() string { return "for (...)" }
func (f *ForStatement) statementNode() {}

// ForEachStatement is `foreach ([var|Type] name in expr) body`.
type ForEachStatement struct {
	Span       Span
	IsVar      bool
	Type       TypeExpr
	Name       string
	Collection Expression
	Body       Statement
}

func (f *ForEachStatement) GetSpan() Span  { return f.Span }
func (f *ForEachStatement) String() string { return "foreach (...)" }
func (f *ForEachStatement) statementNode() {}

// BreakStatement is `break;`.
type BreakStatement struct{ Span Span }

func (b *BreakStatement) GetSpan() Span  { return b.Span }
func (b *BreakStatement) String() string { return "break;" }
func (b *BreakStatement) statementNode() {}

// ContinueStatement is `continue;`.
type ContinueStatement struct{ Span Span }

func (c *ContinueStatement) GetSpan() Span  { return c.Span }
func (c *ContinueStatement) String() string { return "continue;" }
func (c *ContinueStatement) statementNode() {}

// GotoStatement covers `goto label;`, `goto case expr;` and `goto default;`.
type GotoStatement struct {
	Span      Span
	Label     string     // set for the plain label form
	CaseExpr  Expression // set for `goto case`
	IsDefault bool
}

func (g *GotoStatement) GetSpan() Span  { return g.Span }
func (g *GotoStatement) String() string { return "goto" }
func (g *GotoStatement) statementNode() {}

// ReturnStatement is `return [expr];`.
type ReturnStatement struct {
	Span  Span
	Value Expression // nil for a bare `return;`
}

func (r *ReturnStatement) GetSpan() Span  { return r.Span }
func (r *ReturnStatement) String() string { return "return" }
func (r *ReturnStatement) statementNode() {}

// ThrowStatement is `throw [expr];`; Value is nil for a rethrow inside a
// catch clause.
type ThrowStatement struct {
	Span  Span
	Value Expression
}

func (t *ThrowStatement) GetSpan() Span  { return t.Span }
func (t *ThrowStatement) String() string { return "throw" }
func (t *ThrowStatement) statementNode() {}

// CatchClause is one `catch [(Type [name])] block` clause; a clause with
// no type is the catch-all form and IsTypedCatch reports false for it.
type CatchClause struct {
	Span    Span
	Type    TypeExpr // nil for catch-all
	Name    string
	Body    *BlockStatement
}

// TryStatement is `try block catches [finally block]`.
type TryStatement struct {
	Span    Span
	Body    *BlockStatement
	Catches []*CatchClause
	Finally *BlockStatement // nil when absent
}

func (t *TryStatement) GetSpan() Span  { return t.Span }
func (t *TryStatement) String() string { return "try" }
func (t *TryStatement) statementNode() {}

// LockStatement is `lock (expr) body`.
type LockStatement struct {
	Span   Span
	Target Expression
	Body   Statement
}

func (l *LockStatement) GetSpan() Span  { return l.Span }
func (l *LockStatement) String() string { return "lock (...)" }
func (l *LockStatement) statementNode() {}

// UsingStatement is `using (resource) body`; resource may be a local
// variable declaration or an expression.
type UsingStatement struct {
	Span     Span
	Decl     *LocalVariableDeclaration // nil when Resource is set
	Resource Expression
	Body     Statement
}

func (u *UsingStatement) GetSpan() Span  { return u.Span }
func (u *UsingStatement) String() string { return "using (...)" }
func (u *UsingStatement) statementNode() {}

// FixedStatement is `fixed (Type* p = expr) body`.
type FixedStatement struct {
	Span        Span
	Type        TypeExpr
	Declarators []*VariableDeclarator
	Body        Statement
}

func (f *FixedStatement) GetSpan() Span  { return f.Span }
func (f *FixedStatement) String() string { return "fixed (...)" }
func (f *FixedStatement) statementNode() {}

// UnsafeStatement is `unsafe block`.
type UnsafeStatement struct {
	Span Span
	Body *BlockStatement
}

func (u *UnsafeStatement) GetSpan() Span  { return u.Span }
func (u *UnsafeStatement) String() string { return "unsafe" }
func (u *UnsafeStatement) statementNode() {}

// CheckedStatement is `checked block` or `unchecked block`.
type CheckedStatement struct {
	Span      Span
	Unchecked bool
	Body      *BlockStatement
}

func (c *CheckedStatement) GetSpan() Span  { return c.Span }
func (c *CheckedStatement) String() string { return "checked" }
func (c *CheckedStatement) statementNode() {}

// YieldStatement is `yield return expr;` or `yield break;`, recognized
// by IsYieldStatement's two-token lookahead.
type YieldStatement struct {
	Span  Span
	Break bool
	Value Expression // set only for `yield return`
}

func (y *YieldStatement) GetSpan() Span  { return y.Span }
func (y *YieldStatement) String() string { return "yield" }
func (y *YieldStatement) statementNode() {}
