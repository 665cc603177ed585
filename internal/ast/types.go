package ast

// TypeRef is a parsed type reference: a possibly-qualified name, its
// generic argument list, array rank specifiers (innermost first),
// pointer nesting depth, and nullability. Nullable value/reference
// types are represented as System.Nullable<T> rather than as a bit, per
// the language's own desugaring.
type TypeRef struct {
	Span              Span
	Name              string // "Foo" or "System.Collections.Generic.List"
	GenericArgs       []TypeExpr
	RankSpecifiers    []int // one entry per [,]* group; value is the rank (commas+1)
	PointerDepth      int
	IsGlobalQualified bool // true for `global::Foo`
	IsNullable        bool // sugar flag; expanded to Nullable<T> by AsNullable
}

func (t *TypeRef) GetSpan() Span  { return t.Span }
func (t *TypeRef) typeNode()      {}
func (t *TypeRef) String() string {
	s := t.Name
	if t.IsGlobalQualified {
		s = "global::" + s
	}

	if len(t.GenericArgs) > 0 {
		s += "<...>"
	}

	for range t.RankSpecifiers {
		s += "[]"
	}

	for i := 0; i < t.PointerDepth; i++ {
		s += "*"
	}

	if t.IsNullable {
		s += "?"
	}

	return s
}

// AsNullable rewrites t in place into its System.Nullable<T> desugaring,
// the representation §3 mandates for `T?`. Every nullable TypeRef without
// pointer stars or rank specifiers is wrapped, whether it names a value
// or a reference type; pointer and array types are returned unchanged
// with the IsNullable flag still set.
func (t *TypeRef) AsNullable() *TypeRef {
	if !t.IsNullable || t.PointerDepth > 0 || len(t.RankSpecifiers) > 0 {
		return t
	}

	inner := &TypeRef{
		Span: t.Span, Name: t.Name, GenericArgs: t.GenericArgs,
		IsGlobalQualified: t.IsGlobalQualified,
	}

	return &TypeRef{
		Span:        t.Span,
		Name:        "System.Nullable",
		GenericArgs: []TypeExpr{inner},
	}
}

// TypeParameter is one entry in a generic type/method parameter list,
// e.g. `T` in `class Pair<T>` or `in T`/`out T` under variance.
type TypeParameter struct {
	Span      Span
	Name      string
	Variance  string // "", "in", "out"
	Attribute *AttributeSection
}

// ConstraintClause is one `where T : ...` clause following a generic
// declaration's parameter list.
type ConstraintClause struct {
	Span           Span
	ParameterName  string
	Constraints    []TypeExpr // class/interface/base-type constraints
	HasClassConstr bool
	HasStructConst bool
	HasNewConstr   bool
}
