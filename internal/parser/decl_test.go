package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nova-lang/novac/internal/ast"
)

func TestParseSimpleClass(t *testing.T) {
	p := newTestParser(`
		public class Foo : Base, IBar {
			private int x;
			public int Y { get; set; }
			public Foo(int x) : base(x) { this.x = x; }
			public int Add(int a, int b) { return a + b; }
		}
	`)
	cu := p.Parse()

	require.Empty(t, p.Diagnostics())
	require.Len(t, cu.Members, 1)

	td, ok := cu.Members[0].(*ast.TypeDeclaration)
	require.True(t, ok)
	assert.Equal(t, "Foo", td.Name)
	assert.True(t, td.Modifiers.Has(ast.ModPublic))
	require.Len(t, td.BaseList, 2)
	require.Len(t, td.Members, 4)

	ctor, ok := td.Members[2].(*ast.ConstructorDeclaration)
	require.True(t, ok)
	assert.Equal(t, "base", ctor.InitializerIs)
}

func TestParseGenericClassWithConstraints(t *testing.T) {
	p := newTestParser(`
		public class Box<T> where T : class, new() {
			public T Value;
		}
	`)
	cu := p.Parse()

	require.Empty(t, p.Diagnostics())

	td := cu.Members[0].(*ast.TypeDeclaration)
	require.Len(t, td.TypeParameters, 1)
	require.Len(t, td.Constraints, 1)
	assert.True(t, td.Constraints[0].HasClassConstr)
	assert.True(t, td.Constraints[0].HasNewConstr)
}

func TestParseEnumWithExplicitValues(t *testing.T) {
	p := newTestParser(`
		public enum Color : byte {
			Red = 1,
			Green = 2,
			Blue,
		}
	`)
	cu := p.Parse()

	require.Empty(t, p.Diagnostics())

	td := cu.Members[0].(*ast.TypeDeclaration)
	require.Len(t, td.EnumMembers, 3)
	assert.Nil(t, td.EnumMembers[2].Value)
}

func TestParseDelegateDeclaration(t *testing.T) {
	p := newTestParser("public delegate void Handler(object sender, int e);")
	cu := p.Parse()

	require.Empty(t, p.Diagnostics())

	td := cu.Members[0].(*ast.TypeDeclaration)
	assert.Equal(t, ast.TypeDelegate, td.Kind)
	assert.Len(t, td.DelegateParams, 2)
}

func TestParseIndexerDeclaration(t *testing.T) {
	p := newTestParser(`
		public class Grid {
			public int this[int x, int y] { get { return 0; } set { } }
		}
	`)
	cu := p.Parse()

	require.Empty(t, p.Diagnostics())

	td := cu.Members[0].(*ast.TypeDeclaration)
	idx, ok := td.Members[0].(*ast.IndexerDeclaration)
	require.True(t, ok)
	assert.Len(t, idx.Parameters, 2)
	assert.Len(t, idx.Accessors, 2)
}

func TestParseEventBothForms(t *testing.T) {
	p := newTestParser(`
		public class Button {
			public event Handler Click;
			public event Handler Hover { add { } remove { } }
		}
	`)
	cu := p.Parse()

	require.Empty(t, p.Diagnostics())

	td := cu.Members[0].(*ast.TypeDeclaration)
	require.Len(t, td.Members, 2)

	fieldLike := td.Members[0].(*ast.EventDeclaration)
	assert.Len(t, fieldLike.Declarators, 1)

	blockForm := td.Members[1].(*ast.EventDeclaration)
	assert.Len(t, blockForm.Accessors, 2)
}

func TestParseOperatorOverloadAndConversion(t *testing.T) {
	p := newTestParser(`
		public struct Vec {
			public static Vec operator +(Vec a, Vec b) { return a; }
			public static implicit operator double(Vec v) { return 0.0; }
		}
	`)
	cu := p.Parse()

	require.Empty(t, p.Diagnostics())

	td := cu.Members[0].(*ast.TypeDeclaration)
	op := td.Members[0].(*ast.OperatorDeclaration)
	assert.Equal(t, "+", op.OperatorToken)

	conv := td.Members[1].(*ast.OperatorDeclaration)
	assert.True(t, conv.IsConversion)
	assert.Equal(t, "implicit", conv.ConversionKind)
}

func TestParseNamespaceWithNestedType(t *testing.T) {
	p := newTestParser(`
		using System;

		namespace App {
			public class Program {
				public static void Main() { }
			}
		}
	`)
	cu := p.Parse()

	require.Empty(t, p.Diagnostics())
	require.Len(t, cu.Usings, 1)
	assert.Equal(t, "System", cu.Usings[0].Name)

	ns, ok := cu.Members[0].(*ast.NamespaceDeclaration)
	require.True(t, ok)
	require.Len(t, ns.Members, 1)
}

func TestParseInvalidModifierIsRecoverableNotFatal(t *testing.T) {
	p := newTestParser(`
		abstract struct Foo {
		}
	`)
	cu := p.Parse()

	assert.True(t, p.sink.HasErrors(), "abstract is not valid on a struct")
	require.Len(t, cu.Members, 1, "the declaration is still built despite the invalid modifier")
}

func TestParseAdjacentAttributeSectionsNeverMerge(t *testing.T) {
	p := newTestParser(`
		[Foo]
		[Bar]
		public class C {}
	`)
	cu := p.Parse()

	require.Empty(t, p.Diagnostics())

	td := cu.Members[0].(*ast.TypeDeclaration)
	require.Len(t, td.Attributes, 2)
	assert.Equal(t, "Foo", td.Attributes[0].Attributes[0].Name)
	assert.Equal(t, "Bar", td.Attributes[1].Attributes[0].Name)
}
