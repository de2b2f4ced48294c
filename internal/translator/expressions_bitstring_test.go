package translator

import (
	"testing"

	"github.com/vela-lang/velac/internal/ast"
	"github.com/vela-lang/velac/internal/env"
	"github.com/vela-lang/velac/internal/target"
)

func TestTranslateBitstringAllLiteralBinaryIsInterpolation(t *testing.T) {
	ctx := newTestContext()
	n := &ast.BitstringNode{Segments: []ast.BitstringSegment{
		{Value: &ast.StringLiteral{Value: "hi "}, IsLiteralBinary: true},
		{Value: &ast.Identifier{Name: "name"}, Type: "binary"},
	}}
	got, err := translateBitstring(ctx, env.New("."), n)
	if err != nil {
		t.Fatalf("translateBitstring: %v", err)
	}
	call, ok := got.(*target.CallExpression)
	if !ok {
		t.Fatalf("got %#v, want *target.CallExpression", got)
	}
	member := call.Callee.(*target.MemberExpression)
	prop := member.Property.(*target.Identifier)
	if prop.Name != "stringConcat" {
		t.Errorf("property = %q, want stringConcat", prop.Name)
	}
}

func TestTranslateBitstringWithIntegerSegmentIsConstructor(t *testing.T) {
	ctx := newTestContext()
	n := &ast.BitstringNode{Segments: []ast.BitstringSegment{
		{Value: &ast.IntLiteral{Value: 1}, Type: "integer", Unit: 8},
	}}
	got, err := translateBitstring(ctx, env.New("."), n)
	if err != nil {
		t.Fatalf("translateBitstring: %v", err)
	}
	call, ok := got.(*target.CallExpression)
	if !ok {
		t.Fatalf("got %#v, want *target.CallExpression", got)
	}
	member := call.Callee.(*target.MemberExpression)
	obj := member.Object.(*target.Identifier)
	if obj.Name != "SpecialForms" {
		t.Errorf("object = %q, want SpecialForms", obj.Name)
	}
	prop := member.Property.(*target.Identifier)
	if prop.Name != "bitstring" {
		t.Errorf("property = %q, want bitstring", prop.Name)
	}
}

func TestTranslateBitstringEmptySegmentsIsEmptyInterpolation(t *testing.T) {
	ctx := newTestContext()
	got, err := translateBitstring(ctx, env.New("."), &ast.BitstringNode{})
	if err != nil {
		t.Fatalf("translateBitstring: %v", err)
	}
	call := got.(*target.CallExpression)
	member := call.Callee.(*target.MemberExpression)
	prop := member.Property.(*target.Identifier)
	if prop.Name != "stringConcat" {
		t.Errorf("empty bitstring should lower as an empty interpolation, got %q", prop.Name)
	}
}

func TestTranslateBitstringConstructorDefaultsTypeAndEndianness(t *testing.T) {
	ctx := newTestContext()
	n := &ast.BitstringNode{Segments: []ast.BitstringSegment{
		{Value: &ast.IntLiteral{Value: 1}},
	}}
	got, err := translateBitstringConstructor(ctx, env.New("."), n.Segments)
	if err != nil {
		t.Fatalf("translateBitstringConstructor: %v", err)
	}
	call := got.(*target.CallExpression)
	arr := call.Args[0].(*target.ArrayExpression)
	entry := arr.Elements[0].(*target.ObjectExpression)
	var gotType, gotEndian string
	for _, p := range entry.Properties {
		id := p.Key.(*target.Identifier)
		switch id.Name {
		case "type":
			gotType = p.Value.(*target.Literal).Value.(string)
		case "endianness":
			gotEndian = p.Value.(*target.Literal).Value.(string)
		}
	}
	if gotType != "integer" {
		t.Errorf("default type = %q, want integer", gotType)
	}
	if gotEndian != "big" {
		t.Errorf("default endianness = %q, want big", gotEndian)
	}
}
