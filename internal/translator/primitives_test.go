package translator

import (
	"testing"

	"github.com/vela-lang/velac/internal/ast"
	"github.com/vela-lang/velac/internal/env"
	"github.com/vela-lang/velac/internal/macro"
	"github.com/vela-lang/velac/internal/registry"
	"github.com/vela-lang/velac/internal/target"
)

func newTestContext() *Context {
	reg := registry.New(".", env.New("."))
	return NewContext(reg, macro.Identity, "test.vl")
}

func TestDispatchPrimitiveLiterals(t *testing.T) {
	ctx := newTestContext()
	e := env.New(".")

	out, err := Dispatch(ctx, e, &ast.IntLiteral{Value: 42})
	if err != nil {
		t.Fatalf("IntLiteral: %v", err)
	}
	lit, ok := out.(*target.Literal)
	if !ok || lit.Value != int64(42) {
		t.Errorf("got %#v, want Literal(42)", out)
	}

	out, err = Dispatch(ctx, e, &ast.NilLiteral{})
	if err != nil {
		t.Fatalf("NilLiteral: %v", err)
	}
	if lit, ok := out.(*target.Literal); !ok || lit.Value != nil {
		t.Errorf("got %#v, want Literal(nil)", out)
	}
}

func TestDispatchAtomUsesSpecialFormsCall(t *testing.T) {
	ctx := newTestContext()
	out, err := Dispatch(ctx, env.New("."), &ast.AtomLiteral{Name: "ok"})
	if err != nil {
		t.Fatalf("atom: %v", err)
	}
	call, ok := out.(*target.CallExpression)
	if !ok {
		t.Fatalf("got %#v, want CallExpression", out)
	}
	member, ok := call.Callee.(*target.MemberExpression)
	if !ok {
		t.Fatalf("callee = %#v, want MemberExpression", call.Callee)
	}
	if obj, ok := member.Object.(*target.Identifier); !ok || obj.Name != "SpecialForms" {
		t.Errorf("expected SpecialForms.atom call, got %#v", member.Object)
	}
	if prop, ok := member.Property.(*target.Identifier); !ok || prop.Name != "atom" {
		t.Errorf("expected property atom, got %#v", member.Property)
	}
}

func TestDispatchListWithoutTail(t *testing.T) {
	ctx := newTestContext()
	out, err := Dispatch(ctx, env.New("."), &ast.ListNode{
		Elements: []ast.Node{&ast.IntLiteral{Value: 1}, &ast.IntLiteral{Value: 2}},
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	arr, ok := out.(*target.ArrayExpression)
	if !ok || len(arr.Elements) != 2 {
		t.Fatalf("got %#v, want a 2-element ArrayExpression", out)
	}
}

func TestDispatchListWithTailUsesListPrepend(t *testing.T) {
	ctx := newTestContext()
	out, err := Dispatch(ctx, env.New("."), &ast.ListNode{
		Elements: []ast.Node{&ast.IntLiteral{Value: 1}},
		Tail:     &ast.Identifier{Name: "rest"},
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	call, ok := out.(*target.CallExpression)
	if !ok {
		t.Fatalf("got %#v, want CallExpression", out)
	}
	member := call.Callee.(*target.MemberExpression)
	if obj := member.Object.(*target.Identifier); obj.Name != "Kernel" {
		t.Errorf("expected Kernel.listPrepend, got %s.%v", obj.Name, member.Property)
	}
}

func TestDispatchIdentifierFiltersIllegalCharacters(t *testing.T) {
	ctx := newTestContext()
	out, err := Dispatch(ctx, env.New("."), &ast.Identifier{Name: "valid?"})
	if err != nil {
		t.Fatalf("identifier: %v", err)
	}
	id, ok := out.(*target.Identifier)
	if !ok || id.Name != "valid__qmark__" {
		t.Errorf("got %#v, want Identifier(valid__qmark__)", out)
	}
}

func TestDispatchReflectiveIsUnsupported(t *testing.T) {
	ctx := newTestContext()
	_, err := Dispatch(ctx, env.New("."), &ast.ReflectiveNode{Name: "quote_bang"})
	if err == nil {
		t.Fatal("expected an unsupported-form error for a reflective node")
	}
}

func TestTranslateAliasesResolvesLocalBinding(t *testing.T) {
	e := env.New(".").WithAlias("Zoo", "Animals.Zoo")
	out, err := translateAliases(e, &ast.AliasesNode{Segments: []string{"Zoo", "Lion"}})
	if err != nil {
		t.Fatalf("translateAliases: %v", err)
	}
	id, ok := out.(*target.Identifier)
	if !ok || id.Name != "Animals_Zoo_Lion" {
		t.Errorf("got %#v, want Animals_Zoo_Lion", out)
	}
}
