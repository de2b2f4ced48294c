package translator

import (
	"testing"

	"github.com/vela-lang/velac/internal/ast"
	"github.com/vela-lang/velac/internal/env"
	"github.com/vela-lang/velac/internal/target"
)

func TestCaptureBareFunctionWrapsInArrow(t *testing.T) {
	ctx := newTestContext()
	out, err := translateCapture(ctx, env.New("."), &ast.CaptureNode{FunName: "double", Arity: 1})
	if err != nil {
		t.Fatalf("translateCapture: %v", err)
	}
	arrow, ok := out.(*target.ArrowFunction)
	if !ok || len(arrow.Params) != 1 {
		t.Fatalf("got %#v, want a 1-param ArrowFunction", out)
	}
	call, ok := arrow.Body.(*target.CallExpression)
	if !ok || len(call.Args) != 1 {
		t.Fatalf("body = %#v, want a 1-arg call", arrow.Body)
	}
}

func TestCaptureBareFunctionResolvesThroughImport(t *testing.T) {
	ctx := newTestContext()
	e := env.New(".").WithImport("feed", env.ImportedName{Module: "Zoo", Arity: 1})
	out, err := translateCapture(ctx, e, &ast.CaptureNode{FunName: "feed", Arity: 1})
	if err != nil {
		t.Fatalf("translateCapture: %v", err)
	}
	arrow := out.(*target.ArrowFunction)
	call := arrow.Body.(*target.CallExpression)
	member, ok := call.Callee.(*target.MemberExpression)
	if !ok {
		t.Fatalf("callee = %#v, want a qualified MemberExpression call", call.Callee)
	}
	obj := member.Object.(*target.Identifier)
	if obj.Name != "Zoo" {
		t.Errorf("expected the call to be qualified by Zoo, got %s", obj.Name)
	}
}

func TestCaptureModFunBuildsMemberCall(t *testing.T) {
	ctx := newTestContext()
	out, err := translateCapture(ctx, env.New("."), &ast.CaptureNode{
		ModFun: &ast.DotCallNode{Target: &ast.Identifier{Name: "Zoo"}, Fun: "feed"},
		Arity:  1,
	})
	if err != nil {
		t.Fatalf("translateCapture: %v", err)
	}
	arrow, ok := out.(*target.ArrowFunction)
	if !ok || len(arrow.Params) != 1 {
		t.Fatalf("got %#v, want a 1-param ArrowFunction", out)
	}
	call := arrow.Body.(*target.CallExpression)
	if _, ok := call.Callee.(*target.MemberExpression); !ok {
		t.Fatalf("expected the call to target a MemberExpression")
	}
}

func TestCaptureExprCountsHighestPlaceholder(t *testing.T) {
	ctx := newTestContext()
	expr := &ast.CallNode{
		Name: "add",
		Args: []ast.Node{&ast.Identifier{Name: "&1"}, &ast.Identifier{Name: "&2"}},
	}
	out, err := translateCapture(ctx, env.New("."), &ast.CaptureNode{Expr: expr})
	if err != nil {
		t.Fatalf("translateCapture: %v", err)
	}
	arrow, ok := out.(*target.ArrowFunction)
	if !ok || len(arrow.Params) != 2 {
		t.Fatalf("got %#v, want a 2-param ArrowFunction", out)
	}
	if arrow.Params[0] != placeholderName(1) || arrow.Params[1] != placeholderName(2) {
		t.Fatalf("params = %v, want %v", arrow.Params, []string{placeholderName(1), placeholderName(2)})
	}

	call, ok := arrow.Body.(*target.CallExpression)
	if !ok || len(call.Args) != 2 {
		t.Fatalf("body = %#v, want the 2-arg add(...) call", arrow.Body)
	}
	for i, want := range arrow.Params {
		id, ok := call.Args[i].(*target.Identifier)
		if !ok || id.Name != want {
			t.Errorf("arg %d = %#v, want identifier %q referencing param %d", i, call.Args[i], want, i)
		}
	}
}

func TestPlaceholderIndexRejectsNonPlaceholders(t *testing.T) {
	if _, ok := placeholderIndex("name"); ok {
		t.Errorf("a bare identifier must not be read as a placeholder")
	}
	if idx, ok := placeholderIndex("&3"); !ok || idx != 3 {
		t.Errorf("placeholderIndex(&3) = %d, %v; want 3, true", idx, ok)
	}
}

func TestItoaSmall(t *testing.T) {
	cases := map[int]string{0: "0", 5: "5", 9: "9", 10: "10", 42: "42", 123: "123"}
	for n, want := range cases {
		if got := itoaSmall(n); got != want {
			t.Errorf("itoaSmall(%d) = %q, want %q", n, got, want)
		}
	}
}
