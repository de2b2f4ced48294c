package macro

import (
	"reflect"
	"testing"

	"github.com/vela-lang/velac/internal/ast"
	"github.com/vela-lang/velac/internal/env"
)

func nodesEqual(a, b ast.Node) bool {
	return reflect.DeepEqual(a, b)
}

func TestIdentityExpanderReturnsNodeUnchanged(t *testing.T) {
	n := &ast.IntLiteral{Value: 1}
	got, err := Identity.Expand(n, env.New("."))
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if got != n {
		t.Errorf("Identity.Expand should return the same node, got %#v", got)
	}
}

func TestToFixedPointReportsUnchangedWhenStructurallyEqual(t *testing.T) {
	n := &ast.IntLiteral{Value: 1}
	got, changed, err := ToFixedPoint(Identity, n, env.New("."), nodesEqual)
	if err != nil {
		t.Fatalf("ToFixedPoint: %v", err)
	}
	if changed {
		t.Error("expected changed=false for the identity expander")
	}
	if got != n {
		t.Errorf("got %#v, want the original node", got)
	}
}

func TestToFixedPointReportsChangedWhenExpansionDiffers(t *testing.T) {
	replaced := &ast.IntLiteral{Value: 2}
	expander := ExpanderFunc(func(ast.Node, env.Env) (ast.Node, error) { return replaced, nil })
	n := &ast.IntLiteral{Value: 1}
	got, changed, err := ToFixedPoint(expander, n, env.New("."), nodesEqual)
	if err != nil {
		t.Fatalf("ToFixedPoint: %v", err)
	}
	if !changed {
		t.Error("expected changed=true when expansion alters the node")
	}
	if got != replaced {
		t.Errorf("got %#v, want the expanded node", got)
	}
}

func TestToFixedPointPropagatesExpanderError(t *testing.T) {
	boom := ExpanderFunc(func(ast.Node, env.Env) (ast.Node, error) {
		return nil, errBoom
	})
	_, _, err := ToFixedPoint(boom, &ast.IntLiteral{Value: 1}, env.New("."), nodesEqual)
	if err != errBoom {
		t.Errorf("got error %v, want errBoom", err)
	}
}

var errBoom = &testError{"boom"}

type testError struct{ msg string }

func (e *testError) Error() string { return e.msg }
