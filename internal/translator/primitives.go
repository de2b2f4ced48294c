// Primitive builder (spec.md §2, ~5% of the core): literals, atoms,
// identifiers, tuples, lists.
package translator

import (
	"github.com/vela-lang/velac/internal/ast"
	"github.com/vela-lang/velac/internal/config"
	"github.com/vela-lang/velac/internal/diagnostics"
	"github.com/vela-lang/velac/internal/env"
	"github.com/vela-lang/velac/internal/target"
)

func translatePrimitive(node ast.Node) (target.Node, error) {
	switch n := node.(type) {
	case *ast.IntLiteral:
		return target.NewLiteral(n.Value), nil
	case *ast.FloatLiteral:
		return target.NewLiteral(n.Value), nil
	case *ast.StringLiteral:
		return target.NewLiteral(n.Value), nil
	case *ast.BoolLiteral:
		return target.NewLiteral(n.Value), nil
	case *ast.NilLiteral:
		return target.NewLiteral(nil), nil
	default:
		return nil, diagnostics.ShapeMismatch(node.GetMeta(), "primitive")
	}
}

// translateAtom implements the invariant from spec.md §3: "Every atom
// literal in source maps to a unique, deterministic target expression
// computed as SpecialForms.atom(<escaped-name>)."
func translateAtom(n *ast.AtomLiteral) target.Node {
	return specialFormsCall("atom", target.NewLiteral(n.Name))
}

func translateList(ctx *Context, e env.Env, n *ast.ListNode) (target.Node, error) {
	elems := make([]target.Node, len(n.Elements))
	for i, el := range n.Elements {
		t, err := Dispatch(ctx, e, el)
		if err != nil {
			return nil, err
		}
		elems[i] = t
	}
	if n.Tail == nil {
		return target.NewArrayExpression(elems...), nil
	}
	tail, err := Dispatch(ctx, e, n.Tail)
	if err != nil {
		return nil, err
	}
	return kernelCall("listPrepend", target.NewArrayExpression(elems...), tail), nil
}

func translateTuple(ctx *Context, e env.Env, n *ast.TupleNode) (target.Node, error) {
	elems := make([]target.Node, len(n.Elements))
	for i, el := range n.Elements {
		t, err := Dispatch(ctx, e, el)
		if err != nil {
			return nil, err
		}
		elems[i] = t
	}
	return specialFormsCall("tuple", elems...), nil
}

func translateCons(ctx *Context, e env.Env, n *ast.ConsNode) (target.Node, error) {
	head, err := Dispatch(ctx, e, n.Head)
	if err != nil {
		return nil, err
	}
	tail, err := Dispatch(ctx, e, n.Tail)
	if err != nil {
		return nil, err
	}
	return kernelCall("listPrepend", target.NewArrayExpression(head), tail), nil
}

// translateIdentifier implements dispatch rule 8: a bare identifier
// becomes a target identifier with its name filtered.
func translateIdentifier(e env.Env, n *ast.Identifier) (target.Node, error) {
	filtered, ok := config.FilterIdentifier(n.Name)
	if !ok {
		return nil, diagnostics.ShapeMismatch(n.Meta, "identifier")
	}
	return target.NewIdentifier(filtered), nil
}

// specialFormsCall builds a call into the SpecialForms runtime
// namespace (spec.md §6).
func specialFormsCall(fn string, args ...target.Node) target.Node {
	return target.NewCallExpression(
		target.NewMemberExpression(target.NewIdentifier("SpecialForms"), target.NewIdentifier(fn), false),
		args...,
	)
}

func kernelCall(fn string, args ...target.Node) target.Node {
	return target.NewCallExpression(
		target.NewMemberExpression(target.NewIdentifier("Kernel"), target.NewIdentifier(fn), false),
		args...,
	)
}

func patternsCall(fn string, args ...target.Node) target.Node {
	return target.NewCallExpression(
		target.NewMemberExpression(target.NewIdentifier("Patterns"), target.NewIdentifier(fn), false),
		args...,
	)
}
