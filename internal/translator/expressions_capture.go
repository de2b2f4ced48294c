package translator

import (
	"github.com/vela-lang/velac/internal/ast"
	"github.com/vela-lang/velac/internal/env"
	"github.com/vela-lang/velac/internal/target"
)

// translateCapture implements &f/n, &Mod.f/n, and &expr, introducing
// fresh placeholder parameters for &1, &2, ... occurrences and
// wrapping as an anonymous function of the highest placeholder arity
// (spec.md §4.3).
func translateCapture(ctx *Context, e env.Env, n *ast.CaptureNode) (target.Node, error) {
	switch {
	case n.FunName != "":
		return captureBareFunction(e, n.FunName, n.Arity), nil

	case n.ModFun != nil:
		target_, err := Dispatch(ctx, e, n.ModFun.Target)
		if err != nil {
			return nil, err
		}
		callee := target.NewMemberExpression(target_, target.NewIdentifier(n.ModFun.Fun), false)
		params := make([]string, n.Arity)
		args := make([]target.Node, n.Arity)
		for i := range params {
			params[i] = ctx.Gensym("cap")
			args[i] = target.NewIdentifier(params[i])
		}
		return target.NewArrowFunction(params, target.NewCallExpression(callee, args...)), nil

	case n.Expr != nil:
		maxPlaceholder, rewritten := rewritePlaceholders(n.Expr)
		body, err := Dispatch(ctx, e, rewritten)
		if err != nil {
			return nil, err
		}
		params := make([]string, maxPlaceholder)
		for i := range params {
			params[i] = placeholderName(i + 1)
		}
		return target.NewArrowFunction(params, body), nil

	default:
		return target.NewLiteral(nil), nil
	}
}

func captureBareFunction(e env.Env, name string, arity int) target.Node {
	params := make([]string, arity)
	args := make([]target.Node, arity)
	for i := range params {
		params[i] = placeholderName(i + 1)
		args[i] = target.NewIdentifier(params[i])
	}
	if imp, ok := e.ResolveImport(name, arity); ok {
		callee := target.NewMemberExpression(target.NewIdentifier(moduleIdentifier(imp.Module)), target.NewIdentifier(name), false)
		return target.NewArrowFunction(params, target.NewCallExpression(callee, args...))
	}
	return target.NewArrowFunction(params, target.NewCallExpression(target.NewIdentifier(name), args...))
}

func placeholderName(i int) string {
	return "__" + itoaSmall(i)
}

// rewritePlaceholders finds the highest &N placeholder in expr and
// returns a copy of expr with every &N identifier rewritten to the
// same placeholderName(N) the wrapping arrow function's parameters are
// named with, so the emitted body actually references its own params
// instead of falling through the generic identifier filter (which maps
// "&" to "__amp__" and leaves the digit, producing an unbound
// "__amp__1" that never matches a "__1" parameter).
func rewritePlaceholders(expr ast.Node) (int, ast.Node) {
	max := 0
	var walk func(ast.Node) ast.Node
	walk = func(n ast.Node) ast.Node {
		switch v := n.(type) {
		case *ast.Identifier:
			idx, ok := placeholderIndex(v.Name)
			if !ok {
				return v
			}
			if idx > max {
				max = idx
			}
			return &ast.Identifier{Meta: v.Meta, Name: placeholderName(idx)}
		case *ast.CallNode:
			args := make([]ast.Node, len(v.Args))
			for i, a := range v.Args {
				args[i] = walk(a)
			}
			return &ast.CallNode{Meta: v.Meta, Name: v.Name, Args: args}
		case *ast.TupleNode:
			elems := make([]ast.Node, len(v.Elements))
			for i, a := range v.Elements {
				elems[i] = walk(a)
			}
			return &ast.TupleNode{Meta: v.Meta, Elements: elems}
		case *ast.ListNode:
			elems := make([]ast.Node, len(v.Elements))
			for i, a := range v.Elements {
				elems[i] = walk(a)
			}
			var tail ast.Node
			if v.Tail != nil {
				tail = walk(v.Tail)
			}
			return &ast.ListNode{Meta: v.Meta, Elements: elems, Tail: tail}
		case *ast.DotCallNode:
			args := make([]ast.Node, len(v.Args))
			for i, a := range v.Args {
				args[i] = walk(a)
			}
			return &ast.DotCallNode{Meta: v.Meta, Target: v.Target, Fun: v.Fun, Args: args}
		default:
			return n
		}
	}
	return max, walk(expr)
}

func placeholderIndex(name string) (int, bool) {
	if len(name) < 2 || name[0] != '&' {
		return 0, false
	}
	n := 0
	for _, r := range name[1:] {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}

func itoaSmall(n int) string {
	if n < 10 {
		return string([]byte{byte('0' + n)})
	}
	digits := []byte{}
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
