package translator

import (
	"github.com/vela-lang/velac/internal/ast"
	"github.com/vela-lang/velac/internal/env"
	"github.com/vela-lang/velac/internal/target"
)

// translateQuote recursively reifies its body into a data-structure
// representation that reconstructs the AST at runtime; unquote
// escapes re-enter ordinary translation (spec.md §4.3).
func translateQuote(ctx *Context, e env.Env, n *ast.QuoteNode) (target.Node, error) {
	quotedEnv := e.WithQuote(true)
	return quoteNode(ctx, quotedEnv, n.Body)
}

func quoteNode(ctx *Context, e env.Env, node ast.Node) (target.Node, error) {
	if u, ok := node.(*ast.UnquoteNode); ok {
		return Dispatch(ctx, e.WithQuote(false), u.Expr)
	}

	switch n := node.(type) {
	case *ast.Identifier:
		return specialFormsCall("quotedIdentifier", target.NewLiteral(n.Name)), nil
	case *ast.AtomLiteral:
		return specialFormsCall("quotedAtom", target.NewLiteral(n.Name)), nil
	case *ast.IntLiteral, *ast.FloatLiteral, *ast.StringLiteral, *ast.BoolLiteral, *ast.NilLiteral:
		return translatePrimitive(n)
	case *ast.CallNode:
		args := make([]target.Node, len(n.Args))
		for i, a := range n.Args {
			t, err := quoteNode(ctx, e, a)
			if err != nil {
				return nil, err
			}
			args[i] = t
		}
		return specialFormsCall("quotedCall", target.NewLiteral(n.Name), target.NewArrayExpression(args...)), nil
	case *ast.TupleNode:
		elems := make([]target.Node, len(n.Elements))
		for i, el := range n.Elements {
			t, err := quoteNode(ctx, e, el)
			if err != nil {
				return nil, err
			}
			elems[i] = t
		}
		return specialFormsCall("quotedTuple", target.NewArrayExpression(elems...)), nil
	case *ast.ListNode:
		elems := make([]target.Node, len(n.Elements))
		for i, el := range n.Elements {
			t, err := quoteNode(ctx, e, el)
			if err != nil {
				return nil, err
			}
			elems[i] = t
		}
		return specialFormsCall("quotedList", target.NewArrayExpression(elems...)), nil
	case *ast.BlockNode:
		stmts := make([]target.Node, len(n.Statements))
		for i, s := range n.Statements {
			t, err := quoteNode(ctx, e, s)
			if err != nil {
				return nil, err
			}
			stmts[i] = t
		}
		return specialFormsCall("quotedBlock", target.NewArrayExpression(stmts...)), nil
	default:
		// Fall back to ordinary translation for shapes that need no
		// special reification (e.g. already-static sub-expressions).
		return Dispatch(ctx, e, node)
	}
}
