package translator

import (
	"strings"

	"github.com/vela-lang/velac/internal/ast"
	"github.com/vela-lang/velac/internal/env"
	"github.com/vela-lang/velac/internal/target"
)

// translateAttribute lowers `@name` (a read) or `@name value` (a
// definition) to a module-level constant reference.
func translateAttribute(ctx *Context, e env.Env, n *ast.AttributeNode) (target.Node, error) {
	if n.Value == nil {
		return target.NewIdentifier("__attr_" + n.Name), nil
	}
	val, err := Dispatch(ctx, e, n.Value)
	if err != nil {
		return nil, err
	}
	// A definition in expression position evaluates to its value; the
	// module translator additionally hoists it as a declaration (see
	// modules.go).
	return val, nil
}

func translateMap(ctx *Context, e env.Env, n *ast.MapNode) (target.Node, error) {
	if n.UpdateBase != nil {
		base, err := Dispatch(ctx, e, n.UpdateBase)
		if err != nil {
			return nil, err
		}
		updates, err := translatePairs(ctx, e, n.Pairs)
		if err != nil {
			return nil, err
		}
		// Functional update: no aliasing of the input (spec.md §4.3).
		return specialFormsCall("mapUpdate", base, target.NewObjectExpression(updates...)), nil
	}
	props, err := translatePairs(ctx, e, n.Pairs)
	if err != nil {
		return nil, err
	}
	return specialFormsCall("map", target.NewObjectExpression(props...)), nil
}

func translatePairs(ctx *Context, e env.Env, pairs []ast.MapPair) ([]target.ObjectProperty, error) {
	out := make([]target.ObjectProperty, len(pairs))
	for i, p := range pairs {
		key, err := Dispatch(ctx, e, p.Key)
		if err != nil {
			return nil, err
		}
		val, err := Dispatch(ctx, e, p.Value)
		if err != nil {
			return nil, err
		}
		out[i] = target.ObjectProperty{Key: key, Value: val, Computed: true}
	}
	return out, nil
}

// translateStruct dispatches %M{fields} to module M's defstruct
// factory, per spec.md §4.3.
func translateStruct(ctx *Context, e env.Env, n *ast.StructNode) (target.Node, error) {
	modExpr, err := Dispatch(ctx, e, n.Module)
	if err != nil {
		return nil, err
	}
	props, err := translatePairs(ctx, e, n.Fields)
	if err != nil {
		return nil, err
	}
	factory := target.NewMemberExpression(modExpr, target.NewIdentifier("__struct__"), false)
	return target.NewCallExpression(factory, target.NewObjectExpression(props...)), nil
}

// translateAliases resolves __aliases__ nodes against the current
// environment's alias table (spec.md §4.5's "Alias semantics").
func translateAliases(e env.Env, n *ast.AliasesNode) (target.Node, error) {
	joined := strings.Join(n.Segments, ".")
	if len(n.Segments) > 0 {
		if canonical, ok := e.ResolveAlias(n.Segments[0]); ok {
			rest := n.Segments[1:]
			joined = canonical
			if len(rest) > 0 {
				joined += "." + strings.Join(rest, ".")
			}
		}
	}
	return target.NewIdentifier(moduleIdentifier(joined)), nil
}

func translateBlock(ctx *Context, e env.Env, n *ast.BlockNode) (target.Node, error) {
	stmts := make([]target.Node, len(n.Statements))
	for i, s := range n.Statements {
		t, err := Dispatch(ctx, e, s)
		if err != nil {
			return nil, err
		}
		stmts[i] = t
	}
	return target.NewBlockStatement(stmts...), nil
}

func translateAssign(ctx *Context, e env.Env, n *ast.AssignNode) (target.Node, error) {
	// Lower the right side first per spec.md §4.3, then treat the left
	// side as a pattern that binds slots and evaluates to the value of
	// right.
	right, err := Dispatch(ctx, e, n.Right)
	if err != nil {
		return nil, err
	}
	desc, slots, err := lowerPattern(n.Left)
	if err != nil {
		return nil, err
	}
	return patternsCall("matchAssign", descriptorToTarget(desc), right, target.NewArrayExpression(identifierList(slots)...)), nil
}

func identifierList(names []string) []target.Node {
	out := make([]target.Node, len(names))
	for i, n := range names {
		out[i] = target.NewLiteral(n)
	}
	return out
}

// moduleIdentifier turns a dotted module name into a target
// identifier-safe token (dots aren't legal in bare identifiers).
func moduleIdentifier(dotted string) string {
	return strings.ReplaceAll(dotted, ".", "_")
}
