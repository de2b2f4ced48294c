package translator

import (
	"github.com/vela-lang/velac/internal/ast"
	"github.com/vela-lang/velac/internal/env"
	"github.com/vela-lang/velac/internal/target"
)

// translateDefstruct lowers a module's struct shape declaration to a
// factory function, `__struct__`, consulted by translateStruct
// (spec.md §4.5 step 5's "struct factory if defstruct was present").
// In expression position it evaluates to the factory itself, and the
// module translator additionally hoists it as a top-level declaration.
func translateDefstruct(ctx *Context, e env.Env, n *ast.DefstructNode) (target.Node, error) {
	return structFactory(ctx, e, n.Fields, n.Defaults)
}

// translateDefexception behaves like translateDefstruct but the
// module translator additionally tags the owning module as raiseable
// (spec.md §4.5).
func translateDefexception(ctx *Context, e env.Env, n *ast.DefexceptionNode) (target.Node, error) {
	return structFactory(ctx, e, n.Fields, n.Defaults)
}

// structFactory builds an arrow function of one parameter, __fields__,
// a partial field map; the runtime fills in whatever the caller
// omitted from defaultsObj.
func structFactory(ctx *Context, e env.Env, fields []string, defaults map[string]ast.Node) (target.Node, error) {
	defaultsObj := make([]target.ObjectProperty, 0, len(fields))
	for _, f := range fields {
		var def target.Node = target.NewLiteral(nil)
		if expr, ok := defaults[f]; ok {
			t, err := Dispatch(ctx, e, expr)
			if err != nil {
				return nil, err
			}
			def = t
		}
		defaultsObj = append(defaultsObj, propNode(f, def))
	}
	body := specialFormsCall("structFrom",
		target.NewIdentifier("__MODULE__"),
		target.NewObjectExpression(defaultsObj...),
		target.NewIdentifier("__fields__"),
	)
	return target.NewArrowFunction([]string{"__fields__"}, body), nil
}
