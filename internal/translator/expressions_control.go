package translator

import (
	"github.com/vela-lang/velac/internal/ast"
	"github.com/vela-lang/velac/internal/env"
	"github.com/vela-lang/velac/internal/target"
)

// translateCase emits a make_case expression keyed on the scrutinee,
// the expression-position equivalent of a clause table (spec.md §4.2).
func translateCase(ctx *Context, e env.Env, n *ast.CaseNode) (target.Node, error) {
	subject, err := Dispatch(ctx, e, n.Subject)
	if err != nil {
		return nil, err
	}
	table, err := buildClauseTable(ctx, e, n.Clauses, "make_case")
	if err != nil {
		return nil, err
	}
	return target.NewCallExpression(table, subject), nil
}

// translateCond lowers a sequence of boolean tests with no pattern or
// guard, evaluated top-to-bottom (spec.md §4.1's dispatch list).
func translateCond(ctx *Context, e env.Env, n *ast.CondNode) (target.Node, error) {
	var result target.Node = kernelCall("condFallthrough")
	for i := len(n.Clauses) - 1; i >= 0; i-- {
		test, err := Dispatch(ctx, e, n.Clauses[i].Test)
		if err != nil {
			return nil, err
		}
		body, err := Dispatch(ctx, e, n.Clauses[i].Body)
		if err != nil {
			return nil, err
		}
		result = target.NewConditionalExpression(test, body, result)
	}
	return result, nil
}

// translateFor lowers a for-comprehension to a fold over the
// generator product, with filters as intermediate predicates
// (spec.md §4.3).
func translateFor(ctx *Context, e env.Env, n *ast.ForNode) (target.Node, error) {
	generators := make([]target.Node, len(n.Generators))
	for i, g := range n.Generators {
		desc, slots, err := lowerPattern(g.Pattern)
		if err != nil {
			return nil, err
		}
		enumerable, err := Dispatch(ctx, e, g.Enumerable)
		if err != nil {
			return nil, err
		}
		generators[i] = target.NewObjectExpression(
			propNode("pattern", descriptorToTarget(desc)),
			propNode("enumerable", enumerable),
			propNode("slots", target.NewArrayExpression(identifierList(slots)...)),
		)
	}
	filters := make([]target.Node, len(n.Filters))
	for i, f := range n.Filters {
		t, err := Dispatch(ctx, e, f)
		if err != nil {
			return nil, err
		}
		filters[i] = t
	}
	body, err := Dispatch(ctx, e, n.Body)
	if err != nil {
		return nil, err
	}
	into := target.Node(target.NewLiteral(nil))
	if n.Into != nil {
		into, err = Dispatch(ctx, e, n.Into)
		if err != nil {
			return nil, err
		}
	}
	return kernelCall("forComprehension",
		target.NewArrayExpression(generators...),
		target.NewArrayExpression(filters...),
		target.NewArrowFunction([]string{"__for_binding__"}, body),
		into,
	), nil
}

// translateTry lowers each of do/rescue/catch/after/else into
// distinct handler thunks (spec.md §4.3).
func translateTry(ctx *Context, e env.Env, n *ast.TryNode) (target.Node, error) {
	doExpr, err := Dispatch(ctx, e, n.Do)
	if err != nil {
		return nil, err
	}
	rescue, err := clausesOrNull(ctx, e, n.Rescue, "make_case")
	if err != nil {
		return nil, err
	}
	catch, err := clausesOrNull(ctx, e, n.Catch)
	if err != nil {
		return nil, err
	}
	elseC, err := clausesOrNull(ctx, e, n.Else, "make_case")
	if err != nil {
		return nil, err
	}
	var after target.Node = target.NewLiteral(nil)
	if n.After != nil {
		a, err := Dispatch(ctx, e, n.After)
		if err != nil {
			return nil, err
		}
		after = target.NewArrowFunction(nil, a)
	}
	return kernelCall("tryCatch",
		target.NewArrowFunction(nil, doExpr),
		rescue, catch, after, elseC,
	), nil
}

func clausesOrNull(ctx *Context, e env.Env, clauses []ast.Clause, runtimeFn ...string) (target.Node, error) {
	if len(clauses) == 0 {
		return target.NewLiteral(nil), nil
	}
	fn := "make_case"
	if len(runtimeFn) > 0 {
		fn = runtimeFn[0]
	}
	return buildClauseTable(ctx, e, clauses, fn)
}

// translateReceive compiles to a call to the runtime's mailbox waiter
// (spec.md §4.3).
func translateReceive(ctx *Context, e env.Env, n *ast.ReceiveNode) (target.Node, error) {
	table, err := buildClauseTable(ctx, e, n.Clauses, "defmatch")
	if err != nil {
		return nil, err
	}
	var timeout target.Node = target.NewLiteral(nil)
	if n.Timeout != nil {
		timeout, err = Dispatch(ctx, e, n.Timeout)
		if err != nil {
			return nil, err
		}
	}
	var after target.Node = target.NewLiteral(nil)
	if n.After != nil {
		a, err := Dispatch(ctx, e, n.After)
		if err != nil {
			return nil, err
		}
		after = target.NewArrowFunction(nil, a)
	}
	return kernelCall("receive", table, timeout, after), nil
}

// translateFn wraps one or more clauses as an anonymous function of
// the clause table's arity.
func translateFn(ctx *Context, e env.Env, n *ast.FnNode) (target.Node, error) {
	table, err := buildClauseTable(ctx, e, n.Clauses, "defmatch")
	if err != nil {
		return nil, err
	}
	arity := 0
	if len(n.Clauses) > 0 {
		arity = len(n.Clauses[0].Patterns)
	}
	params := make([]string, arity)
	args := make([]target.Node, arity)
	for i := range params {
		params[i] = ctx.Gensym("arg")
		args[i] = target.NewIdentifier(params[i])
	}
	return target.NewArrowFunction(params, target.NewCallExpression(table, args...)), nil
}
