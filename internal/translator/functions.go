// Function translator (spec.md §4.4, ~10% of the core): groups
// successive def/defp clauses of the same (name, arity) into one
// clause table, grounded on how internal/pattern's ClauseTable models
// the runtime dispatcher this emits a call into.
package translator

import (
	"github.com/vela-lang/velac/internal/ast"
	"github.com/vela-lang/velac/internal/env"
	"github.com/vela-lang/velac/internal/target"
)

// functionGroup accumulates the clauses of one (name, arity) pair in
// the order they were encountered. Interleaving two groups (def f/1,
// def g/0, def f/1) is legal source and still collapses correctly,
// since grouping keys on name+arity rather than position.
type functionGroup struct {
	name    string
	arity   int
	private bool
	clauses []ast.Clause
}

// groupFunctionClauses scans a module body for consecutive or
// interleaved FunctionClauseNode entries and returns one group per
// distinct (name, arity), in first-seen order.
func groupFunctionClauses(statements []ast.Node) []*functionGroup {
	var order []*functionGroup
	index := map[string]*functionGroup{}
	for _, stmt := range statements {
		fc, ok := stmt.(*ast.FunctionClauseNode)
		if !ok {
			continue
		}
		arity := len(fc.Clause.Patterns)
		g, ok := index[groupKey(fc.Name, arity)]
		if !ok {
			g = &functionGroup{name: fc.Name, arity: arity, private: fc.Private}
			index[groupKey(fc.Name, arity)] = g
			order = append(order, g)
		}
		// A clause is public if any clause in the group is declared def.
		if !fc.Private {
			g.private = false
		}
		g.clauses = append(g.clauses, fc.Clause)
	}
	return order
}

func groupKey(name string, arity int) string {
	return name + "/" + itoaSmall(arity)
}

// translateFunctionGroup emits one clause-table declaration for a
// function group and records it into the owning module's Functions
// set (spec.md §4.5's "at most one clause table per (name, arity)").
func translateFunctionGroup(ctx *Context, e env.Env, dottedModule string, g *functionGroup) (target.Node, error) {
	table, err := buildClauseTable(ctx, e, g.clauses, "defmatch")
	if err != nil {
		return nil, err
	}
	ctx.Registry.RecordFunction(dottedModule, g.name, g.arity, false)
	return target.NewConstDeclaration(g.name, table), nil
}

// translateSingleFunctionClause handles a FunctionClauseNode reached
// directly through Dispatch rather than through the module translator
// (e.g. a def inside a quote/unquote escape or other nested position);
// it wraps the single clause as its own one-entry clause table rather
// than assuming sibling clauses are available to group with.
func translateSingleFunctionClause(ctx *Context, e env.Env, n *ast.FunctionClauseNode) (target.Node, error) {
	table, err := buildClauseTable(ctx, e, []ast.Clause{n.Clause}, "defmatch")
	if err != nil {
		return nil, err
	}
	return target.NewConstDeclaration(n.Name, table), nil
}
