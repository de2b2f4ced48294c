// Package macro isolates the translator from the macro-expansion
// collaborator, per spec.md §1/§9: expansion is "assumed available as
// a black-box primitive expand(ast, env) → ast with a fixed point,"
// and the design notes call for treating it "as an injected pure
// function the core consults," which "enables testing with a stub
// expander."
package macro

import (
	"github.com/vela-lang/velac/internal/ast"
	"github.com/vela-lang/velac/internal/env"
)

// Expander expands one macro-call node. It returns the same node
// (by structural equality, checked by the caller) when the call names
// no macro, which the dispatcher treats as "not a macro, translate
// literally" per spec.md §4.1.
type Expander interface {
	Expand(node ast.Node, e env.Env) (ast.Node, error)
}

// ExpanderFunc adapts a function to the Expander interface.
type ExpanderFunc func(ast.Node, env.Env) (ast.Node, error)

func (f ExpanderFunc) Expand(node ast.Node, e env.Env) (ast.Node, error) { return f(node, e) }

// Identity is the stub expander used by tests that don't exercise
// macros: every node expands to itself.
var Identity Expander = ExpanderFunc(func(n ast.Node, _ env.Env) (ast.Node, error) { return n, nil })

// ToFixedPoint calls expander at most once per dispatcher visit on a
// given node, per spec.md §4.1's "Macro-expansion fixed-point": "Any
// dispatch that may defer to expansion must call it at most once per
// node on a given path and must compare the returned AST by
// structural equality." It returns the expanded node and whether
// expansion changed it.
func ToFixedPoint(expander Expander, node ast.Node, e env.Env, equal func(a, b ast.Node) bool) (ast.Node, bool, error) {
	expanded, err := expander.Expand(node, e)
	if err != nil {
		return nil, false, err
	}
	if equal(node, expanded) {
		return node, false, nil
	}
	return expanded, true, nil
}
