package translator

import (
	"testing"

	"github.com/vela-lang/velac/internal/ast"
)

func clauseOfArity(n int) ast.Clause {
	patterns := make([]ast.Node, n)
	for i := range patterns {
		patterns[i] = &ast.Identifier{Name: "x"}
	}
	return ast.Clause{Patterns: patterns, Body: &ast.NilLiteral{}}
}

func TestGroupFunctionClausesCollapsesSameNameArity(t *testing.T) {
	stmts := []ast.Node{
		&ast.FunctionClauseNode{Name: "speak", Private: false, Clause: clauseOfArity(1)},
		&ast.FunctionClauseNode{Name: "speak", Private: false, Clause: clauseOfArity(1)},
	}
	groups := groupFunctionClauses(stmts)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if len(groups[0].clauses) != 2 {
		t.Errorf("expected 2 clauses in the group, got %d", len(groups[0].clauses))
	}
}

func TestGroupFunctionClausesHandlesInterleaving(t *testing.T) {
	stmts := []ast.Node{
		&ast.FunctionClauseNode{Name: "f", Clause: clauseOfArity(1)},
		&ast.FunctionClauseNode{Name: "g", Clause: clauseOfArity(0)},
		&ast.FunctionClauseNode{Name: "f", Clause: clauseOfArity(1)},
	}
	groups := groupFunctionClauses(stmts)
	if len(groups) != 2 {
		t.Fatalf("expected 2 distinct groups, got %d", len(groups))
	}
	if groups[0].name != "f" || len(groups[0].clauses) != 2 {
		t.Errorf("first group should be f with 2 clauses, got %+v", groups[0])
	}
	if groups[1].name != "g" || len(groups[1].clauses) != 1 {
		t.Errorf("second group should be g with 1 clause, got %+v", groups[1])
	}
}

func TestGroupFunctionClausesDistinguishesByArity(t *testing.T) {
	stmts := []ast.Node{
		&ast.FunctionClauseNode{Name: "f", Clause: clauseOfArity(0)},
		&ast.FunctionClauseNode{Name: "f", Clause: clauseOfArity(1)},
	}
	groups := groupFunctionClauses(stmts)
	if len(groups) != 2 {
		t.Fatalf("f/0 and f/1 must be distinct groups, got %d", len(groups))
	}
}

func TestGroupFunctionClausesIsPublicIfAnyClauseIsPublic(t *testing.T) {
	stmts := []ast.Node{
		&ast.FunctionClauseNode{Name: "f", Private: true, Clause: clauseOfArity(0)},
		&ast.FunctionClauseNode{Name: "f", Private: false, Clause: clauseOfArity(0)},
	}
	groups := groupFunctionClauses(stmts)
	if groups[0].private {
		t.Errorf("a group with at least one def clause must not be private")
	}
}

func TestGroupFunctionClausesAllPrivateStaysPrivate(t *testing.T) {
	stmts := []ast.Node{
		&ast.FunctionClauseNode{Name: "f", Private: true, Clause: clauseOfArity(0)},
	}
	groups := groupFunctionClauses(stmts)
	if !groups[0].private {
		t.Errorf("a group with only defp clauses should stay private")
	}
}

func TestGroupFunctionClausesIgnoresNonFunctionStatements(t *testing.T) {
	stmts := []ast.Node{
		&ast.AttributeNode{Name: "moduledoc"},
		&ast.FunctionClauseNode{Name: "f", Clause: clauseOfArity(0)},
	}
	groups := groupFunctionClauses(stmts)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
}
