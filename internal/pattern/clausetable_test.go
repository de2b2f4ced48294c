package pattern

import (
	"testing"

	"github.com/vela-lang/velac/internal/runtime"
)

func TestClauseTableDispatchesFirstMatch(t *testing.T) {
	ct := &ClauseTable{Clauses: []Clause{
		{
			Patterns: []Descriptor{Literal{Value: runtime.Atom("ok")}},
			Body:     func(Bindings) runtime.Value { return runtime.Number(1) },
		},
		{
			Patterns: []Descriptor{Wildcard{}},
			Body:     func(Bindings) runtime.Value { return runtime.Number(2) },
		},
	}}
	got, err := ct.Dispatch([]runtime.Value{runtime.Atom("ok")})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if got != runtime.Number(1) {
		t.Errorf("Dispatch(:ok) = %v, want 1", got)
	}

	got, err = ct.Dispatch([]runtime.Value{runtime.Atom("error")})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if got != runtime.Number(2) {
		t.Errorf("Dispatch(:error) = %v, want 2 (fallthrough wildcard)", got)
	}
}

func TestClauseTableSkipsClauseWhenGuardFails(t *testing.T) {
	ct := &ClauseTable{Clauses: []Clause{
		{
			Patterns: []Descriptor{Bind{Name: "n"}},
			Guard:    func(b Bindings) bool { return b["n"] == runtime.Number(0) },
			Body:     func(Bindings) runtime.Value { return runtime.Atom("zero") },
		},
		{
			Patterns: []Descriptor{Bind{Name: "n"}},
			Body:     func(Bindings) runtime.Value { return runtime.Atom("nonzero") },
		},
	}}
	got, err := ct.Dispatch([]runtime.Value{runtime.Number(5)})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if got != runtime.Atom("nonzero") {
		t.Errorf("Dispatch(5) = %v, want :nonzero", got)
	}
}

func TestClauseTableSkipsClauseWithWrongArity(t *testing.T) {
	ct := &ClauseTable{Clauses: []Clause{
		{
			Patterns: []Descriptor{Wildcard{}, Wildcard{}},
			Body:     func(Bindings) runtime.Value { return runtime.Atom("two") },
		},
		{
			Patterns: []Descriptor{Wildcard{}},
			Body:     func(Bindings) runtime.Value { return runtime.Atom("one") },
		},
	}}
	got, err := ct.Dispatch([]runtime.Value{runtime.Number(1)})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if got != runtime.Atom("one") {
		t.Errorf("Dispatch(1 arg) = %v, want :one", got)
	}
}

func TestClauseTableReturnsErrNoClauseMatchesWhenExhausted(t *testing.T) {
	ct := &ClauseTable{Clauses: []Clause{
		{Patterns: []Descriptor{Literal{Value: runtime.Atom("ok")}}, Body: func(Bindings) runtime.Value { return nil }},
	}}
	_, err := ct.Dispatch([]runtime.Value{runtime.Atom("error")})
	if _, ok := err.(ErrNoClauseMatches); !ok {
		t.Fatalf("got error %v, want ErrNoClauseMatches", err)
	}
}
