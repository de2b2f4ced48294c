package pattern

import "github.com/vela-lang/velac/internal/runtime"

// Guard is a side-effect-free thunk over bound slots.
type Guard func(Bindings) bool

// Clause is one row of a clause table: spec.md GLOSSARY's "patterns,
// guards, and bodies" triple, with Body represented on the host side
// as a Go thunk (the target emission's equivalent is a lambda in the
// emitted code — see internal/translator/functions.go).
type Clause struct {
	Patterns []Descriptor
	Guard    Guard // nil means "always true"
	Body     func(Bindings) runtime.Value
}

// ClauseTable dispatches to the first clause whose patterns all match
// and whose guard (if any) returns true, per spec.md §4.2's evaluation
// order: "top-to-bottom; the first descriptor whose structural match
// succeeds AND whose guard returns true runs."
type ClauseTable struct {
	Clauses []Clause
}

// ErrNoClauseMatches is returned by Dispatch when no clause matches,
// mirroring spec.md §4.2's "Absence of match raises a runtime 'no
// clause matches' error."
type ErrNoClauseMatches struct{}

func (ErrNoClauseMatches) Error() string { return "no clause matches" }

// Dispatch runs the first matching clause against args.
func (ct *ClauseTable) Dispatch(args []runtime.Value) (runtime.Value, error) {
	for _, clause := range ct.Clauses {
		if len(clause.Patterns) != len(args) {
			continue
		}
		bindings := Bindings{}
		matched := true
		for i, pat := range clause.Patterns {
			if !Match(pat, args[i], bindings) {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}
		if clause.Guard != nil && !clause.Guard(bindings) {
			continue
		}
		return clause.Body(bindings), nil
	}
	return nil, ErrNoClauseMatches{}
}
