package registry

import (
	"strings"

	"github.com/vela-lang/velac/internal/ast"
	"github.com/vela-lang/velac/internal/diagnostics"
	"github.com/vela-lang/velac/internal/target"
)

// AddModule registers a new module record, or returns a NameCollision
// diagnostic if one with the same dotted name was already added from
// a different source file.
func (r *Registry) AddModule(name []string, source string, meta ast.Meta) (*ModuleRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assertLive()

	dotted := strings.Join(name, ".")
	if existing, ok := r.modules[dotted]; ok {
		if existing.Source != source {
			return nil, diagnostics.NameCollision(meta, dotted, existing.Source, source)
		}
		return existing, nil
	}
	rec := newModuleRecord(name, source)
	r.modules[dotted] = rec
	return rec, nil
}

// DeleteModule removes a module record, used when a compilation unit
// is retracted (e.g. recompiling a changed file).
func (r *Registry) DeleteModule(dottedName string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assertLive()
	delete(r.modules, dottedName)
}

// ModuleListed reports whether a module with this dotted name is
// known to the registry.
func (r *Registry) ModuleListed(dottedName string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.modules[dottedName]
	return ok
}

// GetModule looks up a module record by dotted name.
func (r *Registry) GetModule(dottedName string) (*ModuleRecord, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.modules[dottedName]
	return m, ok
}

// AllModules returns every registered module, for the emitter and for
// ProcessImports. Order is the iteration order of the underlying map;
// callers that need stable output order should sort by DottedName.
func (r *Registry) AllModules() []*ModuleRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*ModuleRecord, 0, len(r.modules))
	for _, m := range r.modules {
		out = append(out, m)
	}
	return out
}

// MarkRaiseable tags a module as declared via defexception.
func (r *Registry) MarkRaiseable(dottedName string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.modules[dottedName]; ok {
		m.Raiseable = true
	}
}

// RecordFunction adds (name, arity) to a module's public or macro set,
// called once per grouped clause table by the function translator.
func (r *Registry) RecordFunction(dottedName string, name string, arity int, isMacro bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.modules[dottedName]
	if !ok {
		return
	}
	na := NameArity{Name: name, Arity: arity}
	if isMacro {
		m.Macros[na] = true
	} else {
		m.Functions[na] = true
	}
}

// RecordPendingCall appends a resolution-miss call site to a module's
// worklist, so PatchUnresolvedImports can find it again once
// ProcessImports has run, without rescanning the emitted AST.
func (r *Registry) RecordPendingCall(dottedName, name string, arity int, call *target.CallExpression, meta ast.Meta) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.modules[dottedName]
	if !ok {
		return
	}
	m.PendingCalls = append(m.PendingCalls, PendingCall{Name: name, Arity: arity, Call: call, Meta: meta})
}
