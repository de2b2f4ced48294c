package translator

import (
	"github.com/vela-lang/velac/internal/diagnostics"
	"github.com/vela-lang/velac/internal/registry"
	"github.com/vela-lang/velac/internal/target"
)

// PatchUnresolvedImports is the second half of the two-pass import
// model spec.md §4.5 describes. translateImportLike binds an import's
// functions into the Env eagerly when the target module is already
// registered at translation time, but a forward, cross-file import
// (module B imports module A, A is compiled in a different file and
// scratch registry) can't be resolved until every file has been merged
// and ProcessImports has filled in ModuleRecord.ResolvedImports. Until
// then, translateCall emits those call sites as an unqualified local
// call (spec.md §7's Resolution miss) and records them in
// ModuleRecord.PendingCalls. This revisits exactly those recorded
// sites now that the owning module is known, rewriting each into a
// qualified call; a site that still doesn't resolve is a permanent
// miss and is returned as an I001 diagnostic for the caller to
// surface, rather than silently left as-is with no record anywhere.
func PatchUnresolvedImports(reg *registry.Registry) []*diagnostics.DiagnosticError {
	var diags []*diagnostics.DiagnosticError
	for _, m := range reg.AllModules() {
		for _, pc := range m.PendingCalls {
			owner, ok := m.ResolvedImports[registry.NameArity{Name: pc.Name, Arity: pc.Arity}]
			if !ok {
				diags = append(diags, diagnostics.ResolutionMiss(pc.Meta, pc.Name))
				continue
			}
			pc.Call.Callee = target.NewMemberExpression(target.NewIdentifier(moduleIdentifier(owner)), target.NewIdentifier(pc.Name), false)
		}
	}
	return diags
}
