package registry

// ProcessImports performs the two-pass resolution spec.md §4.5
// describes: now that every module in this compilation has been
// translated once and has its full Functions/Macros set, each
// module's recorded `import` entries are materialized into concrete
// (name, arity) -> owning-module bindings.
//
// An import of a module not present in this Registry (external to the
// compilation, or simply not yet known) contributes nothing: its bare
// names stay unresolved and fall through to spec.md §7's "Resolution
// miss" rule at call-lowering time, preserving late-binding behavior.
func (r *Registry) ProcessImports() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assertLive()

	for _, m := range r.modules {
		for _, entry := range m.Imports {
			if entry.Kind != "import" && entry.Kind != "require" {
				continue
			}
			owner, ok := r.modules[entry.ModuleName]
			if !ok {
				continue
			}
			for na := range CandidateNames(owner, entry) {
				if _, already := m.ResolvedImports[na]; already {
					continue // first matching import wins
				}
				m.ResolvedImports[na] = entry.ModuleName
			}
		}
	}
}

// CandidateNames computes the (name, arity) set an import entry brings
// into scope from target, honoring Only/Except/OnlyKind. Exported so
// the translator can resolve an import eagerly, during translation of
// the importing module's own body, when the target module has already
// been registered (e.g. it precedes the importer in the same file or
// scratch registry) instead of waiting for this two-pass resolution.
func CandidateNames(target *ModuleRecord, entry ImportEntry) map[NameArity]bool {
	spec := entry.Spec
	out := map[NameArity]bool{}

	wantFunctions := spec.OnlyKind != "macros"
	wantMacros := spec.OnlyKind != "functions"
	// `require` only makes macros available by bare name.
	if entry.Kind == "require" {
		wantFunctions, wantMacros = false, true
	}

	if wantFunctions {
		for na := range target.Functions {
			out[na] = true
		}
	}
	if wantMacros {
		for na := range target.Macros {
			out[na] = true
		}
	}

	if len(spec.Only) > 0 {
		allowed := map[NameArity]bool{}
		for _, na := range spec.Only {
			allowed[NameArity{na.Name, na.Arity}] = true
		}
		for na := range out {
			if !allowed[na] {
				delete(out, na)
			}
		}
	}
	for _, na := range spec.Except {
		delete(out, NameArity{na.Name, na.Arity})
	}
	return out
}
