package registry

// AddAlias binds local to canonical inside the module named
// dottedModuleName. Per spec.md §4.7's documented Open Question, this
// never validates that canonical names a module the registry already
// knows about: the real system's add_alias silently accepts aliases
// to modules defined later in the compilation, or external to it
// entirely (see DESIGN.md, "Open Question: alias to unknown module").
// Re-aliasing the same local name replaces the previous binding,
// matching the "alias... re-aliasing replaces" invariant in spec.md §3.
func (r *Registry) AddAlias(dottedModuleName, local, canonical string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assertLive()

	m, ok := r.modules[dottedModuleName]
	if !ok {
		return
	}
	m.Aliases[local] = canonical
}
