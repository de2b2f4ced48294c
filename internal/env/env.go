// Package env holds the Environment value threaded through
// translation. Per the redesign away from an ambient global (see
// DESIGN.md), every translator function takes an Env explicitly and,
// when it needs to extend scope, returns a new one rather than
// mutating the caller's.
package env

import "strconv"

// ImportedName is a function or macro made callable by bare name
// because its owning module was imported.
type ImportedName struct {
	Module string
	Arity  int
	Kind   string // "function" | "macro"
}

// Env is logically immutable: every With* method returns a copy.
type Env struct {
	ModulePath []string
	// Aliases maps a local name to its canonical dotted module name.
	Aliases map[string]string
	// Imports maps bare name -> ImportedName, keyed by "name/arity".
	Imports map[string]ImportedName
	InQuote bool
	// Root is the filesystem root new import declarations are relative to.
	Root string
}

// New returns the initial environment for a compilation rooted at root.
func New(root string) Env {
	return Env{
		Aliases: map[string]string{},
		Imports: map[string]ImportedName{},
		Root:    root,
	}
}

func cloneAliases(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneImports(m map[string]ImportedName) map[string]ImportedName {
	out := make(map[string]ImportedName, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// WithModule returns an Env scoped to a nested module path segment.
func (e Env) WithModule(segment string) Env {
	n := e
	n.ModulePath = append(append([]string{}, e.ModulePath...), segment)
	n.Aliases = cloneAliases(e.Aliases)
	n.Imports = cloneImports(e.Imports)
	return n
}

// WithAlias binds local to canonical, replacing any prior binding.
func (e Env) WithAlias(local, canonical string) Env {
	n := e
	n.Aliases = cloneAliases(e.Aliases)
	n.Aliases[local] = canonical
	n.Imports = e.Imports
	return n
}

// WithImport adds a bare-name import binding.
func (e Env) WithImport(name string, imp ImportedName) Env {
	n := e
	n.Imports = cloneImports(e.Imports)
	n.Imports[key(name, imp.Arity)] = imp
	n.Aliases = e.Aliases
	return n
}

// WithQuote returns an Env marked as being inside a quote block.
func (e Env) WithQuote(inQuote bool) Env {
	n := e
	n.InQuote = inQuote
	n.Aliases = cloneAliases(e.Aliases)
	n.Imports = cloneImports(e.Imports)
	return n
}

// ResolveAlias returns the canonical dotted name for a local alias, if any.
func (e Env) ResolveAlias(local string) (string, bool) {
	canonical, ok := e.Aliases[local]
	return canonical, ok
}

// ResolveImport returns the owning module for a bare (name, arity)
// call made callable via `import`.
func (e Env) ResolveImport(name string, arity int) (ImportedName, bool) {
	imp, ok := e.Imports[key(name, arity)]
	return imp, ok
}

// ModuleName returns the dot-joined fully-qualified module path.
func (e Env) ModuleName() string {
	out := ""
	for i, seg := range e.ModulePath {
		if i > 0 {
			out += "."
		}
		out += seg
	}
	return out
}

func key(name string, arity int) string {
	return name + "/" + strconv.Itoa(arity)
}
