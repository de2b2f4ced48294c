// Package translator implements the core of velac: the Translator
// dispatcher (spec.md §4.1) and its sub-translators for patterns,
// expressions, functions, modules, and protocols.
package translator

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/vela-lang/velac/internal/diagnostics"
	"github.com/vela-lang/velac/internal/macro"
	"github.com/vela-lang/velac/internal/registry"
)

// Context carries the collaborators a translation run needs beyond
// the Env/Registry threaded explicitly through every call: the
// injected macro expander and a gensym namespace for the parameter
// names generated for `&Mod.f/n` captures and `fn` wrappers. The
// `&1, &2, ...` capture placeholders use fixed `__1, __2, ...` names
// instead (see placeholderName).
//
// A fresh uuid-derived prefix per Context means gensym names
// generated while translating different files concurrently (see
// internal/pipeline's TranslateStage) never collide once their scratch registries are
// merged, even though each Context's own counter restarts at zero.
type Context struct {
	Registry  *registry.Registry
	Expander  macro.Expander
	File      string
	gensymTag string
	gensym    int
	// Diagnostics accumulates the informational (non-fatal)
	// diagnostics raised while translating this file, spec.md §7's
	// Resolution miss among them, for a caller to surface to tooling.
	Diagnostics []*diagnostics.DiagnosticError
}

// Diagnose records a non-fatal diagnostic against this context.
func (c *Context) Diagnose(d *diagnostics.DiagnosticError) {
	c.Diagnostics = append(c.Diagnostics, d)
}

// NewContext creates a translation context for one source file.
func NewContext(reg *registry.Registry, expander macro.Expander, file string) *Context {
	if expander == nil {
		expander = macro.Identity
	}
	return &Context{
		Registry:  reg,
		Expander:  expander,
		File:      file,
		gensymTag: uuid.New().String()[:8],
	}
}

// Gensym returns a fresh, file-unique placeholder identifier.
func (c *Context) Gensym(prefix string) string {
	c.gensym++
	return prefix + "_" + c.gensymTag + "_" + strconv.Itoa(c.gensym)
}
