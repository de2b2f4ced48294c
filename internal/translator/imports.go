package translator

import (
	"github.com/vela-lang/velac/internal/ast"
	"github.com/vela-lang/velac/internal/diagnostics"
	"github.com/vela-lang/velac/internal/env"
	"github.com/vela-lang/velac/internal/modulepath"
	"github.com/vela-lang/velac/internal/registry"
	"github.com/vela-lang/velac/internal/target"
)

// translateImport registers the import into the current module's
// alias/import sets and the environment, then emits a target import
// declaration, per spec.md §4.5 step 3. Dispatch only has room for the
// generic (target.Node, error) shape, so the updated Env
// translateImportLike produces is discarded here; translateDefmodule
// calls translateImportLike directly instead of going through Dispatch
// so it can keep that Env for the rest of the module body.
func translateImport(ctx *Context, e env.Env, n *ast.ImportNode) (target.Node, error) {
	t, _, err := translateImportLike(ctx, e, n.Module, n.Spec, "import", n.Meta)
	return t, err
}

// translateAlias handles `alias A.B.C[, as: Y]`: binds a local name to
// the canonical dotted module name, with no runtime behavior of its
// own beyond the import declaration (spec.md §4.5's alias semantics).
func translateAlias(ctx *Context, e env.Env, n *ast.AliasNode) (target.Node, error) {
	t, _, err := translateImportLike(ctx, e, n.Module, n.Spec, "alias", n.Meta)
	return t, err
}

// translateRequire makes a module's macros available by bare name,
// without importing its functions (spec.md §4.1 dispatch rule 5).
func translateRequire(ctx *Context, e env.Env, n *ast.RequireNode) (target.Node, error) {
	t, _, err := translateImportLike(ctx, e, n.Module, n.Spec, "require", n.Meta)
	return t, err
}

// translateImportLike records the import into the Registry (for
// ProcessImports' later cross-file pass) and, when the imported
// module's kind is "import" and it has already been registered —
// because it precedes the importer in the same file, or was translated
// earlier in this scratch registry — binds its public functions into
// the returned Env right away, so the rest of this module body
// translates bare calls to it as qualified calls without waiting for
// ResolveImportsStage (spec.md §4.5: import "makes M's public
// functions referenceable by bare name inside the current module").
// When the module isn't registered yet (a forward cross-file import),
// the bare name falls through to spec.md §7's Resolution miss here and
// is patched into a qualified call once ResolveImportsStage runs (see
// PatchUnresolvedImports).
func translateImportLike(ctx *Context, e env.Env, moduleNode ast.Node, spec ast.ImportSpec, kind string, meta ast.Meta) (target.Node, env.Env, error) {
	aliasNode, ok := moduleNode.(*ast.AliasesNode)
	if !ok {
		return nil, e, diagnostics.ShapeMismatch(meta, "module reference")
	}
	dotted := dottedSegments(aliasNode.Segments)

	local := spec.As
	if local == "" {
		local = aliasNode.Segments[len(aliasNode.Segments)-1]
	}

	next := e
	currentModule := e.ModuleName()
	if currentModule != "" {
		entry := registry.ImportEntry{
			ModuleName: dotted,
			Spec:       spec,
			Kind:       kind,
		}
		if rec, ok := ctx.Registry.GetModule(currentModule); ok {
			rec.Imports = append(rec.Imports, entry)
		}
		if kind != "require" {
			ctx.Registry.AddAlias(currentModule, local, dotted)
		}

		if kind == "import" {
			if owner, ok := ctx.Registry.GetModule(dotted); ok {
				for na := range registry.CandidateNames(owner, entry) {
					next = next.WithImport(na.Name, env.ImportedName{Module: dotted, Arity: na.Arity, Kind: "function"})
				}
			}
		}
	}

	importPath := modulepath.FromSegments(aliasNode.Segments)
	return target.NewImportDeclaration(local, importPath), next, nil
}

func dottedSegments(segments []string) string {
	out := ""
	for i, s := range segments {
		if i > 0 {
			out += "."
		}
		out += s
	}
	return out
}
