// Module translator (spec.md §4.5, 15% of the core): walks a module
// body, registers it and its nested modules into the Registry, lowers
// alias/import/require into target import declarations, and emits the
// export list, grounded on the teacher's internal/pipeline module
// orchestration but replaced end to end with this domain's semantics.
package translator

import (
	"github.com/vela-lang/velac/internal/ast"
	"github.com/vela-lang/velac/internal/diagnostics"
	"github.com/vela-lang/velac/internal/env"
	"github.com/vela-lang/velac/internal/target"
)

// translateDefmodule implements spec.md §4.5 steps 1-5. Inner
// defmodule nodes are translated first; each recursive call registers
// its own ModuleRecord and stamps the record's Body directly, so a
// driver need only walk the final merged Registry to emit every
// module, nested ones included, without this function threading its
// sibling programs back up through the return value. An inner
// module's Body is stamped before its enclosing module's Body, but
// EmitStage walks the Registry in map order, so the order in which
// module outputs are emitted is not defined.
func translateDefmodule(ctx *Context, e env.Env, n *ast.DefmoduleNode) (target.Node, error) {
	aliasNode, ok := n.Name.(*ast.AliasesNode)
	if !ok {
		return nil, diagnostics.ShapeMismatch(n.Meta, "module name")
	}

	inner := e
	for _, seg := range aliasNode.Segments {
		inner = inner.WithModule(seg)
	}
	dotted := inner.ModuleName()

	rec, err := ctx.Registry.AddModule(inner.ModulePath, ctx.File, n.Meta)
	if err != nil {
		return nil, err
	}

	var importDecls []target.Node
	var hoisted []target.Node
	var structFactory target.Node
	hasStruct := false

	for _, stmt := range n.Body {
		switch s := stmt.(type) {
		case *ast.DefmoduleNode:
			if _, err := translateDefmodule(ctx, inner, s); err != nil {
				return nil, err
			}

		case *ast.ImportNode:
			t, next, err := translateImportLike(ctx, inner, s.Module, s.Spec, "import", s.Meta)
			if err != nil {
				return nil, err
			}
			importDecls = append(importDecls, t)
			inner = next

		case *ast.AliasNode:
			t, next, err := translateImportLike(ctx, inner, s.Module, s.Spec, "alias", s.Meta)
			if err != nil {
				return nil, err
			}
			importDecls = append(importDecls, t)
			inner = next

		case *ast.RequireNode:
			t, next, err := translateImportLike(ctx, inner, s.Module, s.Spec, "require", s.Meta)
			if err != nil {
				return nil, err
			}
			importDecls = append(importDecls, t)
			inner = next

		case *ast.FunctionClauseNode:
			// Grouped below by groupFunctionClauses; not dispatched here
			// since clauses of the same (name, arity) must collapse into
			// one clause table rather than one declaration each.

		case *ast.DefstructNode:
			t, err := translateDefstruct(ctx, inner, s)
			if err != nil {
				return nil, err
			}
			structFactory, hasStruct = t, true

		case *ast.DefexceptionNode:
			t, err := translateDefexception(ctx, inner, s)
			if err != nil {
				return nil, err
			}
			structFactory, hasStruct = t, true
			ctx.Registry.MarkRaiseable(dotted)

		case *ast.AttributeNode:
			if s.Value == nil {
				continue
			}
			t, err := Dispatch(ctx, inner, s.Value)
			if err != nil {
				return nil, err
			}
			hoisted = append(hoisted, target.NewConstDeclaration("__attr_"+s.Name, t))

		default:
			t, err := Dispatch(ctx, inner, stmt)
			if err != nil {
				return nil, err
			}
			hoisted = append(hoisted, target.NewExpressionStatement(t))
		}
	}

	groups := groupFunctionClauses(n.Body)
	funcDecls := make([]target.Node, 0, len(groups))
	exportNames := make([]string, 0, len(groups))
	for _, g := range groups {
		decl, err := translateFunctionGroup(ctx, inner, dotted, g)
		if err != nil {
			return nil, err
		}
		funcDecls = append(funcDecls, decl)
		if !g.private {
			exportNames = append(exportNames, g.name)
		}
	}

	body := make([]target.Node, 0, len(importDecls)+len(hoisted)+len(funcDecls)+3)
	body = append(body, importDecls...)
	body = append(body, target.NewConstDeclaration("__MODULE__", specialFormsCall("atom", target.NewLiteral(dotted))))
	if hasStruct {
		body = append(body, target.NewConstDeclaration("__struct__", structFactory))
		exportNames = append(exportNames, "__struct__")
	}
	body = append(body, hoisted...)
	body = append(body, funcDecls...)
	body = append(body, target.NewExportDeclaration(exportNames...))

	program := target.NewProgram(body...)
	rec.Body = program
	return program, nil
}
