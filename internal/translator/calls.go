package translator

import (
	"reflect"
	"strconv"

	"github.com/vela-lang/velac/internal/ast"
	"github.com/vela-lang/velac/internal/config"
	"github.com/vela-lang/velac/internal/diagnostics"
	"github.com/vela-lang/velac/internal/env"
	"github.com/vela-lang/velac/internal/macro"
	"github.com/vela-lang/velac/internal/target"
)

// translateDotCall handles the `.` dotted-call notation: known-module
// calls (Logger, Access, Kernel, JS) and arbitrary dotted calls,
// spec.md §4.1 dispatch rule 5.
func translateDotCall(ctx *Context, e env.Env, n *ast.DotCallNode) (target.Node, error) {
	args := make([]target.Node, len(n.Args))
	for i, a := range n.Args {
		t, err := Dispatch(ctx, e, a)
		if err != nil {
			return nil, err
		}
		args[i] = t
	}

	if alias, ok := n.Target.(*ast.AliasesNode); ok && len(alias.Segments) == 1 && config.KnownModuleDottedCalls[alias.Segments[0]] {
		return target.NewCallExpression(
			target.NewMemberExpression(target.NewIdentifier(alias.Segments[0]), target.NewIdentifier(n.Fun), false),
			args...,
		), nil
	}

	target_, err := Dispatch(ctx, e, n.Target)
	if err != nil {
		return nil, err
	}
	return target.NewCallExpression(
		target.NewMemberExpression(target_, target.NewIdentifier(n.Fun), false),
		args...,
	), nil
}

// translateCall handles the generic (name, meta, params) fallback,
// spec.md §4.1 dispatch rule 7.
func translateCall(ctx *Context, e env.Env, n *ast.CallNode) (target.Node, error) {
	key := n.Name + "/" + strconv.Itoa(len(n.Args))
	if config.KernelBuiltins[key] {
		return translateKernelBuiltin(ctx, e, n)
	}

	expanded, changed, err := macro.ToFixedPoint(ctx.Expander, n, e, astEqual)
	if err != nil {
		return nil, diagnostics.MacroExpansionFailure(n.Meta, err)
	}
	if changed {
		return Dispatch(ctx, e, expanded)
	}

	args := make([]target.Node, len(n.Args))
	for i, a := range n.Args {
		t, err := Dispatch(ctx, e, a)
		if err != nil {
			return nil, err
		}
		args[i] = t
	}

	if imp, ok := e.ResolveImport(n.Name, len(n.Args)); ok {
		callee := target.NewMemberExpression(target.NewIdentifier(moduleIdentifier(imp.Module)), target.NewIdentifier(n.Name), false)
		return target.NewCallExpression(callee, args...), nil
	}

	// Resolution miss: not an error at translation time (spec.md §7);
	// emit a local call and let the target runtime decide at load
	// time, but still record it. Inside a registered module it becomes
	// a pending call site, so a later cross-file import can qualify it
	// once its owning module is known; PatchUnresolvedImports reports
	// the I001 diagnostic only for sites that never resolve. Outside a
	// module there is nothing to patch, so the I001 is raised here.
	filtered, ok := config.FilterIdentifier(n.Name)
	if !ok {
		return nil, diagnostics.ShapeMismatch(n.Meta, "call")
	}
	call := target.NewCallExpression(target.NewIdentifier(filtered), args...)
	mod := e.ModuleName()
	if _, registered := ctx.Registry.GetModule(mod); mod != "" && registered {
		ctx.Registry.RecordPendingCall(mod, n.Name, len(n.Args), call, n.Meta)
	} else {
		ctx.Diagnose(diagnostics.ResolutionMiss(n.Meta, n.Name))
	}
	return call, nil
}

func translateKernelBuiltin(ctx *Context, e env.Env, n *ast.CallNode) (target.Node, error) {
	args := make([]target.Node, len(n.Args))
	for i, a := range n.Args {
		t, err := Dispatch(ctx, e, a)
		if err != nil {
			return nil, err
		}
		args[i] = t
	}
	return kernelCall(n.Name, args...), nil
}

// astEqual is the structural-equality check spec.md §4.1's macro
// fixed-point rule requires ("not a macro, translate literally" when
// expansion returns the same tree).
func astEqual(a, b ast.Node) bool {
	return reflect.DeepEqual(a, b)
}
