// Protocol translator (spec.md §4.6, 5% of the core): registers
// protocol specs and per-type implementations into the Registry;
// assembling the final dispatch table is deferred to
// BuildProtocolDispatch since a defimpl for P may live in a file
// compiled after P's defprotocol (spec.md §8's boundary case: "A
// defimpl for a type with no corresponding defprotocol creates a new
// protocol record with a null spec").
package translator

import (
	"sort"

	"github.com/vela-lang/velac/internal/ast"
	"github.com/vela-lang/velac/internal/config"
	"github.com/vela-lang/velac/internal/env"
	"github.com/vela-lang/velac/internal/registry"
	"github.com/vela-lang/velac/internal/target"
)

// translateDefprotocol registers P with its spec and emits a marker
// declaration; the real dispatch object is assembled once every file
// in the compilation has been translated (see BuildProtocolDispatch).
func translateDefprotocol(ctx *Context, e env.Env, n *ast.DefprotocolNode) (target.Node, error) {
	ctx.Registry.AddProtocol(n.Name, &ast.BlockNode{Meta: n.Meta, Statements: n.Spec})
	return target.NewConstDeclaration(protocolMarkerName(n.Name), specialFormsCall("protocol", target.NewLiteral(n.Name))), nil
}

// translateDefimpl registers the translated body under
// protocols[P].impls[T].
func translateDefimpl(ctx *Context, e env.Env, n *ast.DefimplNode) (target.Node, error) {
	groups := groupFunctionClauses(n.Body)
	implModule := n.Protocol + "." + n.For

	body := make([]target.Node, 0, len(n.Body))
	for _, stmt := range n.Body {
		if _, isFn := stmt.(*ast.FunctionClauseNode); isFn {
			continue
		}
		t, err := Dispatch(ctx, e, stmt)
		if err != nil {
			return nil, err
		}
		body = append(body, target.NewExpressionStatement(t))
	}
	exportNames := make([]string, 0, len(groups))
	for _, g := range groups {
		decl, err := translateFunctionGroup(ctx, e, implModule, g)
		if err != nil {
			return nil, err
		}
		body = append(body, decl)
		if !g.private {
			exportNames = append(exportNames, g.name)
		}
	}
	body = append(body, target.NewExportDeclaration(exportNames...))

	implProgram := target.NewProgram(body...)
	ctx.Registry.AddProtocolImpl(n.Protocol, n.For, implProgram)
	return target.NewConstDeclaration(protocolImplMarkerName(n.Protocol, n.For), target.NewLiteral(true)), nil
}

func protocolMarkerName(protocol string) string {
	return "__protocol_" + protocol
}

func protocolImplMarkerName(protocol, forType string) string {
	return "__impl_" + protocol + "_" + forType
}

// BuildProtocolDispatch assembles, per registered protocol, a program
// exporting a single dispatch object mapping runtime type tags to
// their implementation modules (spec.md §4.6's "dispatch object
// mapping runtime type tags to their implementations"). Standard-
// library protocols are namespaced under config.CanonicalNamespace so
// they don't collide with user-defined protocols of the same short
// name (spec.md §4.6).
func BuildProtocolDispatch(reg *registry.Registry) []*target.Program {
	var out []*target.Program
	for _, p := range reg.AllProtocols() {
		forTypes := make([]string, 0, len(p.Impls))
		for forType := range p.Impls {
			forTypes = append(forTypes, forType)
		}
		sort.Strings(forTypes)

		props := make([]target.ObjectProperty, 0, len(forTypes))
		for _, forType := range forTypes {
			props = append(props, propNode(forType, target.NewIdentifier(moduleIdentifier(p.Name+"."+forType))))
		}
		name := p.Name
		if isStandardProtocol(name) {
			name = config.CanonicalNamespace + "." + name
		}
		decl := target.NewConstDeclaration("__dispatch__", target.NewObjectExpression(props...))
		out = append(out, target.NewProgram(decl, target.NewExportDeclaration("__dispatch__"), target.NewConstDeclaration("__name__", target.NewLiteral(name))))
	}
	return out
}

func isStandardProtocol(name string) bool {
	for _, p := range config.StandardProtocols {
		if p == name {
			return true
		}
	}
	return false
}
