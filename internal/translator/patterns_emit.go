// Bridges internal/pattern's Descriptor sum type (shared with this
// repository's host-side tests) to the target AST literal data the
// emitted Patterns.defmatch/make_case runtime interprets, per
// spec.md §6's "pattern-match clause table constructor" contract.
package translator

import (
	"github.com/vela-lang/velac/internal/ast"
	"github.com/vela-lang/velac/internal/env"
	"github.com/vela-lang/velac/internal/pattern"
	"github.com/vela-lang/velac/internal/target"
)

// lowerPattern lowers a pattern-position node and also returns the
// bound slot names in order, reused by def/fn/case/receive clause
// translation.
func lowerPattern(node ast.Node) (pattern.Descriptor, []string, error) {
	var slots []string
	d, err := pattern.Lower(node, &slots)
	if err != nil {
		return nil, nil, err
	}
	return d, slots, nil
}

func descriptorToTarget(d pattern.Descriptor) target.Node {
	switch v := d.(type) {
	case pattern.Wildcard:
		return target.NewObjectExpression(prop("kind", "wildcard"))

	case pattern.Bind:
		return target.NewObjectExpression(prop("kind", "bind"), prop("name", v.Name))

	case pattern.Literal:
		return target.NewObjectExpression(prop("kind", "literal"), propNode("value", literalValueNode(v)))

	case pattern.TypeGuard:
		props := []target.ObjectProperty{prop("kind", "type_guard"), prop("shape", v.Shape)}
		if v.StructTag != "" {
			props = append(props, prop("structTag", v.StructTag))
		}
		return target.NewObjectExpression(props...)

	case pattern.Nested:
		return nestedToTarget(v)

	default:
		return target.NewObjectExpression(prop("kind", "unknown"))
	}
}

func nestedToTarget(v pattern.Nested) target.Node {
	props := []target.ObjectProperty{prop("kind", "nested"), prop("shape", v.Shape)}
	if v.StructTag != "" {
		props = append(props, prop("structTag", v.StructTag))
	}
	if len(v.Elements) > 0 {
		elems := make([]target.Node, len(v.Elements))
		for i, el := range v.Elements {
			elems[i] = descriptorToTarget(el)
		}
		props = append(props, propNode("elements", target.NewArrayExpression(elems...)))
	}
	if v.Tail != nil {
		props = append(props, propNode("tail", descriptorToTarget(v.Tail)))
	}
	if len(v.FieldNames) > 0 {
		fieldProps := make([]target.ObjectProperty, len(v.FieldNames))
		for i, name := range v.FieldNames {
			fieldProps[i] = propNode(name, descriptorToTarget(v.Fields[name]))
		}
		props = append(props, propNode("fields", target.NewObjectExpression(fieldProps...)))
	}
	if len(v.Segments) > 0 {
		segs := make([]target.Node, len(v.Segments))
		for i, seg := range v.Segments {
			segProps := []target.ObjectProperty{
				propNode("element", descriptorToTarget(seg.Element)),
				prop("type", seg.Type),
				prop("unit", float64(seg.Unit)),
				prop("signedness", seg.Signedness),
				prop("endianness", seg.Endianness),
			}
			if seg.Size != nil {
				segProps = append(segProps, propNode("size", descriptorToTarget(seg.Size)))
			}
			segs[i] = target.NewObjectExpression(segProps...)
		}
		props = append(props, propNode("segments", target.NewArrayExpression(segs...)))
	}
	return target.NewObjectExpression(props...)
}

func literalValueNode(v pattern.Literal) target.Node {
	return target.NewLiteral(v.Value)
}

func prop(key string, value interface{}) target.ObjectProperty {
	return target.ObjectProperty{Key: target.NewIdentifier(key), Value: target.NewLiteral(value)}
}

func propNode(key string, value target.Node) target.ObjectProperty {
	return target.ObjectProperty{Key: target.NewIdentifier(key), Value: value}
}

// clauseTableEntry builds one `{patterns, guard, body}` object for a
// defmatch/make_case call, given the already-translated guard/body
// target expressions and the descriptor list for its patterns.
func clauseTableEntry(descs []pattern.Descriptor, slots []string, guard target.Node, body target.Node) target.Node {
	patNodes := make([]target.Node, len(descs))
	for i, d := range descs {
		patNodes[i] = descriptorToTarget(d)
	}
	var guardExpr target.Node = target.NewLiteral(nil)
	if guard != nil {
		guardExpr = target.NewArrowFunction(destructureParams(slots), guard)
	}
	bodyExpr := target.NewArrowFunction(destructureParams(slots), body)
	return target.NewObjectExpression(
		propNode("patterns", target.NewArrayExpression(patNodes...)),
		propNode("guard", guardExpr),
		propNode("body", bodyExpr),
	)
}

// destructureParams produces a single destructuring parameter that
// exposes every bound slot name as a local binding in the guard/body
// arrow function, e.g. ["{ x, y }"] for slots ["x", "y"].
func destructureParams(slots []string) []string {
	if len(slots) == 0 {
		return []string{"{}"}
	}
	out := "{ "
	for i, s := range slots {
		if i > 0 {
			out += ", "
		}
		out += s
	}
	out += " }"
	return []string{out}
}

// buildClauseTable lowers a list of ast.Clause into a defmatch/
// make_case call, translating each clause's guard and body with the
// given environment.
func buildClauseTable(ctx *Context, e env.Env, clauses []ast.Clause, runtimeFn string) (target.Node, error) {
	entries := make([]target.Node, len(clauses))
	for i, c := range clauses {
		descs := make([]pattern.Descriptor, len(c.Patterns))
		var allSlots []string
		for j, p := range c.Patterns {
			d, slots, err := lowerPattern(p)
			if err != nil {
				return nil, err
			}
			descs[j] = d
			allSlots = append(allSlots, slots...)
		}
		var guardExpr target.Node
		if c.Guard != nil {
			g, err := Dispatch(ctx, e, c.Guard)
			if err != nil {
				return nil, err
			}
			guardExpr = g
		}
		body, err := Dispatch(ctx, e, c.Body)
		if err != nil {
			return nil, err
		}
		entries[i] = clauseTableEntry(descs, allSlots, guardExpr, body)
	}
	return patternsCall(runtimeFn, target.NewArrayExpression(entries...)), nil
}
