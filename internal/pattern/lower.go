package pattern

import (
	"fmt"

	"github.com/vela-lang/velac/internal/ast"
	"github.com/vela-lang/velac/internal/runtime"
)

// Lower translates a pattern-position AST node into a Descriptor,
// collecting the bound slot names in left-to-right order. Slots is
// reused across the call as an accumulator so callers lowering a
// clause's whole argument list get one ordered name list for the
// clause.
func Lower(node ast.Node, slots *[]string) (Descriptor, error) {
	switch n := node.(type) {
	case *ast.Identifier:
		// A bare `_` or any `_`-prefixed name (e.g. `_reason`) is a
		// wildcard that discards the matched value; the leading
		// underscore only documents intent, it never binds.
		if n.Name == "_" || (len(n.Name) > 0 && n.Name[0] == '_') {
			return Wildcard{}, nil
		}
		*slots = append(*slots, n.Name)
		return Bind{Name: n.Name}, nil

	case *ast.IntLiteral:
		return Literal{Value: runtime.Number(n.Value)}, nil
	case *ast.FloatLiteral:
		return Literal{Value: runtime.Number(n.Value)}, nil
	case *ast.StringLiteral:
		return Literal{Value: runtime.String(n.Value)}, nil
	case *ast.BoolLiteral:
		return Literal{Value: runtime.Boolean(n.Value)}, nil
	case *ast.NilLiteral:
		return Literal{Value: runtime.Nil{}}, nil
	case *ast.AtomLiteral:
		return Literal{Value: runtime.Atom(n.Name)}, nil

	case *ast.ListNode:
		elems := make([]Descriptor, len(n.Elements))
		for i, e := range n.Elements {
			d, err := Lower(e, slots)
			if err != nil {
				return nil, err
			}
			elems[i] = d
		}
		var tail Descriptor
		if n.Tail != nil {
			d, err := Lower(n.Tail, slots)
			if err != nil {
				return nil, err
			}
			tail = d
		}
		return Nested{Shape: "list", Elements: elems, Tail: tail}, nil

	case *ast.ConsNode:
		head, err := Lower(n.Head, slots)
		if err != nil {
			return nil, err
		}
		tail, err := Lower(n.Tail, slots)
		if err != nil {
			return nil, err
		}
		return Nested{Shape: "list", Elements: []Descriptor{head}, Tail: tail}, nil

	case *ast.TupleNode:
		elems := make([]Descriptor, len(n.Elements))
		for i, e := range n.Elements {
			d, err := Lower(e, slots)
			if err != nil {
				return nil, err
			}
			elems[i] = d
		}
		return Nested{Shape: "tuple", Elements: elems}, nil

	case *ast.MapNode:
		fields, names, err := lowerFields(n.Pairs, slots)
		if err != nil {
			return nil, err
		}
		return Nested{Shape: "map", FieldNames: names, Fields: fields}, nil

	case *ast.StructNode:
		tag := moduleTag(n.Module)
		fields, names, err := lowerFields(n.Fields, slots)
		if err != nil {
			return nil, err
		}
		return Nested{Shape: "struct", StructTag: tag, FieldNames: names, Fields: fields}, nil

	case *ast.BitstringNode:
		segs := make([]BitstringSegmentDescriptor, len(n.Segments))
		for i, seg := range n.Segments {
			el, err := Lower(seg.Value, slots)
			if err != nil {
				return nil, err
			}
			var size Descriptor
			if seg.Size != nil {
				size, err = Lower(seg.Size, slots)
				if err != nil {
					return nil, err
				}
			}
			segs[i] = BitstringSegmentDescriptor{
				Element: el, Size: size, Unit: seg.Unit, Type: seg.Type,
				Signedness: seg.Signedness, Endianness: seg.Endianness,
			}
		}
		return Nested{Shape: "bitstring", Segments: segs}, nil

	default:
		return nil, fmt.Errorf("pattern: unsupported pattern shape %T", node)
	}
}

func lowerFields(pairs []ast.MapPair, slots *[]string) (map[string]Descriptor, []string, error) {
	fields := make(map[string]Descriptor, len(pairs))
	names := make([]string, 0, len(pairs))
	for _, p := range pairs {
		key, err := literalKey(p.Key)
		if err != nil {
			return nil, nil, err
		}
		d, err := Lower(p.Value, slots)
		if err != nil {
			return nil, nil, err
		}
		fields[key] = d
		names = append(names, key)
	}
	return fields, names, nil
}

func literalKey(key ast.Node) (string, error) {
	switch k := key.(type) {
	case *ast.AtomLiteral:
		return k.Name, nil
	case *ast.Identifier:
		return k.Name, nil
	case *ast.StringLiteral:
		return k.Value, nil
	default:
		return "", fmt.Errorf("pattern: map/struct pattern key must be a literal, got %T", key)
	}
}

func moduleTag(module ast.Node) string {
	switch m := module.(type) {
	case *ast.AliasesNode:
		if len(m.Segments) == 0 {
			return ""
		}
		return m.Segments[len(m.Segments)-1]
	case *ast.Identifier:
		return m.Name
	default:
		return ""
	}
}
