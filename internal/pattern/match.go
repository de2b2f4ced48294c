package pattern

import "github.com/vela-lang/velac/internal/runtime"

// Bindings maps a pattern's bound slot names to the values matched
// against them.
type Bindings map[string]runtime.Value

// Match attempts to match v against desc, returning the bindings
// produced on success. This is the host-side twin of the clause
// table the target runtime consults (spec.md §4.2); it exists so this
// repository's own tests can assert the round-trip property in
// spec.md §8 without a target-language host.
func Match(desc Descriptor, v runtime.Value, out Bindings) bool {
	switch d := desc.(type) {
	case Wildcard:
		return true

	case Bind:
		out[d.Name] = v
		return true

	case Literal:
		return runtime.Equal(d.Value, v)

	case TypeGuard:
		if v == nil {
			return false
		}
		if !shapeMatches(d.Shape, v) {
			return false
		}
		if d.Shape == "struct" && d.StructTag != "" {
			s, ok := v.(runtime.Struct)
			return ok && s.Module == d.StructTag
		}
		return true

	case Nested:
		return matchNested(d, v, out)

	default:
		return false
	}
}

func shapeMatches(shape string, v runtime.Value) bool {
	switch shape {
	case "list":
		return v.Kind() == runtime.KindList
	case "tuple":
		return v.Kind() == runtime.KindTuple
	case "map":
		return v.Kind() == runtime.KindMap
	case "struct":
		return v.Kind() == runtime.KindStruct
	case "bitstring":
		return v.Kind() == runtime.KindBitstring
	case "number":
		return v.Kind() == runtime.KindNumber
	case "string":
		return v.Kind() == runtime.KindString
	case "atom":
		return v.Kind() == runtime.KindAtom
	case "nil":
		return v.Kind() == runtime.KindNil
	case "boolean":
		return v.Kind() == runtime.KindBoolean
	case "function":
		return v.Kind() == runtime.KindFunction
	case "pid":
		return v.Kind() == runtime.KindPID
	default:
		return false
	}
}

func matchNested(d Nested, v runtime.Value, out Bindings) bool {
	switch d.Shape {
	case "list":
		lst, ok := v.(runtime.List)
		if !ok {
			return false
		}
		if len(lst) < len(d.Elements) {
			return false
		}
		if d.Tail == nil && len(lst) != len(d.Elements) {
			return false
		}
		for i, el := range d.Elements {
			if !Match(el, lst[i], out) {
				return false
			}
		}
		if d.Tail != nil {
			return Match(d.Tail, lst[len(d.Elements):], out)
		}
		return true

	case "tuple":
		tup, ok := v.(runtime.Tuple)
		if !ok || len(tup) != len(d.Elements) {
			return false
		}
		for i, el := range d.Elements {
			if !Match(el, tup[i], out) {
				return false
			}
		}
		return true

	case "map":
		m, ok := v.(runtime.Map)
		if !ok {
			return false
		}
		for _, name := range d.FieldNames {
			val, found := m.Get(runtime.Atom(name))
			if !found {
				val, found = m.Get(runtime.String(name))
			}
			if !found || !Match(d.Fields[name], val, out) {
				return false
			}
		}
		return true

	case "struct":
		s, ok := v.(runtime.Struct)
		if !ok || (d.StructTag != "" && s.Module != d.StructTag) {
			return false
		}
		for _, name := range d.FieldNames {
			val, found := s.Fields[name]
			if !found || !Match(d.Fields[name], val, out) {
				return false
			}
		}
		return true

	case "bitstring":
		bs, ok := v.(*runtime.Bitstring)
		if !ok {
			return false
		}
		return matchBitstringSegments(d.Segments, bs, out)

	default:
		return false
	}
}

func matchBitstringSegments(segs []BitstringSegmentDescriptor, bs *runtime.Bitstring, out Bindings) bool {
	specs := make([]runtime.BitstringSegmentSpec, len(segs))
	for i, s := range segs {
		size := 0
		if lit, ok := s.Size.(Literal); ok {
			if n, ok := lit.Value.(runtime.Number); ok {
				size = int(n)
			}
		}
		specs[i] = runtime.BitstringSegmentSpec{
			Type: s.Type, Size: size, Unit: s.Unit,
			Signed: s.Signedness == "signed", Endianness: s.Endianness,
		}
	}
	values, ok, err := runtime.MatchBitstring(bs, specs)
	if err != nil || !ok {
		return false
	}
	for i, seg := range segs {
		bound := toValue(values[i])
		if !Match(seg.Element, bound, out) {
			return false
		}
	}
	return true
}

func toValue(v interface{}) runtime.Value {
	switch t := v.(type) {
	case int64:
		return runtime.Number(float64(t))
	case float64:
		return runtime.Number(t)
	case []byte:
		return runtime.String(string(t))
	case string:
		return runtime.String(t)
	default:
		return runtime.Nil{}
	}
}
