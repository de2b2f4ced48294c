package translator

import (
	"github.com/vela-lang/velac/internal/ast"
	"github.com/vela-lang/velac/internal/env"
	"github.com/vela-lang/velac/internal/target"
)

// translateBitstring implements spec.md §4.3: "if every element is a
// plain binary literal or a ::binary segment it is an interpolated
// string (concatenation); otherwise a bitstring constructor call
// carrying segment metadata."
func translateBitstring(ctx *Context, e env.Env, n *ast.BitstringNode) (target.Node, error) {
	if isInterpolatedString(n.Segments) {
		return translateInterpolation(ctx, e, n.Segments)
	}
	return translateBitstringConstructor(ctx, e, n.Segments)
}

func isInterpolatedString(segs []ast.BitstringSegment) bool {
	if len(segs) == 0 {
		return true
	}
	for _, s := range segs {
		if s.IsLiteralBinary {
			continue
		}
		if s.Type == "binary" {
			continue
		}
		return false
	}
	return true
}

func translateInterpolation(ctx *Context, e env.Env, segs []ast.BitstringSegment) (target.Node, error) {
	parts := make([]target.Node, len(segs))
	for i, s := range segs {
		v, err := Dispatch(ctx, e, s.Value)
		if err != nil {
			return nil, err
		}
		parts[i] = v
	}
	return kernelCall("stringConcat", target.NewArrayExpression(parts...)), nil
}

func translateBitstringConstructor(ctx *Context, e env.Env, segs []ast.BitstringSegment) (target.Node, error) {
	entries := make([]target.Node, len(segs))
	for i, s := range segs {
		val, err := Dispatch(ctx, e, s.Value)
		if err != nil {
			return nil, err
		}
		props := []target.ObjectProperty{
			propNode("value", val),
			prop("type", defaultString(s.Type, "integer")),
			prop("unit", float64(s.Unit)),
			prop("signedness", s.Signedness),
			prop("endianness", defaultString(s.Endianness, "big")),
		}
		if s.Size != nil {
			size, err := Dispatch(ctx, e, s.Size)
			if err != nil {
				return nil, err
			}
			props = append(props, propNode("size", size))
		}
		entries[i] = target.NewObjectExpression(props...)
	}
	return specialFormsCall("bitstring", target.NewArrayExpression(entries...)), nil
}

func defaultString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
