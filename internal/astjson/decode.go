// Package astjson loads the source AST the translator consumes from a
// JSON document. Parsing Vela source text itself is out of scope
// (spec.md Non-goals); this package is the loader side of that
// boundary, decoding whatever upstream tool (or test fixture) already
// produced the tree, keyed by the same node-kind tags ast.go's
// nodeKind() methods use internally.
package astjson

import (
	"encoding/json"
	"fmt"

	"github.com/vela-lang/velac/internal/ast"
)

// rawNode is the wire shape: a "kind" discriminator plus a
// kind-specific payload, re-decoded field by field below.
type rawNode struct {
	Kind   string          `json:"kind"`
	Meta   ast.Meta        `json:"meta"`
	Fields json.RawMessage `json:"fields"`
}

// DecodeProgram decodes one source file's top-level statement list.
func DecodeProgram(file string, data []byte) (*ast.Program, error) {
	var stmts []rawNode
	if err := json.Unmarshal(data, &stmts); err != nil {
		return nil, fmt.Errorf("astjson: decode program %s: %w", file, err)
	}
	out := &ast.Program{File: file}
	for _, s := range stmts {
		n, err := decodeNode(s)
		if err != nil {
			return nil, err
		}
		out.Statements = append(out.Statements, n)
	}
	return out, nil
}

func decodeNode(r rawNode) (ast.Node, error) {
	switch r.Kind {
	case "int":
		var f struct{ Value int64 }
		return unmarshalField(r, &f, func() ast.Node { return &ast.IntLiteral{Meta: r.Meta, Value: f.Value} })
	case "float":
		var f struct{ Value float64 }
		return unmarshalField(r, &f, func() ast.Node { return &ast.FloatLiteral{Meta: r.Meta, Value: f.Value} })
	case "string":
		var f struct{ Value string }
		return unmarshalField(r, &f, func() ast.Node { return &ast.StringLiteral{Meta: r.Meta, Value: f.Value} })
	case "bool":
		var f struct{ Value bool }
		return unmarshalField(r, &f, func() ast.Node { return &ast.BoolLiteral{Meta: r.Meta, Value: f.Value} })
	case "nil":
		return &ast.NilLiteral{Meta: r.Meta}, nil
	case "atom":
		var f struct{ Name string }
		return unmarshalField(r, &f, func() ast.Node { return &ast.AtomLiteral{Meta: r.Meta, Name: f.Name} })
	case "identifier":
		var f struct{ Name string }
		return unmarshalField(r, &f, func() ast.Node { return &ast.Identifier{Meta: r.Meta, Name: f.Name} })

	case "list":
		var f struct {
			Elements []rawNode
			Tail     *rawNode
		}
		if err := json.Unmarshal(r.Fields, &f); err != nil {
			return nil, fmt.Errorf("astjson: list: %w", err)
		}
		elems, err := decodeNodes(f.Elements)
		if err != nil {
			return nil, err
		}
		var tail ast.Node
		if f.Tail != nil {
			tail, err = decodeNode(*f.Tail)
			if err != nil {
				return nil, err
			}
		}
		return &ast.ListNode{Meta: r.Meta, Elements: elems, Tail: tail}, nil

	case "tuple":
		var f struct{ Elements []rawNode }
		if err := json.Unmarshal(r.Fields, &f); err != nil {
			return nil, fmt.Errorf("astjson: tuple: %w", err)
		}
		elems, err := decodeNodes(f.Elements)
		if err != nil {
			return nil, err
		}
		return &ast.TupleNode{Meta: r.Meta, Elements: elems}, nil

	case "map":
		var f struct {
			Pairs      []rawPair
			UpdateBase *rawNode
		}
		if err := json.Unmarshal(r.Fields, &f); err != nil {
			return nil, fmt.Errorf("astjson: map: %w", err)
		}
		pairs, err := decodePairs(f.Pairs)
		if err != nil {
			return nil, err
		}
		var base ast.Node
		if f.UpdateBase != nil {
			base, err = decodeNode(*f.UpdateBase)
			if err != nil {
				return nil, err
			}
		}
		return &ast.MapNode{Meta: r.Meta, Pairs: pairs, UpdateBase: base}, nil

	case "struct":
		var f struct {
			Module rawNode
			Fields []rawPair
		}
		if err := json.Unmarshal(r.Fields, &f); err != nil {
			return nil, fmt.Errorf("astjson: struct: %w", err)
		}
		mod, err := decodeNode(f.Module)
		if err != nil {
			return nil, err
		}
		fields, err := decodePairs(f.Fields)
		if err != nil {
			return nil, err
		}
		return &ast.StructNode{Meta: r.Meta, Module: mod, Fields: fields}, nil

	case "bitstring":
		var f struct{ Segments []rawSegment }
		if err := json.Unmarshal(r.Fields, &f); err != nil {
			return nil, fmt.Errorf("astjson: bitstring: %w", err)
		}
		segs := make([]ast.BitstringSegment, len(f.Segments))
		for i, s := range f.Segments {
			val, err := decodeNode(s.Value)
			if err != nil {
				return nil, err
			}
			var size ast.Node
			if s.Size != nil {
				size, err = decodeNode(*s.Size)
				if err != nil {
					return nil, err
				}
			}
			segs[i] = ast.BitstringSegment{
				Value: val, Size: size, Unit: s.Unit, Type: s.Type,
				Signedness: s.Signedness, Endianness: s.Endianness,
				IsLiteralBinary: s.IsLiteralBinary,
			}
		}
		return &ast.BitstringNode{Meta: r.Meta, Segments: segs}, nil

	case "aliases":
		var f struct{ Segments []string }
		return unmarshalField(r, &f, func() ast.Node { return &ast.AliasesNode{Meta: r.Meta, Segments: f.Segments} })

	case "attribute":
		var f struct {
			Name  string
			Value *rawNode
		}
		if err := json.Unmarshal(r.Fields, &f); err != nil {
			return nil, fmt.Errorf("astjson: attribute: %w", err)
		}
		var val ast.Node
		if f.Value != nil {
			v, err := decodeNode(*f.Value)
			if err != nil {
				return nil, err
			}
			val = v
		}
		return &ast.AttributeNode{Meta: r.Meta, Name: f.Name, Value: val}, nil

	case "block":
		var f struct{ Statements []rawNode }
		if err := json.Unmarshal(r.Fields, &f); err != nil {
			return nil, fmt.Errorf("astjson: block: %w", err)
		}
		stmts, err := decodeNodes(f.Statements)
		if err != nil {
			return nil, err
		}
		return &ast.BlockNode{Meta: r.Meta, Statements: stmts}, nil

	case "dir":
		return &ast.DirNode{Meta: r.Meta}, nil

	case "reflective":
		var f struct{ Name string }
		return unmarshalField(r, &f, func() ast.Node { return &ast.ReflectiveNode{Meta: r.Meta, Name: f.Name} })

	case "call":
		var f struct {
			Name string
			Args []rawNode
		}
		if err := json.Unmarshal(r.Fields, &f); err != nil {
			return nil, fmt.Errorf("astjson: call: %w", err)
		}
		args, err := decodeNodes(f.Args)
		if err != nil {
			return nil, err
		}
		return &ast.CallNode{Meta: r.Meta, Name: f.Name, Args: args}, nil

	case "dotcall":
		var f struct {
			Target rawNode
			Fun    string
			Args   []rawNode
		}
		if err := json.Unmarshal(r.Fields, &f); err != nil {
			return nil, fmt.Errorf("astjson: dotcall: %w", err)
		}
		target, err := decodeNode(f.Target)
		if err != nil {
			return nil, err
		}
		args, err := decodeNodes(f.Args)
		if err != nil {
			return nil, err
		}
		return &ast.DotCallNode{Meta: r.Meta, Target: target, Fun: f.Fun, Args: args}, nil

	case "capture":
		var f struct {
			FunName string
			ModFun  *rawNode
			Arity   int
			Expr    *rawNode
		}
		if err := json.Unmarshal(r.Fields, &f); err != nil {
			return nil, fmt.Errorf("astjson: capture: %w", err)
		}
		n := &ast.CaptureNode{Meta: r.Meta, FunName: f.FunName, Arity: f.Arity}
		if f.ModFun != nil {
			dc, err := decodeNode(*f.ModFun)
			if err != nil {
				return nil, err
			}
			dotcall, ok := dc.(*ast.DotCallNode)
			if !ok {
				return nil, fmt.Errorf("astjson: capture.ModFun must decode to a dotcall")
			}
			n.ModFun = dotcall
		}
		if f.Expr != nil {
			expr, err := decodeNode(*f.Expr)
			if err != nil {
				return nil, err
			}
			n.Expr = expr
		}
		return n, nil

	case "cons":
		var f struct{ Head, Tail rawNode }
		if err := json.Unmarshal(r.Fields, &f); err != nil {
			return nil, fmt.Errorf("astjson: cons: %w", err)
		}
		head, err := decodeNode(f.Head)
		if err != nil {
			return nil, err
		}
		tail, err := decodeNode(f.Tail)
		if err != nil {
			return nil, err
		}
		return &ast.ConsNode{Meta: r.Meta, Head: head, Tail: tail}, nil

	case "assign":
		var f struct{ Left, Right rawNode }
		if err := json.Unmarshal(r.Fields, &f); err != nil {
			return nil, fmt.Errorf("astjson: assign: %w", err)
		}
		left, err := decodeNode(f.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeNode(f.Right)
		if err != nil {
			return nil, err
		}
		return &ast.AssignNode{Meta: r.Meta, Left: left, Right: right}, nil

	case "def":
		var f struct {
			Name    string
			Private bool
			Clause  rawClause
		}
		if err := json.Unmarshal(r.Fields, &f); err != nil {
			return nil, fmt.Errorf("astjson: def: %w", err)
		}
		clause, err := decodeClause(f.Clause)
		if err != nil {
			return nil, err
		}
		return &ast.FunctionClauseNode{Meta: r.Meta, Name: f.Name, Private: f.Private, Clause: clause}, nil

	case "fn":
		var f struct{ Clauses []rawClause }
		if err := json.Unmarshal(r.Fields, &f); err != nil {
			return nil, fmt.Errorf("astjson: fn: %w", err)
		}
		clauses, err := decodeClauses(f.Clauses)
		if err != nil {
			return nil, err
		}
		return &ast.FnNode{Meta: r.Meta, Clauses: clauses}, nil

	case "defstruct":
		return decodeStructShape(r, false)
	case "defexception":
		return decodeStructShape(r, true)

	case "import":
		return decodeImportLike(r, "import")
	case "alias":
		return decodeImportLike(r, "alias")
	case "require":
		return decodeImportLike(r, "require")

	case "defmodule":
		var f struct {
			Name rawNode
			Body []rawNode
		}
		if err := json.Unmarshal(r.Fields, &f); err != nil {
			return nil, fmt.Errorf("astjson: defmodule: %w", err)
		}
		name, err := decodeNode(f.Name)
		if err != nil {
			return nil, err
		}
		body, err := decodeNodes(f.Body)
		if err != nil {
			return nil, err
		}
		return &ast.DefmoduleNode{Meta: r.Meta, Name: name, Body: body}, nil

	case "defprotocol":
		var f struct {
			Name string
			Spec []rawNode
		}
		if err := json.Unmarshal(r.Fields, &f); err != nil {
			return nil, fmt.Errorf("astjson: defprotocol: %w", err)
		}
		spec, err := decodeNodes(f.Spec)
		if err != nil {
			return nil, err
		}
		return &ast.DefprotocolNode{Meta: r.Meta, Name: f.Name, Spec: spec}, nil

	case "defimpl":
		var f struct {
			Protocol string
			For      string
			Body     []rawNode
		}
		if err := json.Unmarshal(r.Fields, &f); err != nil {
			return nil, fmt.Errorf("astjson: defimpl: %w", err)
		}
		body, err := decodeNodes(f.Body)
		if err != nil {
			return nil, err
		}
		return &ast.DefimplNode{Meta: r.Meta, Protocol: f.Protocol, For: f.For, Body: body}, nil

	case "case":
		var f struct {
			Subject rawNode
			Clauses []rawClause
		}
		if err := json.Unmarshal(r.Fields, &f); err != nil {
			return nil, fmt.Errorf("astjson: case: %w", err)
		}
		subject, err := decodeNode(f.Subject)
		if err != nil {
			return nil, err
		}
		clauses, err := decodeClauses(f.Clauses)
		if err != nil {
			return nil, err
		}
		return &ast.CaseNode{Meta: r.Meta, Subject: subject, Clauses: clauses}, nil

	case "cond":
		var f struct {
			Clauses []struct{ Test, Body rawNode }
		}
		if err := json.Unmarshal(r.Fields, &f); err != nil {
			return nil, fmt.Errorf("astjson: cond: %w", err)
		}
		clauses := make([]ast.CondClause, len(f.Clauses))
		for i, c := range f.Clauses {
			test, err := decodeNode(c.Test)
			if err != nil {
				return nil, err
			}
			body, err := decodeNode(c.Body)
			if err != nil {
				return nil, err
			}
			clauses[i] = ast.CondClause{Test: test, Body: body}
		}
		return &ast.CondNode{Meta: r.Meta, Clauses: clauses}, nil

	case "for":
		var f struct {
			Generators []struct{ Pattern, Enumerable rawNode }
			Filters    []rawNode
			Into       *rawNode
			Body       rawNode
		}
		if err := json.Unmarshal(r.Fields, &f); err != nil {
			return nil, fmt.Errorf("astjson: for: %w", err)
		}
		gens := make([]ast.ForGenerator, len(f.Generators))
		for i, g := range f.Generators {
			pat, err := decodeNode(g.Pattern)
			if err != nil {
				return nil, err
			}
			en, err := decodeNode(g.Enumerable)
			if err != nil {
				return nil, err
			}
			gens[i] = ast.ForGenerator{Pattern: pat, Enumerable: en}
		}
		filters, err := decodeNodes(f.Filters)
		if err != nil {
			return nil, err
		}
		var into ast.Node
		if f.Into != nil {
			into, err = decodeNode(*f.Into)
			if err != nil {
				return nil, err
			}
		}
		body, err := decodeNode(f.Body)
		if err != nil {
			return nil, err
		}
		return &ast.ForNode{Meta: r.Meta, Generators: gens, Filters: filters, Into: into, Body: body}, nil

	case "try":
		var f struct {
			Do     rawNode
			Rescue []rawClause
			Catch  []rawClause
			After  *rawNode
			Else   []rawClause
		}
		if err := json.Unmarshal(r.Fields, &f); err != nil {
			return nil, fmt.Errorf("astjson: try: %w", err)
		}
		do, err := decodeNode(f.Do)
		if err != nil {
			return nil, err
		}
		rescue, err := decodeClauses(f.Rescue)
		if err != nil {
			return nil, err
		}
		catch, err := decodeClauses(f.Catch)
		if err != nil {
			return nil, err
		}
		elseC, err := decodeClauses(f.Else)
		if err != nil {
			return nil, err
		}
		var after ast.Node
		if f.After != nil {
			after, err = decodeNode(*f.After)
			if err != nil {
				return nil, err
			}
		}
		return &ast.TryNode{Meta: r.Meta, Do: do, Rescue: rescue, Catch: catch, After: after, Else: elseC}, nil

	case "receive":
		var f struct {
			Clauses []rawClause
			After   *rawNode
			Timeout *rawNode
		}
		if err := json.Unmarshal(r.Fields, &f); err != nil {
			return nil, fmt.Errorf("astjson: receive: %w", err)
		}
		clauses, err := decodeClauses(f.Clauses)
		if err != nil {
			return nil, err
		}
		var after, timeout ast.Node
		if f.After != nil {
			after, err = decodeNode(*f.After)
			if err != nil {
				return nil, err
			}
		}
		if f.Timeout != nil {
			timeout, err = decodeNode(*f.Timeout)
			if err != nil {
				return nil, err
			}
		}
		return &ast.ReceiveNode{Meta: r.Meta, Clauses: clauses, After: after, Timeout: timeout}, nil

	case "quote":
		var f struct{ Body rawNode }
		if err := json.Unmarshal(r.Fields, &f); err != nil {
			return nil, fmt.Errorf("astjson: quote: %w", err)
		}
		body, err := decodeNode(f.Body)
		if err != nil {
			return nil, err
		}
		return &ast.QuoteNode{Meta: r.Meta, Body: body}, nil

	case "unquote":
		var f struct{ Expr rawNode }
		if err := json.Unmarshal(r.Fields, &f); err != nil {
			return nil, fmt.Errorf("astjson: unquote: %w", err)
		}
		expr, err := decodeNode(f.Expr)
		if err != nil {
			return nil, err
		}
		return &ast.UnquoteNode{Meta: r.Meta, Expr: expr}, nil

	default:
		return nil, fmt.Errorf("astjson: unknown node kind %q", r.Kind)
	}
}

func unmarshalField(r rawNode, dst interface{}, build func() ast.Node) (ast.Node, error) {
	if len(r.Fields) > 0 {
		if err := json.Unmarshal(r.Fields, dst); err != nil {
			return nil, fmt.Errorf("astjson: %s: %w", r.Kind, err)
		}
	}
	return build(), nil
}

func decodeNodes(raws []rawNode) ([]ast.Node, error) {
	out := make([]ast.Node, len(raws))
	for i, rn := range raws {
		n, err := decodeNode(rn)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

type rawPair struct {
	Key   rawNode
	Value rawNode
}

func decodePairs(raws []rawPair) ([]ast.MapPair, error) {
	out := make([]ast.MapPair, len(raws))
	for i, rp := range raws {
		key, err := decodeNode(rp.Key)
		if err != nil {
			return nil, err
		}
		val, err := decodeNode(rp.Value)
		if err != nil {
			return nil, err
		}
		out[i] = ast.MapPair{Key: key, Value: val}
	}
	return out, nil
}

type rawSegment struct {
	Value           rawNode
	Size            *rawNode
	Unit            int
	Type            string
	Signedness      string
	Endianness      string
	IsLiteralBinary bool
}

type rawClause struct {
	Meta     ast.Meta
	Patterns []rawNode
	Guard    *rawNode
	Body     rawNode
}

func decodeClause(rc rawClause) (ast.Clause, error) {
	patterns, err := decodeNodes(rc.Patterns)
	if err != nil {
		return ast.Clause{}, err
	}
	var guard ast.Node
	if rc.Guard != nil {
		guard, err = decodeNode(*rc.Guard)
		if err != nil {
			return ast.Clause{}, err
		}
	}
	body, err := decodeNode(rc.Body)
	if err != nil {
		return ast.Clause{}, err
	}
	return ast.Clause{Meta: rc.Meta, Patterns: patterns, Guard: guard, Body: body}, nil
}

func decodeClauses(raws []rawClause) ([]ast.Clause, error) {
	out := make([]ast.Clause, len(raws))
	for i, rc := range raws {
		c, err := decodeClause(rc)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

func decodeStructShape(r rawNode, exception bool) (ast.Node, error) {
	var f struct {
		Fields   []string
		Defaults map[string]rawNode
	}
	if err := json.Unmarshal(r.Fields, &f); err != nil {
		return nil, fmt.Errorf("astjson: defstruct: %w", err)
	}
	defaults := map[string]ast.Node{}
	for k, v := range f.Defaults {
		n, err := decodeNode(v)
		if err != nil {
			return nil, err
		}
		defaults[k] = n
	}
	if exception {
		return &ast.DefexceptionNode{Meta: r.Meta, Fields: f.Fields, Defaults: defaults}, nil
	}
	return &ast.DefstructNode{Meta: r.Meta, Fields: f.Fields, Defaults: defaults}, nil
}

func decodeImportLike(r rawNode, kind string) (ast.Node, error) {
	var f struct {
		Module rawNode
		Spec   rawImportSpec
	}
	if err := json.Unmarshal(r.Fields, &f); err != nil {
		return nil, fmt.Errorf("astjson: %s: %w", kind, err)
	}
	module, err := decodeNode(f.Module)
	if err != nil {
		return nil, err
	}
	spec := f.Spec.toAST()
	switch kind {
	case "import":
		return &ast.ImportNode{Meta: r.Meta, Module: module, Spec: spec}, nil
	case "alias":
		return &ast.AliasNode{Meta: r.Meta, Module: module, Spec: spec}, nil
	default:
		return &ast.RequireNode{Meta: r.Meta, Module: module, Spec: spec}, nil
	}
}

type rawImportSpec struct {
	Only     []ast.NameArity
	OnlyKind string
	Except   []ast.NameArity
	As       string
}

func (r rawImportSpec) toAST() ast.ImportSpec {
	return ast.ImportSpec{Only: r.Only, OnlyKind: r.OnlyKind, Except: r.Except, As: r.As}
}
