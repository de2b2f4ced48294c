// Package pattern implements the lowering described in spec.md §4.2:
// source patterns become a descriptor tree the target runtime (or, for
// this repository's own tests, the host-side matcher in match.go)
// consults at call time.
package pattern

import "github.com/vela-lang/velac/internal/runtime"

// Descriptor is the sum type spec.md §9 calls for: "Represent pattern
// descriptors as a sum type."
type Descriptor interface {
	descriptorKind() string
}

// Wildcard matches anything, binds nothing (source `_`).
type Wildcard struct{}

func (Wildcard) descriptorKind() string { return "wildcard" }

// Bind matches anything, binding the value to Name.
type Bind struct {
	Name string
}

func (Bind) descriptorKind() string { return "bind" }

// Literal matches by structural equality against Value.
type Literal struct {
	Value runtime.Value
}

func (Literal) descriptorKind() string { return "literal" }

// TypeGuard matches if the value has the named runtime shape, without
// binding. Shape is one of: list, tuple, map, struct, bitstring,
// number, string, atom, nil, boolean, function, pid.
type TypeGuard struct {
	Shape string
	// StructTag further narrows a "struct" shape to a specific module.
	StructTag string
}

func (TypeGuard) descriptorKind() string { return "type_guard" }

// Nested is a composite pattern over list/tuple/map/struct/bitstring.
type Nested struct {
	Shape     string
	StructTag string // set when Shape == "struct"
	Elements  []Descriptor
	// Tail is set for a list cons pattern [h | t]; nil otherwise.
	Tail Descriptor
	// Fields is set for map/struct patterns: ordered key -> descriptor.
	FieldNames []string
	Fields     map[string]Descriptor
	// Segments is set for a bitstring pattern.
	Segments []BitstringSegmentDescriptor
}

func (Nested) descriptorKind() string { return "nested" }

// BitstringSegmentDescriptor is one <<...>> pattern segment.
type BitstringSegmentDescriptor struct {
	Element    Descriptor
	Size       Descriptor // nil means "rest" or implicit default
	Unit       int
	Type       string
	Signedness string
	Endianness string
}
