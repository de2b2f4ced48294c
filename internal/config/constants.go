// Package config holds compiler-wide constants, following the
// teacher's internal/config/constants.go convention of small named
// tables rather than inline magic values scattered through the
// translator.
package config

// KernelBuiltins lists the Kernel functions the dispatcher lowers
// directly (spec.md §4.1 dispatch rule 7) instead of treating as a
// user call or macro candidate. Keyed by "name/arity".
var KernelBuiltins = map[string]bool{
	"+/2": true, "-/2": true, "*/2": true, "//2": true,
	"==/2": true, "!=/2": true, "<>/2": true, "++/2": true,
	"and/2": true, "or/2": true, "not/1": true,
	"elem/2": true, "tuple_size/1": true,
	"hd/1": true, "tl/1": true, "length/1": true,
	"is_list/1": true, "is_tuple/1": true, "is_map/1": true,
	"is_atom/1": true, "is_binary/1": true, "is_function/1": true,
	"is_function/2": true, "is_number/1": true, "is_integer/1": true,
	"is_float/1": true, "is_boolean/1": true, "is_nil/1": true,
	"to_string/1": true, "inspect/1": true, "apply/2": true, "apply/3": true,
}

// KnownModuleDottedCalls lists the modules whose dotted calls the
// dispatcher recognizes directly (spec.md §4.1 dispatch rule 5).
var KnownModuleDottedCalls = map[string]bool{
	"Logger": true, "Access": true, "Kernel": true, "JS": true,
}

// StandardProtocols are the built-in protocols whose implementations
// are wrapped in CanonicalNamespace (spec.md §4.6).
var StandardProtocols = []string{"Enumerable", "Inspect", "String.Chars", "Collectable"}

// CanonicalNamespace prefixes emitted dispatch tables for standard
// protocol implementations.
const CanonicalNamespace = "Vela.Protocols"

// IdentifierSubstitutions is the fixed, deterministic, injective
// filter table spec.md §6 requires for identifiers that contain
// characters illegal in the target. Characters not present in this
// table but outside [A-Za-z0-9_] are rejected by FilterIdentifier
// (ok=false, which its callers report as a shape-mismatch error)
// rather than silently dropped, preserving
// injectivity.
var IdentifierSubstitutions = map[rune]string{
	'?': "__qmark__",
	'!': "__emark__",
	'@': "__at__",
	'+': "__plus__",
	'-': "__minus__",
	'*': "__star__",
	'/': "__slash__",
	'=': "__eq__",
	'<': "__lt__",
	'>': "__gt__",
	'|': "__pipe__",
	'.': "__dot__",
	'&': "__amp__",
	'~': "__tilde__",
}

// SourceFileExtensions are recognized Vela source extensions, kept for
// the driver's directory walk.
var SourceFileExtensions = []string{".vl", ".vela"}
