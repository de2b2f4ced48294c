// Package ast defines the source-language tree that the translator
// consumes. Vela is homoiconic: every construct, including special
// forms like case/cond/def/defmodule, is a node in the same closed
// variant. Node kinds are represented as distinct Go types so the
// translator can dispatch with a type switch instead of inspecting a
// string tag.
package ast

// Meta carries source-position metadata for error reporting. It is
// attached to every node but is never consulted for translation
// semantics.
type Meta struct {
	File   string
	Line   int
	Column int
}

// Node is the base interface implemented by every tree element.
type Node interface {
	GetMeta() Meta
	nodeKind() string
}

func (m Meta) GetMeta() Meta { return m }

// ---- literals -------------------------------------------------------

type IntLiteral struct {
	Meta
	Value int64
}

type FloatLiteral struct {
	Meta
	Value float64
}

type StringLiteral struct {
	Meta
	Value string
}

type BoolLiteral struct {
	Meta
	Value bool
}

type NilLiteral struct {
	Meta
}

// AtomLiteral is a bare symbol, e.g. :ok, :"weird name", Elixir-style.
type AtomLiteral struct {
	Meta
	Name string
}

// Identifier is a symbolic name with optional metadata (e.g. a
// variable reference, a bare call name before arity is known).
type Identifier struct {
	Meta
	Name string
}

func (*IntLiteral) nodeKind() string    { return "int" }
func (*FloatLiteral) nodeKind() string  { return "float" }
func (*StringLiteral) nodeKind() string { return "string" }
func (*BoolLiteral) nodeKind() string   { return "bool" }
func (*NilLiteral) nodeKind() string    { return "nil" }
func (*AtomLiteral) nodeKind() string   { return "atom" }
func (*Identifier) nodeKind() string    { return "identifier" }

// ---- compound values -------------------------------------------------

type ListNode struct {
	Meta
	Elements []Node
	// Tail is set when the list has a cons tail, e.g. [h | t].
	Tail Node
}

type TupleNode struct {
	Meta
	Elements []Node
}

type MapPair struct {
	Key   Node
	Value Node
}

// MapNode represents both map construction (%{...}) and, when
// UpdateBase is non-nil, a functional map update (%{m | k: v}).
type MapNode struct {
	Meta
	Pairs      []MapPair
	UpdateBase Node
}

// StructNode represents %Module{fields}. Module is an AliasesNode or
// Identifier naming the target module.
type StructNode struct {
	Meta
	Module Node
	Fields []MapPair
}

// BitstringSegment is one element of a bitstring literal <<...>>.
type BitstringSegment struct {
	Value      Node
	Size       Node   // optional explicit size expression
	Unit       int    // bit unit, 0 means "use type default"
	Type       string // integer | float | binary | bitstring | utf8 | utf16 | utf32
	Signedness string // signed | unsigned | ""
	Endianness string // big | little | native | ""
	IsLiteralBinary bool // true if this segment is a plain string/binary literal
}

// BitstringNode represents <<...>>. Per spec §4.3, if every segment is
// a plain binary literal or a ::binary segment it denotes string
// interpolation (concatenation); the translator decides that from
// Segments, this node just carries the raw shape.
type BitstringNode struct {
	Meta
	Segments []BitstringSegment
}

func (*ListNode) nodeKind() string      { return "list" }
func (*TupleNode) nodeKind() string     { return "tuple" }
func (*MapNode) nodeKind() string       { return "map" }
func (*StructNode) nodeKind() string    { return "struct" }
func (*BitstringNode) nodeKind() string { return "bitstring" }

// ---- names & scoping --------------------------------------------------

// AliasesNode is the __aliases__ form: a dotted module path like
// Hello.World, represented as ordered capitalized segments.
type AliasesNode struct {
	Meta
	Segments []string
}

func (*AliasesNode) nodeKind() string { return "aliases" }

// AttributeNode is the @ form: either a module attribute definition
// (@name value) or a read of one (@name), distinguished by Value being
// nil.
type AttributeNode struct {
	Meta
	Name  string
	Value Node // nil for a read
}

func (*AttributeNode) nodeKind() string { return "attribute" }

// BlockNode is __block__: a sequence of statements, value is the last.
type BlockNode struct {
	Meta
	Statements []Node
}

func (*BlockNode) nodeKind() string { return "block" }

// DirNode is __DIR__, the compiling file's directory.
type DirNode struct{ Meta }

func (*DirNode) nodeKind() string { return "dir" }

// ReflectiveNode represents an intentionally-unsupported reflective
// form: super, __CALLER__, __ENV__.
type ReflectiveNode struct {
	Meta
	Name string
}

func (*ReflectiveNode) nodeKind() string { return "reflective" }

// ---- calls -------------------------------------------------------------

// CallNode is the generic (name, meta, args) tagged form: a function
// call, a Kernel builtin invocation, or (before macro expansion is
// attempted) a macro call.
type CallNode struct {
	Meta
	Name string
	Args []Node
}

func (*CallNode) nodeKind() string { return "call" }

// DotCallNode is the `.` dotted-call notation: Mod.fun(args) or
// Access.get(m, k), where Target names the module/receiver path and
// Fun is the function name.
type DotCallNode struct {
	Meta
	Target Node // AliasesNode, Identifier, or an arbitrary expression
	Fun    string
	Args   []Node
}

func (*DotCallNode) nodeKind() string { return "dotcall" }

// CaptureNode is &f/n, &Mod.f/n, or &expr (with &1, &2 placeholders).
type CaptureNode struct {
	Meta
	// One of:
	FunName   string // bare capture &f/n
	ModFun    *DotCallNode // &Mod.f/n (Args unused, Fun set)
	Arity     int
	Expr      Node // &expr form; placeholders are Identifier{Name: "&1"} etc inside Expr
}

func (*CaptureNode) nodeKind() string { return "capture" }

// ConsNode is the list-cons `|` pattern form, e.g. [h | t] as a
// pattern position node distinct from ListNode.Tail for symmetry with
// source emitted by some parsers.
type ConsNode struct {
	Meta
	Head Node
	Tail Node
}

func (*ConsNode) nodeKind() string { return "cons" }

// AssignNode is `left = right`.
type AssignNode struct {
	Meta
	Left  Node
	Right Node
}

func (*AssignNode) nodeKind() string { return "assign" }

// ---- clauses -------------------------------------------------------------

// Clause is a single pattern/guard/body triple shared by def, fn,
// case and receive.
type Clause struct {
	Meta
	Patterns []Node // argument patterns (def/fn) or a single scrutinee pattern (case/receive)
	Guard    Node   // nil if no `when`
	Body     Node
}

// ---- definitions -------------------------------------------------------

// FunctionClauseNode is one `def`/`defp` clause. Clauses of the same
// (Name, Arity) are grouped by the function translator.
type FunctionClauseNode struct {
	Meta
	Name    string
	Private bool
	Clause  Clause
}

func (*FunctionClauseNode) nodeKind() string { return "def" }

// FnNode is an anonymous function literal with one or more clauses.
type FnNode struct {
	Meta
	Clauses []Clause
}

func (*FnNode) nodeKind() string { return "fn" }

// DefstructNode declares a module's struct shape.
type DefstructNode struct {
	Meta
	Fields []string
	// Defaults maps field name to its default value expression, if any.
	Defaults map[string]Node
}

func (*DefstructNode) nodeKind() string { return "defstruct" }

// DefexceptionNode declares an exception struct shape, which behaves
// like DefstructNode but tags the module as raiseable.
type DefexceptionNode struct {
	Meta
	Fields   []string
	Defaults map[string]Node
}

func (*DefexceptionNode) nodeKind() string { return "defexception" }

// ImportSpec constrains an import/alias/require to a subset of names.
type ImportSpec struct {
	Only     []NameArity // non-nil means restrict to exactly these
	OnlyKind string      // "functions" | "macros" | ""
	Except   []NameArity
	As       string // rename target for alias
}

type NameArity struct {
	Name  string
	Arity int
}

// ImportNode is `import M[, opts]`.
type ImportNode struct {
	Meta
	Module Node // AliasesNode
	Spec   ImportSpec
}

func (*ImportNode) nodeKind() string { return "import" }

// AliasNode is `alias A.B.C[, as: Y]`.
type AliasNode struct {
	Meta
	Module Node // AliasesNode
	Spec   ImportSpec
}

func (*AliasNode) nodeKind() string { return "alias" }

// RequireNode is `require M[, opts]`.
type RequireNode struct {
	Meta
	Module Node
	Spec   ImportSpec
}

func (*RequireNode) nodeKind() string { return "require" }

// DefmoduleNode is `defmodule Name do body end`. Body may contain
// nested DefmoduleNode entries, which the module translator extracts
// and emits as sibling programs.
type DefmoduleNode struct {
	Meta
	Name Node // AliasesNode
	Body []Node
}

func (*DefmoduleNode) nodeKind() string { return "defmodule" }

// DefprotocolNode is `defprotocol P do spec end`.
type DefprotocolNode struct {
	Meta
	Name string
	Spec []Node // function specs inside the protocol body
}

func (*DefprotocolNode) nodeKind() string { return "defprotocol" }

// DefimplNode is `defimpl P, for: T do body end`.
type DefimplNode struct {
	Meta
	Protocol string
	For      string
	Body     []Node
}

func (*DefimplNode) nodeKind() string { return "defimpl" }

// ---- control-flow special forms ---------------------------------------

type CaseNode struct {
	Meta
	Subject Node
	Clauses []Clause
}

func (*CaseNode) nodeKind() string { return "case" }

// CondClause pairs a boolean test with a body; CondNode has no
// pattern/guard, only tests.
type CondClause struct {
	Test Node
	Body Node
}

type CondNode struct {
	Meta
	Clauses []CondClause
}

func (*CondNode) nodeKind() string { return "cond" }

// ForGenerator is one `pattern <- enumerable` clause of a for
// comprehension.
type ForGenerator struct {
	Pattern     Node
	Enumerable  Node
}

type ForNode struct {
	Meta
	Generators []ForGenerator
	Filters    []Node // boolean guard expressions
	Into       Node   // optional collectable target; nil means list
	Body       Node
}

func (*ForNode) nodeKind() string { return "for" }

// TryNode covers try/rescue/catch/after/else.
type TryNode struct {
	Meta
	Do      Node
	Rescue  []Clause
	Catch   []Clause
	After   Node
	Else    []Clause
}

func (*TryNode) nodeKind() string { return "try" }

// ReceiveNode compiles to the runtime mailbox waiter.
type ReceiveNode struct {
	Meta
	Clauses []Clause
	After   Node   // optional timeout body
	Timeout Node   // optional timeout expression
}

func (*ReceiveNode) nodeKind() string { return "receive" }

// QuoteNode reifies Body as data; `unquote(...)` escapes that re-enter
// ordinary translation appear inside Body as UnquoteNode values.
type QuoteNode struct {
	Meta
	Body Node
}

// UnquoteNode marks a node inside a QuoteNode tree that escapes back
// into ordinary translation.
type UnquoteNode struct {
	Meta
	Expr Node
}

func (*QuoteNode) nodeKind() string   { return "quote" }
func (*UnquoteNode) nodeKind() string { return "unquote" }

// ---- program root -------------------------------------------------------

// Program is one source file's top-level form sequence.
type Program struct {
	File       string
	Statements []Node
}

func (p *Program) GetMeta() Meta   { return Meta{File: p.File} }
func (*Program) nodeKind() string  { return "program" }
