// Package registry implements the Module Registry described in
// spec.md §3/§4.7: a table of known modules, aliases, imports, and
// protocol implementations, reached through a small command surface.
//
// spec.md §9 frames the source system's registry as process-wide
// global, mutable state, and directs a reimplementation to
// re-architect it as an explicit value passed to every translator.
// Registry is that value: every mutation is a method call, there is
// no package-level global, and a single-threaded compilation gets one
// instance while a parallel, multi-file compilation gets one Scratch
// per file, merged at a barrier (see scratch.go).
package registry

import (
	"sync"

	"github.com/vela-lang/velac/internal/ast"
	"github.com/vela-lang/velac/internal/env"
	"github.com/vela-lang/velac/internal/target"
)

// NameArity identifies a function or macro by name and parameter count.
type NameArity struct {
	Name  string
	Arity int
}

// ImportEntry is one `import`/`alias`/`require` a module body issued.
// It is recorded during translation and materialized into concrete
// imported names during ProcessImports.
type ImportEntry struct {
	ModuleName string
	Spec       ast.ImportSpec
	Kind       string // "import" | "alias" | "require"
}

// ModuleRecord mirrors spec.md §3's Module record.
type ModuleRecord struct {
	Name      []string
	Source    string // file path the module was defined in, for collision reporting
	Functions map[NameArity]bool
	Macros    map[NameArity]bool
	Aliases   map[string]string // local name -> canonical dotted name
	Imports   []ImportEntry
	Body      *target.Program
	// ResolvedImports is filled in by ProcessImports: bare name -> the
	// module that exports it.
	ResolvedImports map[NameArity]string
	// PendingCalls are the call sites translateCall left as an
	// unqualified local call because the bare name didn't resolve
	// against any import known at translation time (spec.md §7's
	// Resolution miss). PatchUnresolvedImports revisits exactly these
	// sites once ResolvedImports is filled in, rather than rescanning
	// the emitted AST for bare identifiers — an ordinary local call is
	// indistinguishable from a resolution miss once lowered, so only
	// the sites recorded at the point of the miss can be told apart.
	PendingCalls []PendingCall
	// Raiseable is set when the module was declared with defexception
	// rather than defstruct.
	Raiseable bool
}

// PendingCall is one recorded resolution-miss call site, kept alive so
// a later pass can either qualify it once its import resolves or
// report it as a permanent miss.
type PendingCall struct {
	Name  string
	Arity int
	Call  *target.CallExpression
	Meta  ast.Meta
}

func newModuleRecord(name []string, source string) *ModuleRecord {
	return &ModuleRecord{
		Name:            name,
		Source:          source,
		Functions:       map[NameArity]bool{},
		Macros:          map[NameArity]bool{},
		Aliases:         map[string]string{},
		ResolvedImports: map[NameArity]string{},
	}
}

// DottedName joins Name with ".", the canonical module key.
func (m *ModuleRecord) DottedName() string {
	out := ""
	for i, seg := range m.Name {
		if i > 0 {
			out += "."
		}
		out += seg
	}
	return out
}

// ProtocolRecord mirrors spec.md §3's ProtocolRecord.
type ProtocolRecord struct {
	Name  string
	Spec  ast.Node // nil when the protocol was implicitly created by a defimpl
	Impls map[string]*target.Program
}

// Registry is the single mutable container. All mutations go through
// its exported methods, which take an internal mutex so a registry
// can also be shared safely if a caller chooses not to use the
// scratch/merge parallelism model.
type Registry struct {
	mu        sync.Mutex
	Root      string
	Env       env.Env
	modules   map[string]*ModuleRecord // keyed by DottedName
	protocols map[string]*ProtocolRecord
	stopped   bool
}

// New creates a Registry rooted at root, carrying the ambient
// environment the compilation was started with.
func New(root string, ambient env.Env) *Registry {
	return &Registry{
		Root:      root,
		Env:       ambient,
		modules:   map[string]*ModuleRecord{},
		protocols: map[string]*ProtocolRecord{},
	}
}

// UpdateEnv replaces the registry's ambient environment snapshot.
func (r *Registry) UpdateEnv(e env.Env) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Env = e
}

// Get returns the ambient environment snapshot.
func (r *Registry) Get() env.Env {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Env
}

// Stop marks the registry as finished; further mutation is a
// programmer error and panics, matching spec.md §4.7's "destroyed at
// end of compilation" lifecycle note.
func (r *Registry) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopped = true
}

func (r *Registry) assertLive() {
	if r.stopped {
		panic("registry: mutation after Stop")
	}
}
