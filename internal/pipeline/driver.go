package pipeline

import (
	"github.com/vela-lang/velac/internal/ast"
	"github.com/vela-lang/velac/internal/macro"
)

// Compile runs the full translate/resolve/dispatch/emit pipeline over
// a set of already-parsed source programs and returns the rendered
// output files, keyed by path. Parsing itself is out of scope (spec.md
// Non-goals); callers (cmd/velac) are responsible for populating
// sources.
func Compile(root string, sources map[string]*ast.Program, expander macro.Expander) *PipelineContext {
	return CompileWithLimit(root, sources, expander, 0)
}

// CompileWithLimit is Compile with an explicit bound on how many files
// TranslateStage translates concurrently (velac.yaml's parallel_files;
// 0 means unbounded).
func CompileWithLimit(root string, sources map[string]*ast.Program, expander macro.Expander, parallelFiles int) *PipelineContext {
	p := New(
		TranslateStage{Expander: expander, ParallelFiles: parallelFiles},
		ResolveImportsStage{},
		ProtocolDispatchStage{},
		EmitStage{},
	)
	return p.Run(NewPipelineContext(root, sources))
}
