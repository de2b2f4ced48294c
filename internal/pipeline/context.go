package pipeline

import (
	"github.com/vela-lang/velac/internal/ast"
	"github.com/vela-lang/velac/internal/diagnostics"
	"github.com/vela-lang/velac/internal/registry"
	"github.com/vela-lang/velac/internal/target"
)

// Processor is one stage of a compilation Pipeline.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// PipelineContext threads compilation state between stages: the
// teacher's LSP pipeline carried parse/semantic diagnostics the same
// way (see DESIGN.md), generalized here to a multi-file translation
// run.
type PipelineContext struct {
	Root string
	// Sources is the parsed input: file path -> top-level source AST.
	// Parsing itself is out of scope (spec.md Non-goals); a loader
	// upstream of the pipeline is responsible for populating this.
	Sources map[string]*ast.Program

	Registry *registry.Registry

	// Programs is filled in by the translate stage: file path -> at most
	// one program holding that file's loose top-level forms. Modules are
	// not listed here; the emit stage reads them from the Registry.
	Programs map[string][]*target.Program

	// ProtocolPrograms is filled in by the protocol-dispatch stage.
	ProtocolPrograms []*target.Program

	// Outputs is filled in by the emit stage: output file path -> text.
	Outputs map[string]string

	Errors []error

	// Diagnostics collects every non-fatal diagnostic raised during
	// the run (spec.md §7's Resolution miss, currently the only kind
	// that isn't fatal) for a driver to surface to tooling. Unlike
	// Errors, these never abort a compile.
	Diagnostics []*diagnostics.DiagnosticError
}

// NewPipelineContext creates the initial context a driver hands to
// Pipeline.Run.
func NewPipelineContext(root string, sources map[string]*ast.Program) *PipelineContext {
	return &PipelineContext{
		Root:     root,
		Sources:  sources,
		Programs: map[string][]*target.Program{},
		Outputs:  map[string]string{},
	}
}
