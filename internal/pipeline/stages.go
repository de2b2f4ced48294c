package pipeline

import (
	"log"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/vela-lang/velac/internal/diagnostics"
	"github.com/vela-lang/velac/internal/env"
	"github.com/vela-lang/velac/internal/macro"
	"github.com/vela-lang/velac/internal/registry"
	"github.com/vela-lang/velac/internal/target"
	"github.com/vela-lang/velac/internal/translator"
)

// TranslateStage translates every file concurrently against a private
// Scratch registry (spec.md §5), using golang.org/x/sync/errgroup the
// way the rest of this corpus reaches for it for bounded fan-out.
type TranslateStage struct {
	Expander macro.Expander
	// ParallelFiles bounds concurrent file translation; 0 means
	// unbounded (errgroup's default, one goroutine per file).
	ParallelFiles int
}

func (s TranslateStage) Process(pc *PipelineContext) *PipelineContext {
	type result struct {
		file        string
		scratch     *registry.Scratch
		programs    []*target.Program
		diagnostics []*diagnostics.DiagnosticError
	}

	files := make([]string, 0, len(pc.Sources))
	for f := range pc.Sources {
		files = append(files, f)
	}
	sort.Strings(files)

	results := make([]result, len(files))
	g := new(errgroup.Group)
	if s.ParallelFiles > 0 {
		g.SetLimit(s.ParallelFiles)
	}
	ambient := env.New(pc.Root)

	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			program := pc.Sources[f]
			scratch := registry.NewScratch(pc.Root, f, ambient)
			ctx := translator.NewContext(scratch.Registry, s.Expander, f)
			log.Printf("translating %s (scratch %s)", f, scratch.ID)

			// Loose top-level forms that aren't themselves a module (a
			// stray expression, a defprotocol marker) are collected into
			// one synthesized program for this file; defmodule forms
			// register their own ModuleRecord.Body and are emitted later
			// by walking the merged Registry instead (spec.md §4.5).
			var loose []target.Node
			for _, stmt := range program.Statements {
				out, err := translator.Dispatch(ctx, ambient, stmt)
				if err != nil {
					log.Printf("scratch %s (%s): translation failed: %v", scratch.ID, f, err)
					return err
				}
				if _, ok := out.(*target.Program); ok {
					continue
				}
				loose = append(loose, out)
			}
			var programs []*target.Program
			if len(loose) > 0 {
				programs = []*target.Program{target.NewProgram(loose...)}
			}
			results[i] = result{file: f, scratch: scratch, programs: programs, diagnostics: ctx.Diagnostics}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		pc.Errors = append(pc.Errors, err)
		return pc
	}

	merged := registry.New(pc.Root, ambient)
	scratches := make([]*registry.Scratch, len(results))
	for i, r := range results {
		scratches[i] = r.scratch
		pc.Programs[r.file] = r.programs
		pc.Diagnostics = append(pc.Diagnostics, r.diagnostics...)
	}
	for _, err := range registry.Merge(merged, scratches...) {
		pc.Errors = append(pc.Errors, err)
	}
	pc.Registry = merged
	return pc
}

// ResolveImportsStage runs the Registry's second pass now that every
// file's module has its full Functions/Macros set (spec.md §4.5's
// "two-pass resolution"), then patches any call sites TranslateStage
// left as an unqualified local call because the import it belonged to
// named a module in a different file (translator.PatchUnresolvedImports).
type ResolveImportsStage struct{}

func (ResolveImportsStage) Process(pc *PipelineContext) *PipelineContext {
	if pc.Registry != nil {
		pc.Registry.ProcessImports()
		pc.Diagnostics = append(pc.Diagnostics, translator.PatchUnresolvedImports(pc.Registry)...)
	}
	return pc
}

// ProtocolDispatchStage assembles the final per-protocol dispatch
// programs (spec.md §4.6), once every defimpl across every file has
// been merged into the Registry.
type ProtocolDispatchStage struct{}

func (ProtocolDispatchStage) Process(pc *PipelineContext) *PipelineContext {
	if pc.Registry != nil {
		pc.ProtocolPrograms = translator.BuildProtocolDispatch(pc.Registry)
	}
	return pc
}
