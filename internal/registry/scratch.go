package registry

import (
	"log"

	"github.com/google/uuid"

	"github.com/vela-lang/velac/internal/ast"
	"github.com/vela-lang/velac/internal/diagnostics"
	"github.com/vela-lang/velac/internal/env"
)

// Scratch is a private, per-file registry used by the parallel
// compilation stage (internal/pipeline's TranslateStage) described in spec.md §5: "each
// file's translation must complete against a private scratch registry
// which is merged at the import-resolution pass; merges are by
// module-name key with last-writer-wins forbidden." Each Scratch
// carries a uuid identity purely so the driver can correlate log lines
// and partial errors back to the file that produced them when several
// run concurrently.
type Scratch struct {
	*Registry
	ID   uuid.UUID
	File string
}

// NewScratch creates an empty registry private to one source file.
func NewScratch(root, file string, ambient env.Env) *Scratch {
	return &Scratch{
		Registry: New(root, ambient),
		ID:       uuid.New(),
		File:     file,
	}
}

// Merge folds a scratch registry's modules and protocols into dst.
// Duplicate module names across files are fatal, per spec.md §5.
func Merge(dst *Registry, scratches ...*Scratch) []error {
	var errs []error
	for _, s := range scratches {
		for _, m := range s.AllModules() {
			if existing, ok := dst.GetModule(m.DottedName()); ok && existing.Source != m.Source {
				log.Printf("scratch %s (%s): module %q collides with %s", s.ID, s.File, m.DottedName(), existing.Source)
				errs = append(errs, diagnostics.NameCollision(ast.Meta{File: m.Source}, m.DottedName(), existing.Source, m.Source))
				continue
			}
			dst.mu.Lock()
			dst.modules[m.DottedName()] = m
			dst.mu.Unlock()
		}
		for _, p := range s.AllProtocols() {
			dst.mu.Lock()
			existing, ok := dst.protocols[p.Name]
			if !ok {
				dst.protocols[p.Name] = p
			} else {
				if p.Spec != nil {
					existing.Spec = p.Spec
				}
				for t, impl := range p.Impls {
					existing.Impls[t] = impl
				}
			}
			dst.mu.Unlock()
		}
	}
	return errs
}
