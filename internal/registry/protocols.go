package registry

import "github.com/vela-lang/velac/internal/ast"
import "github.com/vela-lang/velac/internal/target"

// AddProtocol registers (or updates the spec of) a protocol record.
func (r *Registry) AddProtocol(name string, spec ast.Node) *ProtocolRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assertLive()
	return r.protocolLocked(name, spec)
}

func (r *Registry) protocolLocked(name string, spec ast.Node) *ProtocolRecord {
	rec, ok := r.protocols[name]
	if !ok {
		rec = &ProtocolRecord{Name: name, Impls: map[string]*target.Program{}}
		r.protocols[name] = rec
	}
	if spec != nil {
		rec.Spec = spec
	}
	return rec
}

// AddProtocolImpl registers an implementation body for forType under
// protocol. Per spec.md §3's invariant "For every defimpl P, for: T
// encountered, protocols[P].impls[T] is set, creating the protocol
// record if absent", this creates a protocol record with a nil Spec
// when no defprotocol was seen first (spec.md §8 boundary case).
func (r *Registry) AddProtocolImpl(protocol, forType string, body *target.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assertLive()

	rec := r.protocolLocked(protocol, nil)
	rec.Impls[forType] = body
}

// GetProtocol looks up a protocol record by name.
func (r *Registry) GetProtocol(name string) (*ProtocolRecord, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.protocols[name]
	return rec, ok
}

// AllProtocols returns every registered protocol record.
func (r *Registry) AllProtocols() []*ProtocolRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*ProtocolRecord, 0, len(r.protocols))
	for _, p := range r.protocols {
		out = append(out, p)
	}
	return out
}
