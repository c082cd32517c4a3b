// Package param implements the parameter manager: it flattens the
// heterogeneous primitives registered by the coordinator into one
// contiguous real vector P, with a stable (entity id, local index) to
// global index map and a parallel fixed mask, the way the teacher's
// fem.Domain assigns global equation numbers to each node's degrees of
// freedom during SetEqs.
package param

import (
	"github.com/go-constraints/gcs/entity"
	"github.com/go-constraints/gcs/gcserr"
)

// entry records where one registered entity's parameters live in P.
type entry struct {
	id    string
	kind  entity.Kind
	base  int
	count int
}

// Manager owns the parameter vector P, the fixed mask, and the id/index
// bookkeeping. It is not safe for concurrent use: exactly one solve
// owns it at a time (spec.md §5).
type Manager struct {
	p         []float64
	fixedMask []bool
	entries   map[string]*entry
	order     []string
}

// NewManager returns an empty parameter manager.
func NewManager() *Manager {
	return &Manager{entries: make(map[string]*entry)}
}

// Len returns n, the current length of P.
func (m *Manager) Len() int { return len(m.p) }

// Register appends the entity's initial parameter values to P, records
// its base index, and extends the fixed mask. It fails with
// gcserr.DuplicateId if id is already registered.
func (m *Manager) Register(id string, kind entity.Kind, initial []float64, fixed bool) (int, error) {
	if _, exists := m.entries[id]; exists {
		return 0, gcserr.New(gcserr.DuplicateId, "entity %q already registered", id)
	}
	base := len(m.p)
	m.p = append(m.p, initial...)
	for range initial {
		m.fixedMask = append(m.fixedMask, fixed)
	}
	m.entries[id] = &entry{id: id, kind: kind, base: base, count: len(initial)}
	m.order = append(m.order, id)
	return base, nil
}

// Registered reports whether id has been registered.
func (m *Manager) Registered(id string) bool {
	_, ok := m.entries[id]
	return ok
}

// GlobalIndex returns the global index of (entityId, localIdx), or
// (0, false) if the entity is unknown or the local index is out of
// range.
func (m *Manager) GlobalIndex(entityId string, localIdx int) (int, bool) {
	e, ok := m.entries[entityId]
	if !ok || localIdx < 0 || localIdx >= e.count {
		return 0, false
	}
	return e.base + localIdx, true
}

// BaseIndex returns the base (first) global index of entityId.
func (m *Manager) BaseIndex(entityId string) (int, bool) {
	e, ok := m.entries[entityId]
	if !ok {
		return 0, false
	}
	return e.base, true
}

// P returns the live parameter vector. Callers that need a value that
// survives subsequent mutation should use Snapshot instead.
func (m *Manager) P() []float64 { return m.p }

// FixedMask returns the live fixed mask, parallel to P().
func (m *Manager) FixedMask() []bool { return m.fixedMask }

// Snapshot returns a copy of P, for use before a tentative step so it
// can be restored if the step is rejected.
func (m *Manager) Snapshot() []float64 {
	cp := make([]float64, len(m.p))
	copy(cp, m.p)
	return cp
}

// Restore overwrites P with a previously taken snapshot. It ignores
// the fixed mask: this is a revert to an earlier legal state, not a
// caller-directed write.
func (m *Manager) Restore(p []float64) {
	copy(m.p, p)
}

// Write sets P[i] = v. It fails with gcserr.InvalidOperation if index i
// is fixed.
func (m *Manager) Write(i int, v float64) error {
	if m.fixedMask[i] {
		return gcserr.New(gcserr.InvalidOperation, "parameter at index %d is fixed", i)
	}
	m.p[i] = v
	return nil
}

// ApplyStep adds step to P component-wise, silently skipping any
// index masked as fixed (spec.md §4.4 step 5). step must have the
// same length as P.
func (m *Manager) ApplyStep(step []float64) {
	for i, s := range step {
		if m.fixedMask[i] {
			continue
		}
		m.p[i] += s
	}
}

// SyncToEntity copies entityId's slice of P back into p, in local
// parameter order. It fails with gcserr.DimensionMismatch if p's
// parameter count disagrees with what was registered.
func (m *Manager) SyncToEntity(entityId string, p entity.Params) error {
	e, ok := m.entries[entityId]
	if !ok {
		return gcserr.New(gcserr.UnknownReference, "entity %q is not registered", entityId)
	}
	values := p.Values()
	if len(values) != e.count {
		return gcserr.New(gcserr.DimensionMismatch, "entity %q has %d registered parameters but primitive exposes %d", entityId, e.count, len(values))
	}
	p.SetValues(m.p[e.base : e.base+e.count])
	return nil
}

// Ids returns all registered entity ids in registration order.
func (m *Manager) Ids() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}
