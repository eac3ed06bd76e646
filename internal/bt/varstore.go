package bt

import (
	"sync"

	"github.com/zclconf/go-cty/cty"
)

// VarStore is the mutable variable store shared between the caller and every
// bound expression of a load. Expressions read it through snapshots; the
// execution runtime writes it between ticks. All access is mutex-guarded so a
// store may be shared across concurrently resolving subtrees.
type VarStore struct {
	mu   sync.RWMutex
	vars map[string]cty.Value
}

// NewVarStore returns an empty store.
func NewVarStore() *VarStore {
	return &VarStore{vars: make(map[string]cty.Value)}
}

// Set stores a value under name, replacing any previous value.
func (s *VarStore) Set(name string, v cty.Value) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vars[name] = v
}

// Get returns the value stored under name and whether it exists.
func (s *VarStore) Get(name string) (cty.Value, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.vars[name]
	return v, ok
}

// Snapshot returns the current contents as a single cty object value,
// suitable for exposure as the `vars` variable in an evaluation context.
// An empty store snapshots to the empty object.
func (s *VarStore) Snapshot() cty.Value {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.vars) == 0 {
		return cty.EmptyObjectVal
	}
	attrs := make(map[string]cty.Value, len(s.vars))
	for k, v := range s.vars {
		attrs[k] = v
	}
	return cty.ObjectVal(attrs)
}
