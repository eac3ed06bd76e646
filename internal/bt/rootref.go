package bt

import (
	"fmt"
	"sync"
)

// ResolveFunc parses the referenced tree and returns its root node. Installed
// by the loader; the reference itself never performs I/O directly.
type ResolveFunc func() (*Node, error)

// RootReference names another tree to be parsed on demand. It behaves like a
// leaf in the referencing graph: the subtree it names is parsed fresh on the
// first Resolve call, not when the referencing graph is built. A failed
// resolve leaves the referencing graph untouched and may be retried; only a
// successful parse is cached.
type RootReference struct {
	// TreeName is the name of the referenced tree, relative to the load's
	// base location.
	TreeName string

	mu      sync.Mutex
	root    *Node
	resolve ResolveFunc
}

// NewRootReference builds a reference around the given resolve function.
func NewRootReference(treeName string, resolve ResolveFunc) *RootReference {
	return &RootReference{TreeName: treeName, resolve: resolve}
}

// Resolve returns the referenced tree's root, parsing it on first use.
func (r *RootReference) Resolve() (*Node, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.root != nil {
		return r.root, nil
	}
	if r.resolve == nil {
		return nil, fmt.Errorf("root reference %q has no resolver installed", r.TreeName)
	}
	root, err := r.resolve()
	if err != nil {
		return nil, fmt.Errorf("resolving tree %q: %w", r.TreeName, err)
	}
	r.root = root
	return root, nil
}

// Resolved returns the cached root, or nil if Resolve has not yet succeeded.
func (r *RootReference) Resolved() *Node {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.root
}
