// Package registry implements the type registry: the closed mapping from an
// element tag to the node-kind descriptors that can construct it. The
// registry is built explicitly at start-up, either from HCL manifest files
// or by programmatic registration, and is never discovered by scanning
// loaded types at run time.
//
// Resolution is a pure lookup scoped by the caller's controlled-entity kind:
// a tag must match exactly one descriptor whose entity restriction is empty
// or equal to that kind. Zero and multiple matches are both hard failures;
// there is no silent default.
package registry
