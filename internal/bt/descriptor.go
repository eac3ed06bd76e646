package bt

import "github.com/zclconf/go-cty/cty"

// ParamSpec declares a single named parameter of a node type.
type ParamSpec struct {
	// Name is the attribute name that supplies the parameter.
	Name string

	// Type is the value type the bound parameter must produce.
	Type cty.Type

	// Eval marks the parameter as expression-wrapped: attribute text is
	// always pushed through the template grammar first, and even a literal
	// is wrapped into the scripted calling convention so that reads look
	// the same either way.
	Eval bool

	// Description is optional manifest documentation.
	Description string
}

// TypeDescriptor describes one constructible node kind: its tag name, its
// structural category, and its ordered parameter signature. Descriptors are
// immutable once registered.
type TypeDescriptor struct {
	// Name is the element tag that resolves to this descriptor.
	Name string

	// Entity scopes the descriptor to a controlled-entity taxonomy root.
	// The empty string means the type is usable under any root.
	Entity string

	// Category decides the child shape (leaf, decorator, parent).
	Category Category

	// Params is the declared parameter signature, in manifest order.
	Params []ParamSpec

	// Ref marks the descriptor as a root-reference kind: a leaf-like node
	// whose "name" parameter names another tree to load on demand.
	Ref bool

	// Description is optional manifest documentation.
	Description string
}

// Param returns the spec with the given name, or nil.
func (d *TypeDescriptor) Param(name string) *ParamSpec {
	for i := range d.Params {
		if d.Params[i].Name == name {
			return &d.Params[i]
		}
	}
	return nil
}
