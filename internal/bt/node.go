package bt

// Node is one parsed element of a behavior tree. It is a tagged variant
// discriminated by Type.Category rather than an interface hierarchy: a leaf
// carries neither Child nor Children, a decorator carries exactly Child, a
// parent carries only Children in document order. The builder constructs
// nodes strictly after, and nested within, their parent's parse call, so a
// graph is always a tree with single ownership and no cycles.
type Node struct {
	// Type is the resolved descriptor for this node's tag.
	Type *TypeDescriptor

	// Params holds one bound value per declared parameter.
	Params map[string]*Param

	// Child is set for decorator nodes only.
	Child *Node

	// Children is set for parent nodes only, preserving document order.
	Children []*Node

	// Ref is set for root-reference nodes: the lazily resolved subtree
	// named by the node's "name" parameter.
	Ref *RootReference

	// Line is the 1-based source line of the element, kept for diagnostics
	// raised after parsing (for example by the execution runtime).
	Line int
}

// Name returns the node's tag name.
func (n *Node) Name() string {
	return n.Type.Name
}

// Category returns the node's structural category.
func (n *Node) Category() Category {
	return n.Type.Category
}

// Count returns the number of nodes in the subtree rooted at n, including n.
// Lazily referenced subtrees count as the single node that names them.
func (n *Node) Count() int {
	total := 1
	if n.Child != nil {
		total += n.Child.Count()
	}
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}
