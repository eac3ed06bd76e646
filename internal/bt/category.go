package bt

import "fmt"

// Category is the closed set of structural node shapes. Every registered
// node type belongs to exactly one category, and the category alone decides
// how the builder recurses into child elements.
type Category int

const (
	// CategoryLeaf nodes have no children.
	CategoryLeaf Category = iota
	// CategoryDecorator nodes have exactly one child.
	CategoryDecorator
	// CategoryParent nodes have zero or more ordered children.
	CategoryParent
)

// String returns the manifest keyword for the category.
func (c Category) String() string {
	switch c {
	case CategoryLeaf:
		return "leaf"
	case CategoryDecorator:
		return "decorator"
	case CategoryParent:
		return "parent"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// ParseCategory maps a manifest keyword to its Category. The keyword set is
// closed; anything else is an error for the caller to wrap.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "leaf":
		return CategoryLeaf, nil
	case "decorator":
		return CategoryDecorator, nil
	case "parent":
		return CategoryParent, nil
	default:
		return 0, fmt.Errorf("unknown category keyword %q (want leaf, decorator or parent)", s)
	}
}
