package builder

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vk/behaviortreego/internal/binder"
	"github.com/vk/behaviortreego/internal/bt"
	"github.com/vk/behaviortreego/internal/bterror"
	"github.com/vk/behaviortreego/internal/coerce"
	"github.com/vk/behaviortreego/internal/ctxlog"
	"github.com/vk/behaviortreego/internal/cursor"
	"github.com/vk/behaviortreego/internal/registry"
)

// RefResolver produces the lazy resolve function for a root-reference node
// naming treeName. Installed by the loader so that nested references parse
// through the same load pipeline; a nil resolver leaves references inert.
type RefResolver func(treeName string) bt.ResolveFunc

// Builder drives one load's parses. It is cheap to construct and carries no
// per-document state; a single builder may parse the top-level tree and any
// number of referenced subtrees.
type Builder struct {
	reg        *registry.Registry
	binder     *binder.Binder
	entityKind string
	refs       RefResolver
}

// New returns a builder resolving tags under entityKind, binding parameters
// through comp and conv.
func New(reg *registry.Registry, comp bt.Compiler, conv *coerce.Registry, entityKind string) *Builder {
	return &Builder{
		reg:        reg,
		binder:     binder.New(comp, conv),
		entityKind: entityKind,
	}
}

// WithRefResolver installs the resolver used for root-reference nodes and
// returns the builder.
func (b *Builder) WithRefResolver(refs RefResolver) *Builder {
	b.refs = refs
	return b
}

// Parse builds the graph for one document. source names the input in
// diagnostics; src is the document text, already read in full.
func (b *Builder) Parse(ctx context.Context, source string, src []byte) (*bt.Node, error) {
	logger := ctxlog.FromContext(ctx)

	c := cursor.New(source, src)
	root, err := b.parseNode(c)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, fmt.Errorf("%s: document contains no elements", source)
	}

	// A document has exactly one root; trailing elements are never dropped.
	ev, err := c.Next()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err == nil {
		return nil, fmt.Errorf("%s:%d: unexpected element %q after the root element",
			source, ev.Line, ev.Name)
	}

	logger.Debug("Parsed behavior tree.", "source", source, "root", root.Name(), "nodes", root.Count())
	return root, nil
}

// parseNode advances the cursor to the next element start at the caller's
// depth and builds that node. Reaching the end of the current sibling level
// (or of the input) first returns a nil node; this is how parents and the
// top level detect termination.
func (b *Builder) parseNode(c *cursor.Cursor) (*bt.Node, error) {
	for {
		ev, err := c.Next()
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		switch ev.Kind {
		case cursor.End:
			return nil, nil
		case cursor.Start:
			return b.buildNode(c, ev)
		}
	}
}

// buildNode constructs the node for the Start event ev, recursing into
// children per the resolved category.
func (b *Builder) buildNode(c *cursor.Cursor, ev cursor.Event) (*bt.Node, error) {
	desc, err := b.reg.Resolve(ev.Name, b.entityKind)
	if err != nil {
		var unresolved *bterror.UnresolvedType
		if errors.As(err, &unresolved) {
			unresolved.Source = c.Source()
			unresolved.Line = ev.Line
		}
		return nil, err
	}

	params, err := b.binder.Bind(desc, ev, c.Source())
	if err != nil {
		return nil, err
	}

	node := &bt.Node{Type: desc, Params: params, Line: ev.Line}

	switch desc.Category {
	case bt.CategoryLeaf:
		// Nested content under a leaf carries no structure; skip it
		// tolerantly until the cursor exits this element.
		if err := c.SkipToDepth(ev.Depth - 1); err != nil {
			return nil, err
		}

	case bt.CategoryDecorator:
		child, err := b.parseNode(c)
		if err != nil {
			return nil, err
		}
		if child == nil {
			return nil, &bterror.ChildArity{Source: c.Source(), Line: ev.Line, NodeType: desc.Name, Got: 0}
		}
		extra, err := b.parseNode(c)
		if err != nil {
			return nil, err
		}
		if extra != nil {
			return nil, &bterror.ChildArity{Source: c.Source(), Line: ev.Line, NodeType: desc.Name, Got: 2}
		}
		node.Child = child

	case bt.CategoryParent:
		node.Children = make([]*bt.Node, 0)
		for {
			child, err := b.parseNode(c)
			if err != nil {
				return nil, err
			}
			if child == nil {
				break
			}
			node.Children = append(node.Children, child)
		}
	}

	if desc.Ref {
		if err := b.attachRef(c, ev, node); err != nil {
			return nil, err
		}
	}

	return node, nil
}

// attachRef wires the lazy subtree reference for a ref-kind node. The name
// parameter must be a literal: the referenced file is located before any
// expression context exists.
func (b *Builder) attachRef(c *cursor.Cursor, ev cursor.Event, node *bt.Node) error {
	p, ok := node.Params["name"]
	if !ok {
		return &bterror.MissingAttribute{Source: c.Source(), Line: ev.Line, NodeType: node.Name(), Param: "name"}
	}
	if p.IsExpr() {
		return &bterror.ConversionFailure{
			Source:   c.Source(),
			Line:     ev.Line,
			NodeType: node.Name(),
			Param:    "name",
			Raw:      p.Raw,
			Cause:    fmt.Errorf("tree reference names must be literal text"),
		}
	}
	treeName := p.Literal().AsString()
	var resolve bt.ResolveFunc
	if b.refs != nil {
		resolve = b.refs(treeName)
	}
	node.Ref = bt.NewRootReference(treeName, resolve)
	return nil
}
