package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/vk/behaviortreego/internal/bt"
)

// graphShape is the comparable projection of a node: category structure,
// ordered children, and parameter bindings (literals by value, compiled
// expressions by source text).
type graphShape struct {
	Type     string
	Category string
	Params   map[string]paramShape
	Child    *graphShape
	Children []*graphShape
	Ref      string
}

type paramShape struct {
	Raw    string
	IsExpr bool
	Value  string
}

func shapeOf(n *bt.Node) *graphShape {
	if n == nil {
		return nil
	}
	s := &graphShape{
		Type:     n.Name(),
		Category: n.Category().String(),
		Params:   make(map[string]paramShape, len(n.Params)),
	}
	for name, p := range n.Params {
		ps := paramShape{Raw: p.Raw, IsExpr: p.IsExpr()}
		if p.IsExpr() {
			ps.Value = p.Expr().Source()
		} else {
			ps.Value = p.Literal().GoString()
		}
		s.Params[name] = ps
	}
	if n.Ref != nil {
		s.Ref = n.Ref.TreeName
	}
	s.Child = shapeOf(n.Child)
	for _, c := range n.Children {
		s.Children = append(s.Children, shapeOf(c))
	}
	return s
}

// RequireEqualGraphs fails the test unless the two graphs agree in category
// structure, child order, and parameter bindings.
func RequireEqualGraphs(t *testing.T, want, got *bt.Node) {
	t.Helper()
	if diff := cmp.Diff(shapeOf(want), shapeOf(got)); diff != "" {
		require.Fail(t, "graph mismatch", "(-want +got):\n%s", diff)
	}
}
