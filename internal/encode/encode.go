// Package encode renders a parsed task graph back to its canonical textual
// form: one element per node, parameters as attributes in declared order,
// children nested in document order. Literal parameters serialize as their
// original literal text and compiled parameters as their original source
// text, so re-parsing the output reproduces the graph.
package encode

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/vk/behaviortreego/internal/bt"
)

// Graph serializes the tree rooted at root.
func Graph(root *bt.Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")

	if err := writeNode(enc, root); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func writeNode(enc *xml.Encoder, n *bt.Node) error {
	start := xml.StartElement{Name: xml.Name{Local: n.Name()}}
	for _, spec := range n.Type.Params {
		p, ok := n.Params[spec.Name]
		if !ok {
			return fmt.Errorf("node %q: declared parameter %q is unbound", n.Name(), spec.Name)
		}
		start.Attr = append(start.Attr, xml.Attr{
			Name:  xml.Name{Local: spec.Name},
			Value: p.Raw,
		})
	}

	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if n.Child != nil {
		if err := writeNode(enc, n.Child); err != nil {
			return err
		}
	}
	for _, c := range n.Children {
		if err := writeNode(enc, c); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}
