// Package cursor provides a depth- and line-tracking token cursor over a
// behavior definition document. It reports element boundaries only
// (enter-element, exit-element, end of input); character data, comments and
// processing instructions are skipped. The whole input is read up front, so
// a parse performs exactly one blocking read and line numbers can be derived
// from byte offsets without re-reading.
package cursor

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
)

// Kind discriminates cursor events.
type Kind int

const (
	// Start is the opening boundary of an element.
	Start Kind = iota
	// End is the closing boundary of an element.
	End
)

// Event is one element boundary.
type Event struct {
	Kind Kind

	// Name is the element's tag name.
	Name string

	// Attrs are the element's attributes, Start events only.
	Attrs []xml.Attr

	// Line is the 1-based line the boundary starts on.
	Line int

	// Depth is the nesting depth of the element, 1 for the document root.
	// Start and End of the same element report the same depth.
	Depth int
}

// Attr returns the value of the named attribute and whether it is present.
func (e Event) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// Cursor walks one document. It is not safe for concurrent use; a parse is
// synchronous and single-threaded by design.
type Cursor struct {
	source     string
	dec        *xml.Decoder
	depth      int
	lineStarts []int
	lastLine   int
}

// New builds a cursor over src. source names the input in diagnostics.
func New(source string, src []byte) *Cursor {
	lineStarts := []int{0}
	for i, b := range src {
		if b == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}
	return &Cursor{
		source:     source,
		dec:        xml.NewDecoder(bytes.NewReader(src)),
		lineStarts: lineStarts,
		lastLine:   1,
	}
}

// Source returns the input's name for diagnostics.
func (c *Cursor) Source() string {
	return c.source
}

// Depth returns the current nesting depth: the number of elements entered
// and not yet exited.
func (c *Cursor) Depth() int {
	return c.depth
}

// Line returns the 1-based line of the most recently returned event.
func (c *Cursor) Line() int {
	return c.lastLine
}

// Next returns the next element boundary. At end of input it returns io.EOF;
// malformed input returns an error carrying the source name and line.
func (c *Cursor) Next() (Event, error) {
	for {
		offset := c.dec.InputOffset()
		tok, err := c.dec.Token()
		if err == io.EOF {
			return Event{}, io.EOF
		}
		if err != nil {
			line := c.lineAt(offset)
			if syntax, ok := err.(*xml.SyntaxError); ok {
				line = syntax.Line
			}
			return Event{}, fmt.Errorf("%s:%d: malformed document: %w", c.source, line, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			c.depth++
			c.lastLine = c.lineAt(offset)
			// The decoder accepts repeated attributes; a parameter must
			// bind exactly once, so a repeat is malformed input here.
			if dup := duplicateAttr(t.Attr); dup != "" {
				return Event{}, fmt.Errorf("%s:%d: element %q: duplicate attribute %q",
					c.source, c.lastLine, t.Name.Local, dup)
			}
			return Event{Kind: Start, Name: t.Name.Local, Attrs: t.Attr, Line: c.lastLine, Depth: c.depth}, nil
		case xml.EndElement:
			depth := c.depth
			c.depth--
			c.lastLine = c.lineAt(offset)
			return Event{Kind: End, Name: t.Name.Local, Line: c.lastLine, Depth: depth}, nil
		default:
			// Character data, comments, directives: structure is encoded
			// by nesting alone, so none of these carry meaning here.
		}
	}
}

// SkipToDepth consumes events until the nesting depth drops back to target.
// This is the tolerant skip used to advance past a leaf's nested content
// without interpreting it.
func (c *Cursor) SkipToDepth(target int) error {
	for c.depth > target {
		if _, err := c.Next(); err != nil {
			if err == io.EOF {
				return fmt.Errorf("%s:%d: unexpected end of input at depth %d", c.source, c.lastLine, c.depth)
			}
			return err
		}
	}
	return nil
}

// duplicateAttr returns the first attribute name appearing more than once,
// or "" when all names are distinct.
func duplicateAttr(attrs []xml.Attr) string {
	seen := make(map[string]struct{}, len(attrs))
	for _, a := range attrs {
		if _, ok := seen[a.Name.Local]; ok {
			return a.Name.Local
		}
		seen[a.Name.Local] = struct{}{}
	}
	return ""
}

// lineAt maps a byte offset to its 1-based line.
func (c *Cursor) lineAt(offset int64) int {
	i := sort.Search(len(c.lineStarts), func(i int) bool {
		return int64(c.lineStarts[i]) > offset
	})
	return i
}
