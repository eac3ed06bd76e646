package cursor

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleDoc = `<Sequence>
  <Wait duration="5"/>
  <Inverter>
    <Condition check="true"/>
  </Inverter>
</Sequence>
`

func TestCursor_ReportsBoundariesAndDepth(t *testing.T) {
	t.Parallel()
	c := New("sample.xml", []byte(sampleDoc))

	type boundary struct {
		kind  Kind
		name  string
		depth int
		line  int
	}
	want := []boundary{
		{Start, "Sequence", 1, 1},
		{Start, "Wait", 2, 2},
		{End, "Wait", 2, 2},
		{Start, "Inverter", 2, 3},
		{Start, "Condition", 3, 4},
		{End, "Condition", 3, 4},
		{End, "Inverter", 2, 5},
		{End, "Sequence", 1, 6},
	}

	for _, w := range want {
		ev, err := c.Next()
		require.NoError(t, err)
		require.Equal(t, w.kind, ev.Kind)
		require.Equal(t, w.name, ev.Name)
		require.Equal(t, w.depth, ev.Depth)
		require.Equal(t, w.line, ev.Line)
	}

	_, err := c.Next()
	require.ErrorIs(t, err, io.EOF)
	require.Equal(t, 0, c.Depth())
}

func TestCursor_AttrLookup(t *testing.T) {
	t.Parallel()
	c := New("sample.xml", []byte(`<Wait duration="5" comment="n/a"/>`))

	ev, err := c.Next()
	require.NoError(t, err)

	v, ok := ev.Attr("duration")
	require.True(t, ok)
	require.Equal(t, "5", v)

	_, ok = ev.Attr("missing")
	require.False(t, ok)
}

func TestCursor_SkipToDepth(t *testing.T) {
	t.Parallel()
	c := New("sample.xml", []byte(sampleDoc))

	ev, err := c.Next()
	require.NoError(t, err)
	require.Equal(t, "Sequence", ev.Name)

	ev, err = c.Next()
	require.NoError(t, err)
	require.Equal(t, "Wait", ev.Name)

	// Skip the rest of Wait, then everything else under Sequence.
	require.NoError(t, c.SkipToDepth(1))
	require.NoError(t, c.SkipToDepth(0))
	require.Equal(t, 0, c.Depth())

	_, err = c.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestCursor_MalformedInput(t *testing.T) {
	t.Parallel()
	c := New("broken.xml", []byte("<Sequence>\n  <Wait>\n</Sequence>"))

	_, err := c.Next()
	require.NoError(t, err)
	_, err = c.Next()
	require.NoError(t, err)

	_, err = c.Next()
	require.Error(t, err)
	require.Contains(t, err.Error(), "broken.xml")
	require.Contains(t, err.Error(), "malformed document")
}

func TestCursor_DuplicateAttributeFails(t *testing.T) {
	t.Parallel()
	c := New("dup.xml", []byte("<Sequence>\n  <Wait duration=\"1\" duration=\"2\"/>\n</Sequence>"))

	_, err := c.Next()
	require.NoError(t, err)

	_, err = c.Next()
	require.Error(t, err)
	require.Contains(t, err.Error(), "dup.xml:2")
	require.Contains(t, err.Error(), `"Wait"`)
	require.Contains(t, err.Error(), `duplicate attribute "duration"`)
}

func TestCursor_SkipPastEOFFails(t *testing.T) {
	t.Parallel()
	c := New("trunc.xml", []byte(`<Sequence><Wait/></Sequence>`))

	_, err := c.Next()
	require.NoError(t, err)

	// Ask to skip below the document root; input ends first.
	err = c.SkipToDepth(-1)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected end of input")
}
