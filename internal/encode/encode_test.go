package encode_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/behaviortreego/internal/encode"
	"github.com/vk/behaviortreego/internal/testutil"
)

func TestGraph_RoundTripsEveryNodeKind(t *testing.T) {
	t.Parallel()
	reg := testutil.CoreRegistry(t)

	const doc = `
<Selector>
  <Sequence>
    <Condition check="${vars.alert}"/>
    <Wait duration="${random(1, 5)}"/>
    <Log message="tick ${vars.n}"/>
  </Sequence>
  <Inverter>
    <Condition check="false"/>
  </Inverter>
  <Repeat count="3">
    <TODO description="hi"/>
  </Repeat>
  <SubTree name="patrol"/>
  <Sequence/>
</Selector>`

	first := testutil.ParseString(t, reg, t.TempDir(), doc)
	require.NoError(t, first.Err)

	canonical, err := encode.Graph(first.Root)
	require.NoError(t, err)

	second := testutil.ParseString(t, reg, t.TempDir(), string(canonical))
	require.NoError(t, second.Err)

	testutil.RequireEqualGraphs(t, first.Root, second.Root)
}

func TestGraph_AttributeTextSurvivesEscaping(t *testing.T) {
	t.Parallel()
	reg := testutil.CoreRegistry(t)

	first := testutil.ParseString(t, reg, t.TempDir(),
		`<Log message="a &lt; b &amp; $${c}"/>`)
	require.NoError(t, first.Err)
	require.Equal(t, "a < b & ${c}", first.Root.Params["message"].Literal().AsString())

	canonical, err := encode.Graph(first.Root)
	require.NoError(t, err)

	second := testutil.ParseString(t, reg, t.TempDir(), string(canonical))
	require.NoError(t, second.Err)
	testutil.RequireEqualGraphs(t, first.Root, second.Root)
}
