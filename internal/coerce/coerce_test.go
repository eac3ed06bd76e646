package coerce

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestRegistry_PrimitiveConversions(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()

	v, err := reg.For(cty.Number)("5")
	require.NoError(t, err)
	require.True(t, v.RawEquals(cty.NumberIntVal(5)))

	v, err = reg.For(cty.Bool)("true")
	require.NoError(t, err)
	require.True(t, v.RawEquals(cty.True))

	v, err = reg.For(cty.String)("hi")
	require.NoError(t, err)
	require.Equal(t, "hi", v.AsString())
}

func TestRegistry_CachesOneConverterPerType(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()

	_, err := reg.For(cty.Number)("1")
	require.NoError(t, err)
	_, err = reg.For(cty.Number)("2")
	require.NoError(t, err)
	require.Equal(t, 1, reg.Len())

	_, err = reg.For(cty.Bool)("false")
	require.NoError(t, err)
	require.Equal(t, 2, reg.Len())
}

func TestRegistry_CollectionLiteralsAreJSON(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()

	v, err := reg.For(cty.List(cty.String))(`["a", "b"]`)
	require.NoError(t, err)
	require.Equal(t, 2, v.LengthInt())
	require.Equal(t, "a", v.Index(cty.NumberIntVal(0)).AsString())
}

func TestRegistry_ConversionFailure(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()

	_, err := reg.For(cty.Number)("not-a-number")
	require.Error(t, err)
	require.Contains(t, err.Error(), "number")
}
