package binder

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/behaviortreego/internal/bt"
	"github.com/vk/behaviortreego/internal/bterror"
	"github.com/vk/behaviortreego/internal/coerce"
	"github.com/vk/behaviortreego/internal/cursor"
	"github.com/vk/behaviortreego/internal/exprs"
)

var waitType = &bt.TypeDescriptor{
	Name:     "Wait",
	Category: bt.CategoryLeaf,
	Params: []bt.ParamSpec{
		{Name: "duration", Type: cty.Number, Eval: true},
	},
}

func event(line int, attrs ...xml.Attr) cursor.Event {
	return cursor.Event{Kind: cursor.Start, Name: "Wait", Attrs: attrs, Line: line, Depth: 1}
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

func newBinder() *Binder {
	return New(exprs.NewCompiler(nil), coerce.NewRegistry())
}

func TestBind_LiteralConverted(t *testing.T) {
	t.Parallel()
	b := newBinder()

	params, err := b.Bind(waitType, event(3, attr("duration", "5")), "tree.xml")
	require.NoError(t, err)
	require.Len(t, params, 1)

	p := params["duration"]
	require.False(t, p.IsExpr())
	require.Equal(t, "5", p.Raw)
	require.True(t, p.Literal().RawEquals(cty.NumberIntVal(5)))
}

func TestBind_InterpolationCompiles(t *testing.T) {
	t.Parallel()
	b := newBinder()

	params, err := b.Bind(waitType, event(3, attr("duration", "${random(1, 5)}")), "tree.xml")
	require.NoError(t, err)

	p := params["duration"]
	require.True(t, p.IsExpr())
	require.Equal(t, "${random(1, 5)}", p.Expr().Source())
}

func TestBind_MissingAttribute(t *testing.T) {
	t.Parallel()
	b := newBinder()

	_, err := b.Bind(waitType, event(12), "patrol.xml")
	require.Error(t, err)

	var missing *bterror.MissingAttribute
	require.ErrorAs(t, err, &missing)
	require.Equal(t, 12, missing.Line)

	// The composed diagnostic names source, line, node type and parameter.
	msg := err.Error()
	require.Contains(t, msg, "patrol.xml")
	require.Contains(t, msg, ":12")
	require.Contains(t, msg, "Wait")
	require.Contains(t, msg, "duration")
}

func TestBind_ConversionFailureDiagnostic(t *testing.T) {
	t.Parallel()
	b := newBinder()

	_, err := b.Bind(waitType, event(4, attr("duration", "soon")), "patrol.xml")
	require.Error(t, err)

	var conv *bterror.ConversionFailure
	require.ErrorAs(t, err, &conv)
	require.Equal(t, "soon", conv.Raw)

	msg := err.Error()
	require.Contains(t, msg, "patrol.xml:4")
	require.Contains(t, msg, `"Wait"`)
	require.Contains(t, msg, `"duration"`)
	require.Contains(t, msg, `"soon"`)
}

func TestBind_CompileFailureDiagnostic(t *testing.T) {
	t.Parallel()
	b := newBinder()

	_, err := b.Bind(waitType, event(9, attr("duration", "${nonsense()}")), "patrol.xml")
	require.Error(t, err)

	var compile *bterror.ExpressionCompileFailure
	require.ErrorAs(t, err, &compile)

	msg := err.Error()
	require.Contains(t, msg, "patrol.xml:9")
	require.Contains(t, msg, "nonsense")
}
