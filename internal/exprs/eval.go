package exprs

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"

	"github.com/vk/behaviortreego/internal/bt"
)

// expr is a compiled template bound to its declared result type.
type expr struct {
	src  string
	tmpl hclsyntax.Expression
	want cty.Type
}

// Source implements bt.Expr.
func (e *expr) Source() string {
	return e.src
}

// Value implements bt.Expr. The evaluation context is rebuilt on every call
// so that reads observe the current variable store contents and draw fresh
// values from the shared random source.
func (e *expr) Value(tc *bt.TaskContext) (cty.Value, error) {
	funcs := make(map[string]function.Function, len(tc.Imports)+len(builtinNames))
	for name, fn := range tc.Imports {
		funcs[name] = fn
	}
	funcs["random"] = newRandomFunc(tc.Rand)
	funcs["now"] = nowFunc

	ectx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			inputEntity: tc.EntityValue(),
			inputVars:   tc.Vars.Snapshot(),
		},
		Functions: funcs,
	}

	v, diags := e.tmpl.Value(ectx)
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("evaluating %q: %w", e.src, diags)
	}

	converted, err := convert.Convert(v, e.want)
	if err != nil {
		return cty.NilVal, fmt.Errorf("expression %q produced %s, want %s: %w",
			e.src, v.Type().FriendlyName(), e.want.FriendlyName(), err)
	}
	return converted, nil
}
