package bt

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// Expr is a compiled scripted value. Implementations re-evaluate against the
// TaskContext on every Value call; the parser compiles expressions once but
// never evaluates them early.
type Expr interface {
	// Value evaluates the expression and converts the result to the
	// parameter's declared type.
	Value(tc *TaskContext) (cty.Value, error)

	// Source returns the original attribute text the expression was
	// compiled from.
	Source() string
}

// Param is one bound parameter of a node: either a converted literal or a
// compiled expression, never both, never neither. Raw preserves the original
// attribute text for diagnostics and serialization.
type Param struct {
	Spec ParamSpec
	Raw  string

	literal cty.Value
	expr    Expr
}

// NewLiteralParam binds a parameter to an already converted constant.
func NewLiteralParam(spec ParamSpec, raw string, v cty.Value) *Param {
	return &Param{Spec: spec, Raw: raw, literal: v}
}

// NewExprParam binds a parameter to a compiled expression.
func NewExprParam(spec ParamSpec, raw string, e Expr) *Param {
	return &Param{Spec: spec, Raw: raw, expr: e}
}

// IsExpr reports whether the parameter is bound to a compiled expression
// rather than a constant.
func (p *Param) IsExpr() bool {
	return p.expr != nil
}

// Expr returns the compiled expression, or nil for a literal binding.
func (p *Param) Expr() Expr {
	return p.expr
}

// Literal returns the constant value of a literal binding. It panics for an
// expression binding; callers check IsExpr first.
func (p *Param) Literal() cty.Value {
	if p.expr != nil {
		panic(fmt.Sprintf("parameter %q is bound to an expression, not a literal", p.Spec.Name))
	}
	return p.literal
}

// Read produces the parameter's current value. Constants return immediately;
// expressions are evaluated fresh against tc, so repeated reads of a scripted
// parameter may legitimately differ.
func (p *Param) Read(tc *TaskContext) (cty.Value, error) {
	if p.expr == nil {
		return p.literal, nil
	}
	v, err := p.expr.Value(tc)
	if err != nil {
		return cty.NilVal, fmt.Errorf("reading parameter %q: %w", p.Spec.Name, err)
	}
	return v, nil
}
