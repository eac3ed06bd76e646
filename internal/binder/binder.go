// Package binder resolves one node's declared parameters from the attributes
// of its element, choosing between literal conversion and compiled-expression
// binding. Child slots are not parameters; the builder fills those from
// nested elements.
package binder

import (
	"github.com/vk/behaviortreego/internal/bt"
	"github.com/vk/behaviortreego/internal/bterror"
	"github.com/vk/behaviortreego/internal/coerce"
	"github.com/vk/behaviortreego/internal/cursor"
)

// Binder binds parameters for a single load, sharing one compiler and one
// conversion registry across every node.
type Binder struct {
	compiler bt.Compiler
	coerce   *coerce.Registry
}

// New returns a binder over the given compiler and conversion registry.
func New(compiler bt.Compiler, conv *coerce.Registry) *Binder {
	return &Binder{compiler: compiler, coerce: conv}
}

// Bind resolves every declared parameter of desc from the attributes of the
// Start event ev. Each parameter binds exactly once: attribute text is
// pushed through the template grammar, so expression-wrapped and plain
// parameters take the same detection path; text with an interpolation marker
// binds as a compiled expression, anything else converts as a literal of the
// declared type. The first failure aborts the bind; there is no partial
// result.
func (b *Binder) Bind(desc *bt.TypeDescriptor, ev cursor.Event, source string) (map[string]*bt.Param, error) {
	params := make(map[string]*bt.Param, len(desc.Params))

	for _, spec := range desc.Params {
		raw, ok := ev.Attr(spec.Name)
		if !ok {
			return nil, &bterror.MissingAttribute{
				Source:   source,
				Line:     ev.Line,
				NodeType: desc.Name,
				Param:    spec.Name,
			}
		}

		compiled, err := b.compiler.Compile(raw, source, ev.Line, spec.Type)
		if err != nil {
			return nil, &bterror.ExpressionCompileFailure{
				Source:   source,
				Line:     ev.Line,
				NodeType: desc.Name,
				Param:    spec.Name,
				Raw:      raw,
				Cause:    err,
			}
		}

		if !compiled.IsLiteral {
			params[spec.Name] = bt.NewExprParam(spec, raw, compiled.Expr)
			continue
		}

		v, err := b.coerce.For(spec.Type)(compiled.Literal)
		if err != nil {
			return nil, &bterror.ConversionFailure{
				Source:   source,
				Line:     ev.Line,
				NodeType: desc.Name,
				Param:    spec.Name,
				Raw:      raw,
				Cause:    err,
			}
		}
		// An expression-wrapped parameter keeps the same calling convention
		// for constants: bt.Param.Read serves literal and scripted bindings
		// through one path.
		params[spec.Name] = bt.NewLiteralParam(spec, raw, v)
	}

	return params, nil
}
