package exprs

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"

	"github.com/vk/behaviortreego/internal/bt"
)

// Compiler compiles attribute text against a fixed permitted-import set. One
// compiler serves a whole load; it carries no per-expression state.
type Compiler struct {
	imports map[string]function.Function
}

// NewCompiler returns a compiler whose expressions may call the builtin
// functions plus the given imports.
func NewCompiler(imports map[string]function.Function) *Compiler {
	return &Compiler{imports: imports}
}

// Compile implements bt.Compiler.
func (c *Compiler) Compile(src, filename string, line int, want cty.Type) (bt.Compiled, error) {
	start := hcl.Pos{Line: line, Column: 1, Byte: 0}
	tmpl, diags := hclsyntax.ParseTemplate([]byte(src), filename, start)
	if diags.HasErrors() {
		return bt.Compiled{}, fmt.Errorf("template syntax: %w", diags)
	}

	if isLiteralTemplate(tmpl) {
		// A template with no interpolation folds to plain text. Evaluating
		// with a nil context is safe here and resolves "$${" escapes.
		v, diags := tmpl.Value(nil)
		if diags.HasErrors() {
			return bt.Compiled{}, fmt.Errorf("literal template: %w", diags)
		}
		return bt.Compiled{Literal: v.AsString(), IsLiteral: true}, nil
	}

	if err := c.checkReferences(tmpl); err != nil {
		return bt.Compiled{}, err
	}

	return bt.Compiled{Expr: &expr{src: src, tmpl: tmpl, want: want}}, nil
}

// checkReferences enforces the fixed input set at compile time: variable
// roots must be one of the declared inputs, and every called function must
// be a builtin or a permitted import.
func (c *Compiler) checkReferences(tmpl hclsyntax.Expression) error {
	for _, traversal := range tmpl.Variables() {
		root := traversal.RootName()
		if root != inputEntity && root != inputVars {
			return fmt.Errorf("unknown variable %q: expressions may only reference %q and %q",
				root, inputEntity, inputVars)
		}
	}

	for _, name := range calledFunctions(tmpl) {
		if _, ok := builtinNames[name]; ok {
			continue
		}
		if _, ok := c.imports[name]; ok {
			continue
		}
		return fmt.Errorf("call to function %q is not in the permitted import set", name)
	}
	return nil
}

// Names of the fixed expression inputs.
const (
	inputEntity = "entity"
	inputVars   = "vars"
)

// isLiteralTemplate reports whether the parsed template carries no
// interpolation at all, making its text plain literal content.
func isLiteralTemplate(e hclsyntax.Expression) bool {
	switch t := e.(type) {
	case *hclsyntax.LiteralValueExpr:
		return true
	case *hclsyntax.TemplateExpr:
		for _, part := range t.Parts {
			if _, ok := part.(*hclsyntax.LiteralValueExpr); !ok {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// funcCollector walks an expression AST gathering function call names.
type funcCollector struct {
	names map[string]struct{}
}

func (w *funcCollector) Enter(node hclsyntax.Node) hcl.Diagnostics {
	if call, ok := node.(*hclsyntax.FunctionCallExpr); ok {
		w.names[call.Name] = struct{}{}
	}
	return nil
}

func (w *funcCollector) Exit(node hclsyntax.Node) hcl.Diagnostics {
	return nil
}

// calledFunctions returns the unique function names called anywhere in the
// expression, sorted for deterministic diagnostics.
func calledFunctions(e hclsyntax.Expression) []string {
	w := &funcCollector{names: make(map[string]struct{})}
	hclsyntax.Walk(e, w)

	names := make([]string, 0, len(w.names))
	for name := range w.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
