package bt

import "github.com/zclconf/go-cty/cty"

// Compiled is the outcome of pushing attribute text through the template
// grammar. Exactly one of the two shapes applies: dynamic text compiles to
// an Expr, fully literal text is returned unescaped for the conversion
// registry to handle.
type Compiled struct {
	// Expr is the compiled expression for dynamic text, nil for literals.
	Expr Expr

	// Literal is the unescaped literal text when IsLiteral is true.
	Literal string

	// IsLiteral reports that the text contained no interpolation marker.
	IsLiteral bool
}

// Compiler is the boundary contract of the expression compiler collaborator.
// The parser consumes it, it does not own it; internal/exprs provides the
// default implementation. Compilation happens once per parameter, evaluation
// happens on every read.
type Compiler interface {
	// Compile parses src as template source, where line is the 1-based
	// source line the text starts on and want is the declared value type
	// the expression must produce.
	Compile(src, filename string, line int, want cty.Type) (Compiled, error)
}
