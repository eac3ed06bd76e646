// Package bterror defines the closed parse-failure taxonomy. Every error
// renders as a single diagnostic string carrying the source name, the line,
// the offending node type and parameter where applicable, the raw attribute
// text where applicable, and the underlying cause. All of them are fatal for
// the parse that raised them; nothing here is recovered or defaulted.
package bterror

import "fmt"

// MissingAttribute reports a declared parameter with no matching attribute on
// the element.
type MissingAttribute struct {
	Source   string
	Line     int
	NodeType string
	Param    string
}

func (e *MissingAttribute) Error() string {
	return fmt.Sprintf("%s:%d: node %q: required parameter %q is missing",
		e.Source, e.Line, e.NodeType, e.Param)
}

// UnresolvedType reports a tag that matched zero or more than one descriptor
// under the active taxonomy root.
type UnresolvedType struct {
	Source  string
	Line    int
	Tag     string
	Entity  string
	Matches int
}

func (e *UnresolvedType) Error() string {
	if e.Matches == 0 {
		return fmt.Sprintf("%s:%d: tag %q does not resolve to any registered type under entity kind %q",
			e.Source, e.Line, e.Tag, e.Entity)
	}
	return fmt.Sprintf("%s:%d: tag %q is ambiguous: %d registered types match under entity kind %q",
		e.Source, e.Line, e.Tag, e.Matches, e.Entity)
}

// UnsupportedCategory reports a descriptor whose category keyword falls
// outside the closed leaf/decorator/parent set. Raised at manifest load, so
// Source names the manifest file.
type UnsupportedCategory struct {
	Source   string
	NodeType string
	Category string
}

func (e *UnsupportedCategory) Error() string {
	return fmt.Sprintf("%s: node %q: unsupported category %q (want leaf, decorator or parent)",
		e.Source, e.NodeType, e.Category)
}

// ConversionFailure reports literal attribute text that could not be
// converted to the parameter's declared type.
type ConversionFailure struct {
	Source   string
	Line     int
	NodeType string
	Param    string
	Raw      string
	Cause    error
}

func (e *ConversionFailure) Error() string {
	return fmt.Sprintf("%s:%d: node %q, parameter %q: cannot convert literal %q: %v",
		e.Source, e.Line, e.NodeType, e.Param, e.Raw, e.Cause)
}

func (e *ConversionFailure) Unwrap() error { return e.Cause }

// ExpressionCompileFailure reports script text that failed to compile under
// the fixed input and permitted-import context.
type ExpressionCompileFailure struct {
	Source   string
	Line     int
	NodeType string
	Param    string
	Raw      string
	Cause    error
}

func (e *ExpressionCompileFailure) Error() string {
	return fmt.Sprintf("%s:%d: node %q, parameter %q: cannot compile expression %q: %v",
		e.Source, e.Line, e.NodeType, e.Param, e.Raw, e.Cause)
}

func (e *ExpressionCompileFailure) Unwrap() error { return e.Cause }

// ChildArity reports a decorator element whose child element count is not
// exactly one.
type ChildArity struct {
	Source   string
	Line     int
	NodeType string
	Got      int
}

func (e *ChildArity) Error() string {
	return fmt.Sprintf("%s:%d: decorator %q must have exactly one child element, found %d",
		e.Source, e.Line, e.NodeType, e.Got)
}
