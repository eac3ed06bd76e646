// Package bt defines the in-memory model of a parsed behavior tree: the
// closed node categories, the type descriptors that drive parsing, the bound
// parameter values, and the per-load TaskContext that scripted parameters are
// evaluated against.
//
// The parser in internal/builder produces these values; the execution runtime
// (out of scope for this repository) consumes them tick by tick. Nothing in
// this package performs I/O.
package bt
