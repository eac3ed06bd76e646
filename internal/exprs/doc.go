// Package exprs is the default expression compiler behind the bt.Compiler
// boundary. Attribute text is parsed with the HCL template grammar: text
// without an interpolation marker is literal (a literal "${" is written
// "$${"), text with one compiles to an expression that is re-evaluated
// against the TaskContext on every read.
//
// Expressions see two variables, `entity` and `vars`, the builtin functions
// `random` and `now`, and whatever the caller placed in the permitted import
// set. A call to any other function, or a reference to any other variable
// root, fails at compile time.
package exprs
