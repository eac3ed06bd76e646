// Package builder is the recursive-descent driver that turns a behavior
// definition document into a task graph. For every element it asks the type
// registry to resolve the tag under the active entity kind, asks the binder
// to fill the declared parameters, then recurses into child elements
// according to the resolved category: leaves skip nested content, decorators
// take exactly one child, parents collect ordered children until the sibling
// level ends.
//
// The builder never executes anything and never returns a partially built
// graph: the first failure aborts the parse with a composed diagnostic.
package builder
