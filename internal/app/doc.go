// Package app wires the behavior tree toolchain together for the command
// line: it builds an isolated logger, loads and validates the node-type
// registry from manifest files, parses the requested tree, and reports the
// result. The library packages underneath never depend on this package.
package app
