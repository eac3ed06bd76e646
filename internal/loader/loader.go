// Package loader is the entry point for loading behavior trees from a base
// location. Load itself performs no I/O: it hands back a root reference that
// reads and parses the named tree file the first time the execution runtime
// resolves it. Nested tree references resolve through the same pipeline,
// which is what makes recursive inclusion work without eager loading.
package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/behaviortreego/internal/bt"
	"github.com/vk/behaviortreego/internal/builder"
	"github.com/vk/behaviortreego/internal/coerce"
	"github.com/vk/behaviortreego/internal/ctxlog"
	"github.com/vk/behaviortreego/internal/exprs"
	"github.com/vk/behaviortreego/internal/registry"
)

// TreeExt is the file extension of behavior definition documents.
const TreeExt = ".xml"

// Loader resolves tree names against a registry and a task context. One
// loader serves one load session; the conversion registry cache is shared
// across every tree the session touches.
type Loader struct {
	reg     *registry.Registry
	tc      *bt.TaskContext
	builder *builder.Builder
}

// New builds a loader for the given registry and task context.
func New(reg *registry.Registry, tc *bt.TaskContext) *Loader {
	l := &Loader{reg: reg, tc: tc}
	comp := exprs.NewCompiler(tc.Imports)
	l.builder = builder.New(reg, comp, coerce.NewRegistry(), tc.EntityKind).
		WithRefResolver(l.resolveFunc)
	return l
}

// Load returns a lazily resolving reference to the named tree. The file
// <BaseDir>/<treeName>.xml is only read and parsed on first Resolve; a
// reference that fails to resolve reports its own error and leaves any
// already-built referencing graph intact.
func (l *Loader) Load(treeName string) *bt.RootReference {
	return bt.NewRootReference(treeName, l.resolveFunc(treeName))
}

// Parse reads and parses one tree immediately. Used by callers that want the
// graph up front (the CLI, subtree prefetching) rather than lazy resolution.
func (l *Loader) Parse(ctx context.Context, treeName string) (*bt.Node, error) {
	path := filepath.Join(l.tc.BaseDir, treeName+TreeExt)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Reading behavior tree file.", "path", path)

	// The single blocking read of this parse.
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tree %q: %w", treeName, err)
	}
	return l.builder.Parse(ctx, filepath.Base(path), src)
}

// ParseSource parses an in-memory document, bypassing file resolution.
func (l *Loader) ParseSource(ctx context.Context, source string, src []byte) (*bt.Node, error) {
	return l.builder.Parse(ctx, source, src)
}

// resolveFunc builds the deferred parse for one tree name. The context a
// lazy resolve runs under is the load's logger context, not the caller's
// cancellation scope: a parse runs to completion or failure.
func (l *Loader) resolveFunc(treeName string) bt.ResolveFunc {
	return func() (*bt.Node, error) {
		ctx := ctxlog.WithLogger(context.Background(), l.tc.Logger)
		return l.Parse(ctx, treeName)
	}
}
