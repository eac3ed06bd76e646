package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/behaviortreego/internal/bt"
	"github.com/vk/behaviortreego/internal/ctxlog"
	"github.com/vk/behaviortreego/internal/encode"
	"github.com/vk/behaviortreego/internal/loader"
)

// Run parses the configured tree and reports its structure. With
// CanonicalOut set it also writes the re-serialized canonical form.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	baseDir := filepath.Dir(a.config.TreePath)
	treeName := strings.TrimSuffix(filepath.Base(a.config.TreePath), loader.TreeExt)

	tc, err := bt.NewTaskContext(nil, a.config.EntityKind, baseDir, a.logger)
	if err != nil {
		return fmt.Errorf("failed to build task context: %w", err)
	}

	ld := loader.New(a.registry, tc)
	root, err := ld.Parse(ctx, treeName)
	if err != nil {
		return fmt.Errorf("failed to parse behavior tree: %w", err)
	}

	leaves, decorators, parents := countByCategory(root)
	a.logger.Info("Behavior tree parsed.",
		"tree", treeName,
		"root", root.Name(),
		"nodes", root.Count(),
		"leaves", leaves,
		"decorators", decorators,
		"parents", parents,
	)

	if a.config.CanonicalOut != "" {
		canonical, err := encode.Graph(root)
		if err != nil {
			return fmt.Errorf("failed to serialize canonical form: %w", err)
		}
		if a.config.CanonicalOut == "-" {
			if _, err := a.outW.Write(canonical); err != nil {
				return err
			}
		} else if err := os.WriteFile(a.config.CanonicalOut, canonical, 0644); err != nil {
			return fmt.Errorf("failed to write canonical form: %w", err)
		}
		a.logger.Debug("Canonical form written.", "dest", a.config.CanonicalOut)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func countByCategory(n *bt.Node) (leaves, decorators, parents int) {
	switch n.Category() {
	case bt.CategoryLeaf:
		leaves++
	case bt.CategoryDecorator:
		decorators++
	case bt.CategoryParent:
		parents++
	}
	if n.Child != nil {
		l, d, p := countByCategory(n.Child)
		leaves, decorators, parents = leaves+l, decorators+d, parents+p
	}
	for _, c := range n.Children {
		l, d, p := countByCategory(c)
		leaves, decorators, parents = leaves+l, decorators+d, parents+p
	}
	return leaves, decorators, parents
}
