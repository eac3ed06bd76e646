package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/behaviortreego/internal/bt"
	"github.com/vk/behaviortreego/internal/ctxlog"
)

// Validate performs a strict integrity pass over every registered
// descriptor: parameter names must be unique and non-empty within a type,
// and every parameter must carry a concrete or dynamic value type. Run once
// after registration, before any parse.
func (r *Registry) Validate(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, desc := range r.Types() {
		seen := make(map[string]struct{}, len(desc.Params))
		for _, p := range desc.Params {
			if p.Name == "" {
				errs = append(errs, fmt.Sprintf("node type '%s': parameter with empty name", desc.Name))
				continue
			}
			if _, dup := seen[p.Name]; dup {
				errs = append(errs, fmt.Sprintf("node type '%s': duplicate parameter '%s'", desc.Name, p.Name))
			}
			seen[p.Name] = struct{}{}

			if p.Type.Equals(cty.NilType) {
				errs = append(errs, fmt.Sprintf("node type '%s': parameter '%s' has no value type", desc.Name, p.Name))
			}
		}

		if desc.Ref {
			if desc.Category != bt.CategoryLeaf {
				errs = append(errs, fmt.Sprintf("node type '%s': ref types must be leaf, got %s", desc.Name, desc.Category))
			}
			if p := desc.Param("name"); p == nil || !p.Type.Equals(cty.String) {
				errs = append(errs, fmt.Sprintf("node type '%s': ref types must declare a string parameter 'name'", desc.Name))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	logger.Debug("Registry validation passed.", "node_types", len(r.Types()))
	return nil
}
