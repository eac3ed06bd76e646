package registry

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/ext/typeexpr"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/behaviortreego/internal/bt"
	"github.com/vk/behaviortreego/internal/bterror"
	"github.com/vk/behaviortreego/internal/ctxlog"
	"github.com/vk/behaviortreego/internal/fsutil"
	"github.com/vk/behaviortreego/internal/schema"
)

// LoadManifests walks manifestsPath for .hcl files and registers every node
// block found in them.
func (r *Registry) LoadManifests(ctx context.Context, manifestsPath string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Registry loading node-type manifests...", "path", manifestsPath)

	filePaths, err := fsutil.FindFilesByExtension(manifestsPath, ".hcl")
	if err != nil {
		logger.Error("Failed to walk manifests directory", "path", manifestsPath, "error", err)
		return err
	}
	if len(filePaths) == 0 {
		logger.Warn("No .hcl manifest files found in path", "path", manifestsPath)
		return nil
	}

	parser := hclparse.NewParser()
	loaded := 0
	for _, filePath := range filePaths {
		hclFile, diags := parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return fmt.Errorf("failed to parse manifest file %s: %w", filePath, diags)
		}

		var config schema.ManifestConfig
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &config); diags.HasErrors() {
			return fmt.Errorf("failed to decode manifest file %s: %w", filePath, diags)
		}

		for _, block := range config.Nodes {
			desc, err := translateNodeBlock(block, filePath)
			if err != nil {
				return err
			}
			if err := r.Register(desc); err != nil {
				return fmt.Errorf("manifest file %s: %w", filePath, err)
			}
			loaded++
		}
		logger.Debug("Loaded node types from manifest file", "file", filePath, "nodes", len(config.Nodes))
	}

	logger.Info("Registry loaded successfully.", "node_types_loaded", loaded)
	return nil
}

// translateNodeBlock turns a raw manifest block into an immutable descriptor.
func translateNodeBlock(block *schema.NodeBlock, filePath string) (*bt.TypeDescriptor, error) {
	category, err := bt.ParseCategory(block.Category)
	if err != nil {
		return nil, &bterror.UnsupportedCategory{
			Source:   filePath,
			NodeType: block.Name,
			Category: block.Category,
		}
	}

	params := make([]bt.ParamSpec, 0, len(block.Params))
	for _, p := range block.Params {
		// Manifest type keywords (string, number, bool, list(string), ...)
		// resolve through HCL's own type expression grammar.
		ty, diags := typeexpr.Type(p.Type)
		if diags.HasErrors() {
			return nil, fmt.Errorf("manifest file %s: node %q, param %q: %w", filePath, block.Name, p.Name, diags)
		}
		params = append(params, bt.ParamSpec{
			Name:        p.Name,
			Type:        ty,
			Eval:        p.Eval,
			Description: p.Description,
		})
	}

	return &bt.TypeDescriptor{
		Name:        block.Name,
		Entity:      block.Entity,
		Category:    category,
		Params:      params,
		Ref:         block.Ref,
		Description: block.Description,
	}, nil
}
