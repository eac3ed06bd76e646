// Package schema declares the HCL shapes of node-type manifest files. The
// structs here are raw decode targets; internal/registry translates them
// into bt.TypeDescriptor values.
package schema

import "github.com/hashicorp/hcl/v2"

// ParamBlock declares one named parameter of a node type.
//
//	param "duration" {
//	  type = number
//	  eval = true
//	}
type ParamBlock struct {
	Name        string         `hcl:"name,label"`
	Type        hcl.Expression `hcl:"type"`
	Eval        bool           `hcl:"eval,optional"`
	Description string         `hcl:"description,optional"`
}

// NodeBlock declares one node type: its tag name (the block label), its
// structural category, an optional taxonomy root restriction, and its
// ordered parameter signature.
type NodeBlock struct {
	Name        string        `hcl:"name,label"`
	Category    string        `hcl:"category"`
	Entity      string        `hcl:"entity,optional"`
	Ref         bool          `hcl:"ref,optional"`
	Description string        `hcl:"description,optional"`
	Params      []*ParamBlock `hcl:"param,block"`
}

// ManifestConfig is the top-level structure of a manifest file.
type ManifestConfig struct {
	Nodes []*NodeBlock `hcl:"node,block"`
	Body  hcl.Body     `hcl:",remain"`
}
