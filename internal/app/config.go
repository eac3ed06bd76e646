package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	TreePath      string // behavior definition document
	ManifestsPath string // node-type manifest .hcl files

	// EntityKind is the taxonomy root tags are resolved under. Empty means
	// only unrestricted types resolve.
	EntityKind string

	// CanonicalOut, when set, is where the re-serialized canonical form of
	// the parsed tree is written. "-" writes to the app's output writer.
	CanonicalOut string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.TreePath == "" {
		return nil, errors.New("TreePath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
