// Package coerce implements the conversion registry: a per-session cache of
// reusable string-to-value converters, one per target cty type. The registry
// is an explicit object owned by the parse session rather than process-wide
// state, so parses stay reentrant; the insert-on-first-use cache is
// mutex-guarded for callers that share one registry across goroutines.
package coerce

import (
	"fmt"
	"sync"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// Converter turns literal attribute text into a value of a fixed target type.
type Converter func(s string) (cty.Value, error)

// Registry caches one Converter per target type.
type Registry struct {
	mu         sync.Mutex
	converters map[string]Converter
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{converters: make(map[string]Converter)}
}

// For returns the converter for the given target type, creating and caching
// it on first use.
func (r *Registry) For(ty cty.Type) Converter {
	key := ty.GoString()

	r.mu.Lock()
	defer r.mu.Unlock()
	if conv, ok := r.converters[key]; ok {
		return conv
	}
	conv := newConverter(ty)
	r.converters[key] = conv
	return conv
}

// Len returns the number of cached converters. Exposed for tests.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.converters)
}

// newConverter builds the converter for one target type. Primitive targets
// go through cty's standard string conversions ("5" to number, "true" to
// bool); collection and structural targets are read as JSON, which is the
// only literal syntax the input format defines for them.
func newConverter(ty cty.Type) Converter {
	if ty.IsPrimitiveType() {
		return func(s string) (cty.Value, error) {
			v, err := convert.Convert(cty.StringVal(s), ty)
			if err != nil {
				return cty.NilVal, fmt.Errorf("as %s: %w", ty.FriendlyName(), err)
			}
			return v, nil
		}
	}
	return func(s string) (cty.Value, error) {
		v, err := ctyjson.Unmarshal([]byte(s), ty)
		if err != nil {
			return cty.NilVal, fmt.Errorf("as %s from JSON: %w", ty.FriendlyName(), err)
		}
		return v, nil
	}
}
