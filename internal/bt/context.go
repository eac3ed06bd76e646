package bt

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/gocty"
)

// TaskContext is the per-load bundle handed to every bound expression: the
// controlled entity, the shared variable store, the shared random source, the
// permitted imports for compilation, the base location for referenced
// subtrees, and the message sink. Everything except the VarStore contents is
// immutable after construction.
type TaskContext struct {
	// Entity is the controlled entity, owned by the caller and referenced
	// here, never copied.
	Entity any

	// EntityKind is the taxonomy root name used to scope type resolution.
	EntityKind string

	// Vars is the mutable variable store shared with expressions.
	Vars *VarStore

	// Rand is the shared random source exposed to expressions.
	Rand *rand.Rand

	// Imports is the set of additional functions expressions may call,
	// keyed by call name. Functions outside this set (and the builtins)
	// fail compilation.
	Imports map[string]function.Function

	// BaseDir is the directory referenced subtrees are resolved against.
	BaseDir string

	// Logger is the message sink for this load.
	Logger *slog.Logger

	entityVal cty.Value
}

// NewTaskContext builds a context around the given entity. The entity is
// converted once into its cty representation for exposure as the `entity`
// variable; a nil entity becomes a null value. The variable store and random
// source are freshly created and shared by every expression of the load.
func NewTaskContext(entity any, entityKind, baseDir string, logger *slog.Logger) (*TaskContext, error) {
	entityVal := cty.NullVal(cty.DynamicPseudoType)
	if entity != nil {
		ty, err := gocty.ImpliedType(entity)
		if err != nil {
			return nil, fmt.Errorf("unable to infer cty type for entity: %w", err)
		}
		entityVal, err = gocty.ToCtyValue(entity, ty)
		if err != nil {
			return nil, fmt.Errorf("unable to convert entity to cty value: %w", err)
		}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskContext{
		Entity:     entity,
		EntityKind: entityKind,
		Vars:       NewVarStore(),
		Rand:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		BaseDir:    baseDir,
		Logger:     logger,
		entityVal:  entityVal,
	}, nil
}

// EntityValue returns the cty representation of the controlled entity.
func (tc *TaskContext) EntityValue() cty.Value {
	return tc.entityVal
}
