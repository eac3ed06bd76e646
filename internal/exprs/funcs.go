package exprs

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// builtinNames is the function set every expression may call regardless of
// the permitted import list.
var builtinNames = map[string]struct{}{
	"random": {},
	"now":    {},
}

// newRandomFunc builds the `random(lo, hi)` function over the task context's
// random source. Whole-number bounds draw a uniform integer in [lo, hi);
// fractional bounds draw a uniform float in the same half-open interval.
func newRandomFunc(rng *rand.Rand) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "lo", Type: cty.Number},
			{Name: "hi", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.Number),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			lo, _ := args[0].AsBigFloat().Float64()
			hi, _ := args[1].AsBigFloat().Float64()
			if hi <= lo {
				return cty.NilVal, fmt.Errorf("random: hi (%v) must be greater than lo (%v)", hi, lo)
			}
			if args[0].AsBigFloat().IsInt() && args[1].AsBigFloat().IsInt() {
				n := int64(lo) + rng.Int64N(int64(hi)-int64(lo))
				return cty.NumberIntVal(n), nil
			}
			return cty.NumberFloatVal(lo + rng.Float64()*(hi-lo)), nil
		},
	})
}

// nowFunc returns the current wall-clock time as fractional unix seconds.
var nowFunc = function.New(&function.Spec{
	Type: function.StaticReturnType(cty.Number),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		return cty.NumberFloatVal(float64(time.Now().UnixNano()) / float64(time.Second)), nil
	},
})
