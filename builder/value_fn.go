// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/forcelayout/core"
)

// DefaultLinkValue is the value of every link when no ValueFn is set.
const DefaultLinkValue = core.DefaultLinkValue

// ValueFn produces a signed link value from an optional RNG. It must be
// deterministic for a given RNG state.
type ValueFn func(rng *rand.Rand) float64

// DefaultValueFn always returns DefaultLinkValue.
func DefaultValueFn(_ *rand.Rand) float64 {
	return DefaultLinkValue
}

// ConstantValueFn always yields v; any sign is allowed. Panics on NaN/Inf.
func ConstantValueFn(v float64) ValueFn {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("ConstantValueFn: value must be finite, got %g", v))
	}
	return func(_ *rand.Rand) float64 { return v }
}

// UniformValueFn samples uniformly in [min, max). Panics if max < min.
// Without an RNG it yields the midpoint.
func UniformValueFn(min, max float64) ValueFn {
	if max < min || math.IsNaN(min) || math.IsNaN(max) {
		panic(fmt.Sprintf("UniformValueFn: require min ≤ max, got min=%g, max=%g", min, max))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return (min + max) / 2
		}
		return min + rng.Float64()*(max-min)
	}
}

// SignedValueFn draws |value| from magnitude and flips the sign with
// probability pNegative, giving a mix of reinforcing and inhibiting links.
// Panics if magnitude is nil or pNegative is outside [0,1].
func SignedValueFn(magnitude ValueFn, pNegative float64) ValueFn {
	if magnitude == nil {
		panic("SignedValueFn: nil magnitude")
	}
	if !(pNegative >= 0 && pNegative <= 1) {
		panic(fmt.Sprintf("SignedValueFn: pNegative must be in [0,1], got %g", pNegative))
	}
	return func(rng *rand.Rand) float64 {
		v := math.Abs(magnitude(rng))
		switch {
		case pNegative == 1:
			return -v
		case rng != nil && rng.Float64() < pNegative:
			return -v
		default:
			return v
		}
	}
}

// WithConstantValue sets every link value to v.
func WithConstantValue(v float64) BuilderOption {
	return WithValueFn(ConstantValueFn(v))
}

// WithUniformValue sets link values ∼ U[min,max).
func WithUniformValue(min, max float64) BuilderOption {
	return WithValueFn(UniformValueFn(min, max))
}

// WithSignedValue sets |value| ∼ U[min,max) with a pNegative chance of a
// negative sign.
func WithSignedValue(min, max, pNegative float64) BuilderOption {
	return WithValueFn(SignedValueFn(UniformValueFn(min, max), pNegative))
}
