// SPDX-License-Identifier: MIT
// Package: sparsepath/builder
//
// weight_fn.go: edge weight distributions.

package builder

import (
	"fmt"
	"math/rand"
)

// Default weight range of generated edges, inclusive.
const (
	DefaultMinWeight int64 = 1
	DefaultMaxWeight int64 = 10
)

// WeightFn produces one edge weight. rng may be nil for deterministic
// constructors; implementations must then return a fixed value.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn draws uniformly from [DefaultMinWeight, DefaultMaxWeight].
// With a nil rng it returns DefaultMinWeight.
func DefaultWeightFn(rng *rand.Rand) int64 {
	return UniformWeightFn(DefaultMinWeight, DefaultMaxWeight)(rng)
}

// ConstantWeightFn always returns value. Panics on a negative value.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}
	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn draws an integer uniformly from [min, max].
// Panics unless 0 ≤ min ≤ max. With a nil rng it returns min.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	span := max - min + 1
	return func(rng *rand.Rand) int64 {
		if rng == nil || span == 1 {
			return min
		}
		return min + rng.Int63n(span)
	}
}
