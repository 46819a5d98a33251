// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// weight_fn.go — edge-weight generators.

package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}
	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max]
// inclusive. Panics if min < 0 or max < min. With a nil rng it yields min,
// keeping unseeded builds deterministic.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}
		return min + rng.Int63n(max-min+1)
	}
}

// SequenceWeightFn cycles through ws in order, one value per edge. It
// ignores the RNG and is handy for hand-checked fixtures. Panics if ws is
// empty or holds a negative weight. The position in ws is state of the
// returned function, so build one per graph.
func SequenceWeightFn(ws ...int64) WeightFn {
	if len(ws) == 0 {
		panic("SequenceWeightFn: at least one weight is required")
	}
	for _, w := range ws {
		if w < 0 {
			panic(fmt.Sprintf("SequenceWeightFn: weights must be ≥ 0, got %d", w))
		}
	}
	next := 0
	return func(_ *rand.Rand) int64 {
		w := ws[next%len(ws)]
		next++
		return w
	}
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
func WithConstantWeight(w int64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[min,max] via UniformWeightFn.
func WithUniformWeight(min, max int64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}
