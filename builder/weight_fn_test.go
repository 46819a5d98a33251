// Package builder_test contains unit tests for the WeightFn implementations.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/algoviz/builder"
)

// TestWeightFnConstructors verifies that WeightFn constructors panic on
// invalid parameters.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"ConstantWeightFn_negative", func() builder.WeightFn { return builder.ConstantWeightFn(-1) }},
		{"UniformWeightFn_minNegative", func() builder.WeightFn { return builder.UniformWeightFn(-1, 5) }},
		{"UniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
		{"SequenceWeightFn_empty", func() builder.WeightFn { return builder.SequenceWeightFn() }},
		{"SequenceWeightFn_negative", func() builder.WeightFn { return builder.SequenceWeightFn(1, -2) }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, func() { tc.constructor() })
		})
	}
}

// TestWeightFnBehavior covers the runtime behavior of each WeightFn.
func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()

	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	assert.Equal(t, int64(42), builder.ConstantWeightFn(42)(nil))

	u := builder.UniformWeightFn(3, 7)
	assert.Equal(t, int64(3), u(nil), "nil rng yields min")
	rng := rand.New(rand.NewSource(1))
	seen := map[int64]bool{}
	for i := 0; i < 500; i++ {
		w := u(rng)
		assert.GreaterOrEqual(t, w, int64(3))
		assert.LessOrEqual(t, w, int64(7))
		seen[w] = true
	}
	assert.Len(t, seen, 5, "both bounds are reachable")

	seq := builder.SequenceWeightFn(4, 3, 5)
	got := []int64{seq(nil), seq(nil), seq(nil), seq(nil)}
	assert.Equal(t, []int64{4, 3, 5, 4}, got)
}
