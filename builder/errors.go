// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Topology constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).
//
// Priority when multiple validations fail:
//   ErrTooFewVertices, then ErrInvalidProbability, then ErrNeedRandSource.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols,
// partition size) is smaller than the allowed minimum for the constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil *rand.Rand (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a build could not proceed, e.g. a nil
// constructor was passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")
