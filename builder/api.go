// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// api.go - public entry-point and the draft every constructor writes into.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in
//     order against one draft, then freezes it into an immutable core.Graph.
//   - Each constructor adds its own vertices; IDs are assigned globally
//     (0,1,2,... across constructors), so composing two constructors yields
//     two disjoint components, which is how disconnected fixtures are made.
//   - Every constructor lays its component out in its own square and the
//     draft shifts the next component to the right.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/algoviz/core"
)

// Constructor appends one deterministic component to the draft using the
// resolved builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Add vertices through d.addVertex so IDs and labels stay consistent.
//   - Preserve determinism for the same config and call order.
type Constructor func(d *draft, cfg builderConfig) error

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order and returns the resulting immutable graph.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor, plus O(V + E) to
//     freeze the draft.
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
//   - ErrConstructFailed for a nil constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	d := &draft{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		d.begin()
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return core.NewGraph(d.vertices, d.edges), nil
}

// draft is the mutable graph under construction.
type draft struct {
	vertices []core.Vertex
	edges    []core.Edge
	originX  float64 // left edge of the component being built
	width    float64 // widest x offset used by the current component
}

// begin starts a new component to the right of everything built so far.
func (d *draft) begin() {
	if len(d.vertices) > 0 {
		d.originX += d.width + componentGap
	}
	d.width = 0
}

// addVertex appends a vertex labeled by cfg.labelFn at local layout
// position (x, y) and returns its ID.
func (d *draft) addVertex(cfg builderConfig, x, y float64) int {
	return d.addNamedVertex(cfg.labelFn(len(d.vertices)), x, y)
}

// addNamedVertex is addVertex with an explicit label.
func (d *draft) addNamedVertex(label string, x, y float64) int {
	id := len(d.vertices)
	if x > d.width {
		d.width = x
	}
	d.vertices = append(d.vertices, core.Vertex{
		ID:    id,
		Label: label,
		X:     d.originX + x,
		Y:     y,
	})

	return id
}

// addEdge appends an undirected edge u—v with a weight drawn from cfg.
func (d *draft) addEdge(cfg builderConfig, u, v int) {
	d.edges = append(d.edges, core.Edge{From: u, To: v, Weight: cfg.weightFn(cfg.rng)})
}
