// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds n vertices clockwise on a circle, starting at the top.
//   • Emits edges in stable order i—(i+1)%n for i=0..n-1.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import "fmt"

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}

		ids := addRing(d, cfg, n)
		for i := 0; i < n; i++ {
			d.addEdge(cfg, ids[i], ids[(i+1)%n])
		}

		return nil
	}
}

// addRing adds n vertices on the layout circle and returns their IDs.
func addRing(d *draft, cfg builderConfig, n int) []int {
	ids := make([]int, n)
	for i := range ids {
		x, y := circlePoint(i, n)
		ids[i] = d.addVertex(cfg, x, y)
	}

	return ids
}
