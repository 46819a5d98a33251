// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Adds n vertices left to right on a horizontal line.
//   - Emits edges (i-1)—i for i=1..n-1 in increasing order.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import "fmt"

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, MinPathNodes, ErrTooFewVertices)
		}

		ids := make([]int, n)
		for i := range ids {
			x, y := linePoint(i, n)
			ids[i] = d.addVertex(cfg, x, y)
		}
		for i := 1; i < n; i++ {
			d.addEdge(cfg, ids[i-1], ids[i])
		}

		return nil
	}
}
