// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Adds n vertices on a circle.
//   • Emits every unordered pair {i,j}, i<j, in lexicographic order.
//
// Complexity: O(n) vertices + O(n²) edges.

package builder

import "fmt"

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}

		ids := addRing(d, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d.addEdge(cfg, ids[i], ids[j])
			}
		}

		return nil
	}
}
