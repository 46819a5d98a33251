// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// impl_star.go — implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • The center is added first (so it gets the lowest ID of the component)
//     and placed in the middle; the n-1 leaves follow on a circle.
//   • Emits spokes center—leaf in leaf order.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import "fmt"

// Star returns a Constructor that builds a star with one center and n-1 leaves.
func Star(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, MinStarNodes, ErrTooFewVertices)
		}

		cx, cy := center()
		hub := d.addVertex(cfg, cx, cy)
		leaves := addRing(d, cfg, n-1)
		for _, leaf := range leaves {
			d.addEdge(cfg, hub, leaf)
		}

		return nil
	}
}
