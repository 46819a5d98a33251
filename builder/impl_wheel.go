// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices): a rim of n-1 vertices plus a hub.
//   • The hub is added first; the rim follows on a circle.
//   • Emits rim edges first (i—(i+1)%(n-1)), then spokes hub—rim[i].
//
// Complexity: O(n) vertices + O(2n-2) edges.

package builder

import "fmt"

// Wheel returns a Constructor that builds the wheel W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}

		cx, cy := center()
		hub := d.addVertex(cfg, cx, cy)
		rim := addRing(d, cfg, n-1)
		for i := range rim {
			d.addEdge(cfg, rim[i], rim[(i+1)%len(rim)])
		}
		for _, v := range rim {
			d.addEdge(cfg, hub, v)
		}

		return nil
	}
}
