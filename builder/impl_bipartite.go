// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// impl_bipartite.go — implementation of CompleteBipartite(n1,n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left side labeled "{leftPrefix}{i}" in the left column, right side
//     "{rightPrefix}{j}" in the right column; left vertices are added first.
//   • Emits every cross pair L_i—R_j, i asc, inner j asc.
//
// Complexity: O(n1 + n2) vertices + O(n1·n2) edges.

package builder

import (
	"fmt"
	"strconv"
)

// CompleteBipartite returns a Constructor for the complete bipartite graph K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n1 < MinPartitionSize || n2 < MinPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, MinPartitionSize, ErrTooFewVertices)
		}

		left := addColumn(d, cfg.leftPrefix, n1, 0)
		right := addColumn(d, cfg.rightPrefix, n2, LayoutSpan)
		for _, u := range left {
			for _, v := range right {
				d.addEdge(cfg, u, v)
			}
		}

		return nil
	}
}

// addColumn adds n vertices labeled prefix0..prefix{n-1} top to bottom at x.
func addColumn(d *draft, prefix string, n int, x float64) []int {
	ids := make([]int, n)
	for i := range ids {
		y := LayoutSpan / 2
		if n > 1 {
			y = LayoutSpan * float64(i) / float64(n-1)
		}
		ids[i] = d.addNamedVertex(prefix+strconv.Itoa(i), x, y)
	}

	return ids
}
