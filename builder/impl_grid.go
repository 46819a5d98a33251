// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Adds vertices in row-major order on a square lattice.
//   • For each cell emits the Right edge, then the Bottom edge, where present.
//
// Complexity: O(rows·cols) vertices and edges.

package builder

import "fmt"

// Grid returns a Constructor that builds a rows×cols 4-neighborhood grid.
func Grid(rows, cols int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		// cell (r,c) → vertex ID
		ids := make([]int, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				x, y := latticePoint(r, c, rows, cols)
				ids[r*cols+c] = d.addVertex(cfg, x, y)
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := ids[r*cols+c]
				if c+1 < cols {
					d.addEdge(cfg, u, ids[r*cols+c+1])
				}
				if r+1 < rows {
					d.addEdge(cfg, u, ids[(r+1)*cols+c])
				}
			}
		}

		return nil
	}
}
