// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// layout.go — deterministic coordinates for fixture vertices.
//
// Every component occupies the square [0,LayoutSpan]² in local coordinates;
// draft.begin shifts consecutive components to the right. Engines never
// read coordinates, they are carried through for rendering.

package builder

import "math"

// circlePoint returns the i-th of n points on the circle inscribed in the
// layout square, starting at the top and going clockwise.
func circlePoint(i, n int) (x, y float64) {
	r := LayoutSpan / 2
	theta := 2*math.Pi*float64(i)/float64(n) - math.Pi/2

	return r + r*math.Cos(theta), r + r*math.Sin(theta)
}

// linePoint returns the i-th of n points spread evenly along a horizontal
// line through the middle of the layout square.
func linePoint(i, n int) (x, y float64) {
	if n == 1 {
		return 0, LayoutSpan / 2
	}

	return LayoutSpan * float64(i) / float64(n-1), LayoutSpan / 2
}

// center is the middle of the layout square.
func center() (x, y float64) {
	return LayoutSpan / 2, LayoutSpan / 2
}

// latticePoint places cell (r, c) of a rows×cols lattice with square cells.
func latticePoint(r, c, rows, cols int) (x, y float64) {
	cells := max(rows, cols) - 1
	if cells == 0 {
		return 0, 0
	}
	step := LayoutSpan / float64(cells)

	return float64(c) * step, float64(r) * step
}
