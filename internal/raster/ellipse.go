// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import "iter"

// EllipseQuadrant yields the offsets (x, y) with x, y >= 0 of the midpoint
// ellipse with horizontal radius a and vertical radius b.
//
// The walk starts at (a, 0) and ends at (0, b). The remaining quadrants are
// the reflections (±x, ±y). A zero radius degenerates to the axis segment
// along the other radius.
func EllipseQuadrant(a, b int) iter.Seq2[int, int] {
	a, b = abs(a), abs(b)

	return func(yield func(int, int) bool) {
		switch {
		case a == 0:
			for y := 0; y <= b; y++ {
				if !yield(0, y) {
					return
				}
			}
			return
		case b == 0:
			for x := a; x >= 0; x-- {
				if !yield(x, 0) {
					return
				}
			}
			return
		}

		a2 := int64(a) * int64(a)
		b2 := int64(b) * int64(b)

		// Zingl's error-term formulation: x runs from -a up to 0.
		x, y := int64(-a), int64(0)
		err := x*(2*b2+x) + b2
		for x <= 0 {
			if !yield(int(-x), int(y)) {
				return
			}
			e2 := 2 * err
			if e2 >= (2*x+1)*b2 {
				x++
				err += (2*x + 1) * b2
			}
			if e2 <= (2*y+1)*a2 {
				y++
				err += (2*y + 1) * a2
			}
		}

		// Flat ellipses stop early; finish the tip along the minor axis.
		for y < int64(b) {
			y++
			if !yield(0, int(y)) {
				return
			}
		}
	}
}
