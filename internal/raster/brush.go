// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

// Run is the horizontal run X0..X1 (inclusive) on row offset DY.
type Run struct {
	DY     int
	X0, X1 int
}

// Brush returns the rows of a round brush width pixels across, top row
// first, as runs relative to the pixel the brush is stamped on.
//
// An odd width 2r+1 is the disc x² + y² <= r² centered on that pixel. An
// even width 2k is the disc of radius k centered on the corner above and
// left of it, so it covers offsets -k..k-1 on both axes. Either way a
// straight stroke is exactly width pixels thick. Widths below 2 give the
// single pixel.
//
// width must be below 2^31.
func Brush(width int) []Run {
	if width < 2 {
		return []Run{{}}
	}
	runs := make([]Run, 0, width)
	if width%2 == 1 {
		r := width / 2
		for dy := -r; dy <= r; dy++ {
			hw := HalfWidth(r, r, dy)
			runs = append(runs, Run{DY: dy, X0: -hw, X1: hw})
		}
		return runs
	}

	// Pixel (dx, dy) is in when (2dx+1)² + (2dy+1)² <= width², so every
	// row is an odd span t of doubled offsets: dx in -(t+1)/2 .. (t-1)/2.
	k := width / 2
	w2 := uint64(width) * uint64(width)
	for dy := -k; dy < k; dy++ {
		j := absU(2*dy + 1)
		t := isqrt(w2 - j*j)
		if t%2 == 0 {
			t--
		}
		runs = append(runs, Run{DY: dy, X0: -int(t+1) / 2, X1: int(t-1) / 2})
	}
	return runs
}
