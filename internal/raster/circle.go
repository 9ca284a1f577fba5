// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import "iter"

// CircleOctant yields the offsets (x, y) with 0 <= x <= y of the midpoint
// circle of radius r, walking from (0, r) towards the diagonal.
//
// The other seven octants are the reflections (±x, ±y) and (±y, ±x) of the
// yielded offsets. A negative radius is treated as its absolute value and a
// zero radius yields the single offset (0, 0).
func CircleOctant(r int) iter.Seq2[int, int] {
	r = abs(r)

	return func(yield func(int, int) bool) {
		x, y := 0, r
		d := 1 - r
		for x <= y {
			if !yield(x, y) {
				return
			}
			x++
			if d < 0 {
				d += 2*x + 1
			} else {
				y--
				d += 2*(x-y) + 1
			}
		}
	}
}

// CircleIn yields the pixels of the midpoint circle of radius r centered on
// (cx, cy), all eight octants, that fall inside w. It visits only positions
// inside w, so huge radii cost no more than small ones. Pixels on octant
// borders may be yielded more than once.
//
// In column x of the first octant the circle plots the largest y with
// 4x² + (2y-1)² <= 4r², the closed form of the CircleOctant walk.
func CircleIn(cx, cy, r int, w Window) iter.Seq2[int, int] {
	ur := absU(r)

	return func(yield func(int, int) bool) {
		// Last column of the octant: the largest x with x <= y(x).
		end, ok := search(0, ur, func(x uint64) bool { return x > circleY(ur, x) })
		if !ok {
			end = ur
		} else {
			end--
		}

		for _, sx := range [2]int{1, -1} {
			for _, sy := range [2]int{1, -1} {
				if !reflect(cx, sx, w.MinX, w.MaxX, cy, sy, w.MinY, w.MaxY, ur, end, yield) {
					return
				}
				swapped := func(y, x int) bool { return yield(x, y) }
				if !reflect(cy, sy, w.MinY, w.MaxY, cx, sx, w.MinX, w.MaxX, ur, end, swapped) {
					return
				}
			}
		}
	}
}

// reflect yields the octant points (u0 + su·x, v0 + sv·y(x)) for x in
// [0, end] that lie inside both ranges. It reports false when yield asked
// to stop.
func reflect(u0, su, ulo, uhi, v0, sv, vlo, vhi int, r, end uint64, yield func(int, int) bool) bool {
	first, last, ok := Offsets(u0, su, ulo, uhi, end)
	if !ok {
		return true
	}
	vfirst, vlast, ok := Offsets(v0, sv, vlo, vhi, r)
	if !ok {
		return true
	}
	for x := first; ; x++ {
		if y := circleY(r, x); y >= vfirst && y <= vlast {
			if !yield(Move(u0, su, x), Move(v0, sv, y)) {
				return false
			}
		}
		if x == last {
			return true
		}
	}
}
