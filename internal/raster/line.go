// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"iter"
	"math"
	"math/bits"
)

// Window is an inclusive rectangle of pixel coordinates.
type Window struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Everywhere is the window holding every representable pixel.
var Everywhere = Window{MinX: math.MinInt, MinY: math.MinInt, MaxX: math.MaxInt, MaxY: math.MaxInt}

// Contains reports whether (x, y) lies inside w.
func (w Window) Contains(x, y int) bool {
	return x >= w.MinX && x <= w.MaxX && y >= w.MinY && y <= w.MaxY
}

// Line yields every pixel of the segment from (x0, y0) to (x1, y1), both
// endpoints included, using Bresenham's integer algorithm.
//
// The endpoints are put in a canonical order before stepping, so
// Line(a, b) and Line(b, a) yield the same pixel set.
func Line(x0, y0, x1, y1 int) iter.Seq2[int, int] {
	return LineIn(x0, y0, x1, y1, Everywhere)
}

// LineIn yields the pixels of Line(x0, y0, x1, y1) that fall inside w, in
// the same order. The pixels outside w are skipped without being visited,
// so the cost depends on the size of w and not on the segment length.
//
// Along the major axis step k the minor offset is
//
//	floor((2·k·minor + major) / (2·major))
//
// which is exactly where the incremental error term lands.
func LineIn(x0, y0, x1, y1 int, w Window) iter.Seq2[int, int] {
	if x1 < x0 || (x1 == x0 && y1 < y0) {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	dx := uint64(x1) - uint64(x0)
	dy, sy := distance(y0, y1)

	return func(yield func(int, int) bool) {
		if dx >= dy {
			walk(x0, 1, w.MinX, w.MaxX, dx, y0, sy, w.MinY, w.MaxY, dy,
				func(x, y int) bool { return yield(x, y) })
			return
		}
		walk(y0, sy, w.MinY, w.MaxY, dy, x0, 1, w.MinX, w.MaxX, dx,
			func(y, x int) bool { return yield(x, y) })
	}
}

// walk steps k over the major axis offsets [0, n] whose pixel lies inside
// both axis ranges and yields (major, minor) coordinates.
func walk(origin, dir, lo, hi int, n uint64, morigin, mdir, mlo, mhi int, m uint64, yield func(int, int) bool) {
	first, last, ok := Offsets(origin, dir, lo, hi, n)
	if !ok {
		return
	}
	flo, fhi, ok := Offsets(morigin, mdir, mlo, mhi, m)
	if !ok {
		return
	}

	// The minor offset never decreases with k.
	first, ok = search(first, last, func(k uint64) bool { return minor(k, m, n) >= flo })
	if !ok {
		return
	}
	if k, beyond := search(first, last, func(k uint64) bool { return minor(k, m, n) > fhi }); beyond {
		if k == first {
			return
		}
		last = k - 1
	}
	for k := first; ; k++ {
		if !yield(Move(origin, dir, k), Move(morigin, mdir, minor(k, m, n))) || k == last {
			return
		}
	}
}

// minor returns floor((2km + n) / (2n)) for k <= n, m <= n without
// overflowing.
func minor(k, m, n uint64) uint64 {
	if n == 0 {
		return 0
	}
	hi, lo := bits.Mul64(k, m)
	q, r := bits.Div64(hi, lo, n)
	if r >= n-r {
		q++
	}
	return q
}

// search returns the smallest k in [lo, hi] with pred(k) true. ok is false
// when there is none. pred must be monotone.
func search(lo, hi uint64, pred func(uint64) bool) (k uint64, ok bool) {
	if !pred(hi) {
		return 0, false
	}
	for lo < hi {
		mid := lo + (hi-lo)/2
		if pred(mid) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo, true
}

// Offsets returns the range [first, last] of offsets t in [0, n] for which
// origin + dir·t lies in [lo, hi]. dir is 1 or -1. ok is false when no
// offset qualifies.
func Offsets(origin, dir, lo, hi int, n uint64) (first, last uint64, ok bool) {
	if dir > 0 {
		if hi < origin {
			return 0, 0, false
		}
		if lo > origin {
			first = uint64(lo) - uint64(origin)
		}
		last = uint64(hi) - uint64(origin)
	} else {
		if lo > origin {
			return 0, 0, false
		}
		if hi < origin {
			first = uint64(origin) - uint64(hi)
		}
		last = uint64(origin) - uint64(lo)
	}
	last = min(last, n)
	return first, last, first <= last
}

// Move returns origin + dir·t. The result must be representable.
func Move(origin, dir int, t uint64) int {
	if dir > 0 {
		return int(uint64(origin) + t)
	}
	return int(uint64(origin) - t)
}

// distance returns |b - a| and the direction from a to b.
func distance(a, b int) (uint64, int) {
	if b >= a {
		return uint64(b) - uint64(a), 1
	}
	return uint64(a) - uint64(b), -1
}

// LineLen returns the number of pixels Line yields for the segment.
func LineLen(x0, y0, x1, y1 int) int {
	return max(abs(x1-x0), abs(y1-y0)) + 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
