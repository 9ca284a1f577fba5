// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"math"
	"math/big"
)

// HalfWidth returns the half-width of row dy of the filled ellipse with
// radii a and b: the largest x >= 0 with
//
//	x²·b² + dy²·a² <= a²·b²
//
// It returns -1 when |dy| > |b|. The result is exact for every radius;
// radii below 2^16 stay in 64-bit arithmetic.
func HalfWidth(a, b, dy int) int {
	ua, ub, ud := absU(a), absU(b), absU(dy)
	switch {
	case ud > ub:
		return -1
	case ub == 0:
		return clampInt(ua)
	case ua < 1<<16 && ub < 1<<16:
		return int(isqrt(ua*ua*((ub-ud)*(ub+ud))) / ub)
	}

	// a²·(b-dy)·(b+dy), then floor(sqrt(n) / b).
	n := new(big.Int).SetUint64(ua)
	n.Mul(n, n)
	n.Mul(n, new(big.Int).SetUint64(ub-ud))
	n.Mul(n, new(big.Int).Add(new(big.Int).SetUint64(ub), new(big.Int).SetUint64(ud)))
	n.Sqrt(n)
	n.Quo(n, new(big.Int).SetUint64(ub))
	return clampInt(n.Uint64())
}

// circleY returns the y the midpoint circle of radius r plots in column x,
// for x <= r: the largest y with 4x² + (2y-1)² <= 4r².
func circleY(r, x uint64) uint64 {
	if r < 1<<31 {
		return (isqrt(4*(r*r-x*x)) + 1) / 2
	}
	n := new(big.Int).SetUint64(r)
	n.Mul(n, n)
	xx := new(big.Int).SetUint64(x)
	n.Sub(n, xx.Mul(xx, xx))
	n.Lsh(n, 2)
	n.Sqrt(n)
	n.Add(n, big.NewInt(1))
	n.Rsh(n, 1)
	return n.Uint64()
}

// isqrt returns floor(sqrt(n)).
func isqrt(n uint64) uint64 {
	s := uint64(math.Sqrt(float64(n)))
	for s > 0 && s > n/s {
		s--
	}
	for s+1 <= n/(s+1) {
		s++
	}
	return s
}

func absU(v int) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}

func clampInt(v uint64) int {
	return int(min(v, math.MaxInt))
}
