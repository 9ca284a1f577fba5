// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raster provides the integer scan-conversion kernels used by px.
//
// The kernels know nothing about pixel stores or colors. Each one yields
// integer offsets or coordinates through an iterator, or returns plain
// values, and the caller decides how to reflect, clip and write them. This
// keeps the arithmetic testable on its own.
//
// The incremental walks (CircleOctant, EllipseQuadrant) use additions and
// comparisons only. The clipped kernels (LineIn, CircleIn, HalfWidth) use
// closed forms of the same walks so they can start anywhere along a shape;
// they are exact for every int input and switch to 128-bit or math/big
// arithmetic once the products no longer fit in 64 bits.
package raster
