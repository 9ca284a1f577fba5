package px

import "github.com/gogpu/px/internal/raster"

// maxTracedRadius is the largest radius outlined by the incremental walks.
// Larger curves are clipped to the canvas first.
const maxTracedRadius = 1 << 16

// FillCircle fills the disc of radius r centered on (cx, cy): exactly the
// pixels with (x-cx)² + (y-cy)² <= r². Each scanline of the disc is written
// as a single horizontal run, so the fill has no gaps. A negative radius is
// treated as its absolute value; r == 0 sets the center pixel.
func (c *Canvas) FillCircle(cx, cy, r int, col Color) {
	c.fillSpans(cx, cy, r, r, col)
}

// OutlineCircle draws the one-pixel midpoint circle of radius r. One octant
// is computed and reflected into the other seven, so the result is
// symmetric under all eight reflections about the center.
func (c *Canvas) OutlineCircle(cx, cy, r int, col Color) {
	r = absSat(r)
	if !c.overlaps(cx, cy, r, r) {
		return
	}
	if r > maxTracedRadius {
		for x, y := range raster.CircleIn(cx, cy, r, c.window(0)) {
			c.SetPixel(x, y, col)
		}
		return
	}
	for x, y := range raster.CircleOctant(r) {
		c.plot8(cx, cy, x, y, col)
	}
}

// ThickOutlineCircle draws a ring of the given stroke width centered on the
// circle of radius r. The ring is the band of pixels whose distance d from
// the center satisfies ri-1 < d <= ro, with ro = r + width/2 and
// ri = ro - width + 1. A width of 1 or less draws OutlineCircle.
func (c *Canvas) ThickOutlineCircle(cx, cy, r, width int, col Color) {
	if width <= 1 {
		c.OutlineCircle(cx, cy, r, col)
		return
	}
	ro := addSat(absSat(r), width/2)
	c.band(cx, cy, ro, ro, ro-width, ro-width, col)
}

func (c *Canvas) plot8(cx, cy, x, y int, col Color) {
	c.SetPixel(cx+x, cy+y, col)
	c.SetPixel(cx-x, cy+y, col)
	c.SetPixel(cx+x, cy-y, col)
	c.SetPixel(cx-x, cy-y, col)
	c.SetPixel(cx+y, cy+x, col)
	c.SetPixel(cx-y, cy+x, col)
	c.SetPixel(cx+y, cy-x, col)
	c.SetPixel(cx-y, cy-x, col)
}

// fillSpans fills the ellipse with radii a, b (a disc when a == b) one
// canvas row at a time. Rows off the canvas are never computed.
func (c *Canvas) fillSpans(cx, cy, a, b int, col Color) {
	c.band(cx, cy, absSat(a), absSat(b), -1, -1, col)
}

// band fills the outer ellipse (ao, bo) minus the filled hole ellipse
// (ah, bh). A negative hole radius means there is no hole.
func (c *Canvas) band(cx, cy, ao, bo, ah, bh int, col Color) {
	first, last, ok := c.mapping.Rows(subSat(cy, bo), addSat(cy, bo))
	if !ok {
		return
	}
	for y := first; y <= last; y++ {
		// |y-cy| <= bo, so the difference does not overflow.
		dy := y - cy
		outer := raster.HalfWidth(ao, bo, dy)
		hole := -1
		if ah >= 0 && bh >= 0 {
			hole = raster.HalfWidth(ah, bh, dy)
		}
		if hole < 0 {
			c.HLine(y, subSat(cx, outer), addSat(cx, outer), col)
			continue
		}
		inner := hole + 1
		if inner > outer {
			continue
		}
		c.HLine(y, addSat(cx, inner), addSat(cx, outer), col)
		c.HLine(y, subSat(cx, outer), subSat(cx, inner), col)
	}
}
