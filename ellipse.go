package px

import "github.com/gogpu/px/internal/raster"

// FillEllipse fills the axis-aligned ellipse centered on (cx, cy) with
// horizontal radius a and vertical radius b: exactly the pixels with
// (x-cx)²·b² + (y-cy)²·a² <= a²·b². Negative radii are treated as their
// absolute values; a zero radius degenerates to a line along the other axis.
func (c *Canvas) FillEllipse(cx, cy, a, b int, col Color) {
	c.fillSpans(cx, cy, a, b, col)
}

// OutlineEllipse draws the one-pixel midpoint ellipse with radii a and b.
// One quadrant is computed and mirrored into the other three.
//
// Ellipses with a radius above 2^16 are outlined as the border pixels of
// FillEllipse instead, walking only the canvas rows they cross.
func (c *Canvas) OutlineEllipse(cx, cy, a, b int, col Color) {
	a, b = absSat(a), absSat(b)
	if !c.overlaps(cx, cy, a, b) {
		return
	}
	if a > maxTracedRadius || b > maxTracedRadius {
		c.outlineRows(cx, cy, a, b, col)
		return
	}
	for x, y := range raster.EllipseQuadrant(a, b) {
		c.SetPixel(cx+x, cy+y, col)
		c.SetPixel(cx-x, cy+y, col)
		c.SetPixel(cx+x, cy-y, col)
		c.SetPixel(cx-x, cy-y, col)
	}
}

// outlineRows draws the pixels of the filled ellipse that have a 4-neighbor
// outside it.
func (c *Canvas) outlineRows(cx, cy, a, b int, col Color) {
	first, last, ok := c.mapping.Rows(subSat(cy, b), addSat(cy, b))
	if !ok {
		return
	}
	for y := first; y <= last; y++ {
		dy := y - cy
		hw := raster.HalfWidth(a, b, dy)
		next := raster.HalfWidth(a, b, addSat(absSat(dy), 1))
		inner := min(next+1, hw)
		c.HLine(y, addSat(cx, inner), addSat(cx, hw), col)
		c.HLine(y, subSat(cx, hw), subSat(cx, inner), col)
	}
}

// ThickOutlineEllipse draws an elliptic ring of the given stroke width
// centered on the ellipse with radii a and b. The ring lies between the
// outer ellipse (a+width/2, b+width/2) and an inner ellipse width-1 pixels
// smaller on each axis. A width of 1 or less draws OutlineEllipse.
func (c *Canvas) ThickOutlineEllipse(cx, cy, a, b, width int, col Color) {
	if width <= 1 {
		c.OutlineEllipse(cx, cy, a, b, col)
		return
	}
	ao, bo := addSat(absSat(a), width/2), addSat(absSat(b), width/2)
	c.band(cx, cy, ao, bo, ao-width, bo-width, col)
}
