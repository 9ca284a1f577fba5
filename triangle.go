package px

// FillTriangle fills the triangle with the given vertices, edges included.
// The vertex order does not matter.
func (c *Canvas) FillTriangle(x0, y0, x1, y1, x2, y2 int, col Color) {
	// Sort vertices by y.
	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	if y1 > y2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}

	first, last, ok := c.mapping.Rows(y0, y2)
	if ok && y2 > y0 {
		for y := first; y <= last; y++ {
			xl := edgeX(x0, y0, x2, y2, y)
			var xr int
			if y < y1 || (y == y1 && y0 < y1) {
				xr = edgeX(x0, y0, x1, y1, y)
			} else {
				xr = edgeX(x1, y1, x2, y2, y)
			}
			c.HLine(y, xl, xr, col)
		}
	}

	// The scanline pass rounds edge positions; tracing the edges makes
	// sure thin and flat triangles keep every boundary pixel.
	c.OutlineTriangle(x0, y0, x1, y1, x2, y2, col)
}

// OutlineTriangle draws the three edges of the triangle.
func (c *Canvas) OutlineTriangle(x0, y0, x1, y1, x2, y2 int, col Color) {
	c.Line(x0, y0, x1, y1, col)
	c.Line(x1, y1, x2, y2, col)
	c.Line(x2, y2, x0, y0, col)
}

// ThickOutlineTriangle draws the edges of the triangle with the given
// stroke width. The round brush of ThickLine also rounds the joints.
func (c *Canvas) ThickOutlineTriangle(x0, y0, x1, y1, x2, y2, width int, col Color) {
	if width <= 1 {
		c.OutlineTriangle(x0, y0, x1, y1, x2, y2, col)
		return
	}
	c.ThickLine(x0, y0, x1, y1, width, col)
	c.ThickLine(x1, y1, x2, y2, width, col)
	c.ThickLine(x2, y2, x0, y0, width, col)
}

// edgeX returns the x position, rounded half away from zero, where the edge
// from (xa, ya) to (xb, yb) crosses row y. Horizontal edges return xa.
func edgeX(xa, ya, xb, yb, y int) int {
	if yb == ya {
		return xa
	}
	num := (y - ya) * (xb - xa)
	den := yb - ya
	if den < 0 {
		num, den = -num, -den
	}
	if num >= 0 {
		return xa + (2*num+den)/(2*den)
	}
	return xa - (2*-num+den)/(2*den)
}
