package px

// normRect turns a rectangle with negative extents into the equivalent one
// with non-negative width and height.
func normRect(x, y, w, h int) (int, int, int, int) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	return x, y, w, h
}

// FillRect fills the pixels with x in [x, x+w) and y in [y, y+h).
// Negative w or h extend the rectangle left or up from (x, y); a zero
// extent draws nothing.
func (c *Canvas) FillRect(x, y, w, h int, col Color) {
	x, y, w, h = normRect(x, y, w, h)
	if w == 0 || h == 0 {
		return
	}
	first, last, ok := c.mapping.Rows(y, y+h-1)
	if !ok {
		return
	}
	for row := first; row <= last; row++ {
		c.HLine(row, x, x+w-1, col)
	}
}

// OutlineRect draws the one-pixel border of the rectangle FillRect would
// fill with the same arguments.
func (c *Canvas) OutlineRect(x, y, w, h int, col Color) {
	x, y, w, h = normRect(x, y, w, h)
	if w == 0 || h == 0 {
		return
	}
	x1, y1 := x+w-1, y+h-1
	c.HLine(y, x, x1, col)
	c.HLine(y1, x, x1, col)
	c.VLine(x, y, y1, col)
	c.VLine(x1, y, y1, col)
}

// ThickOutlineRect draws the border of the rectangle with the given stroke
// width. The strokes are centered on the one-pixel outline and extended by
// half the width at both ends, so the corners are covered. Corners are not
// mitered.
func (c *Canvas) ThickOutlineRect(x, y, w, h, width int, col Color) {
	if width <= 1 {
		c.OutlineRect(x, y, w, h, col)
		return
	}
	x, y, w, h = normRect(x, y, w, h)
	if w == 0 || h == 0 {
		return
	}
	x1, y1 := x+w-1, y+h-1
	half := width / 2
	c.ThickHLine(y, x-half, x1+half, width, col)
	c.ThickHLine(y1, x-half, x1+half, width, col)
	c.ThickVLine(x, y-half, y1+half, width, col)
	c.ThickVLine(x1, y-half, y1+half, width, col)
}
