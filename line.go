package px

import (
	"github.com/gogpu/px/internal/cache"
	"github.com/gogpu/px/internal/raster"
)

// brushes holds brush shapes by width. Only widths up to maxCachedBrush
// are kept; wider brushes are rebuilt for each stroke.
var brushes = cache.New[int, []raster.Run](32)

const maxCachedBrush = 64

func brush(width int) []raster.Run {
	if width > maxCachedBrush {
		return raster.Brush(width)
	}
	return brushes.GetOrCreate(width, func() []raster.Run { return raster.Brush(width) })
}

// maxStroke is the widest brush drawn on c, 2·(width+height)+1. It keeps
// brush memory and stamping work proportional to the canvas.
func (c *Canvas) maxStroke() int {
	return min(2*(c.width+c.height)+1, 1<<30)
}

// Line draws a one-pixel line from (x0, y0) to (x1, y1), both endpoints
// included. Swapping the endpoints produces the same pixels. Only the part
// of the line over the canvas is walked, so endpoints may be anywhere.
func (c *Canvas) Line(x0, y0, x1, y1 int, col Color) {
	for x, y := range raster.LineIn(x0, y0, x1, y1, c.window(0)) {
		c.SetPixel(x, y, col)
	}
}

// HLine draws the horizontal run from (x0, y) to (x1, y), both ends
// included and in any order.
func (c *Canvas) HLine(y, x0, x1 int, col Color) {
	start, end, ok := c.mapping.Row(y, x0, x1)
	if !ok {
		return
	}
	v := uint32(col)
	row := c.buf[start:end]
	for i := range row {
		row[i] = v
	}
}

// VLine draws the vertical run from (x, y0) to (x, y1), both ends included
// and in any order.
func (c *Canvas) VLine(x, y0, y1 int, col Color) {
	start, n, ok := c.mapping.Column(x, y0, y1)
	if !ok {
		return
	}
	v := uint32(col)
	for i := 0; i < n; i++ {
		c.buf[start+i*c.width] = v
	}
}

// ThickLine draws a line of the given stroke width.
//
// The stroke is a round brush width pixels across swept along the
// Bresenham path, so the visible width does not depend on the slope and
// both ends are round. Odd widths are centered on the path; even widths
// have one pixel more above and left of it, like ThickHLine and
// ThickVLine. A width of 1 or less draws a plain Line. Widths above
// 2·(width+height)+1 of the canvas are drawn at that width.
func (c *Canvas) ThickLine(x0, y0, x1, y1, width int, col Color) {
	if width <= 1 {
		c.Line(x0, y0, x1, y1, col)
		return
	}

	runs := brush(min(width, c.maxStroke()))
	reach := len(runs)/2 + 1
	for x, y := range raster.LineIn(x0, y0, x1, y1, c.window(reach)) {
		c.stamp(x, y, runs, col)
	}
}

// ThickHLine draws a horizontal stroke from x0 to x1 (inclusive) whose rows
// are centered on y. The ends are square.
func (c *Canvas) ThickHLine(y, x0, x1, width int, col Color) {
	width = max(width, 1)
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	c.FillRect(x0, y-width/2, x1-x0+1, width, col)
}

// ThickVLine draws a vertical stroke from y0 to y1 (inclusive) whose columns
// are centered on x. The ends are square.
func (c *Canvas) ThickVLine(x, y0, y1, width int, col Color) {
	width = max(width, 1)
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	c.FillRect(x-width/2, y0, width, y1-y0+1, col)
}

// stamp draws the brush rows runs on the pixel (cx, cy), skipping rows
// off the canvas.
func (c *Canvas) stamp(cx, cy int, runs []raster.Run, col Color) {
	top := runs[0].DY
	first, last, ok := c.mapping.Rows(cy+top, cy+runs[len(runs)-1].DY)
	if !ok {
		return
	}
	for y := first; y <= last; y++ {
		r := runs[y-cy-top]
		c.HLine(y, cx+r.X0, cx+r.X1, col)
	}
}
