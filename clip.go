package px

import (
	"math"

	"github.com/gogpu/px/internal/raster"
)

// window returns the logical bounds of the canvas grown by margin pixels
// on every side.
func (c *Canvas) window(margin int) raster.Window {
	minX, minY, maxX, maxY := c.mapping.Window()
	return raster.Window{
		MinX: subSat(minX, margin), MinY: subSat(minY, margin),
		MaxX: addSat(maxX, margin), MaxY: addSat(maxY, margin),
	}
}

// overlaps reports whether the box with half extents rx, ry around
// (cx, cy) touches the canvas.
func (c *Canvas) overlaps(cx, cy, rx, ry int) bool {
	minX, minY, maxX, maxY := c.mapping.Window()
	return subSat(cx, rx) <= maxX && addSat(cx, rx) >= minX &&
		subSat(cy, ry) <= maxY && addSat(cy, ry) >= minY
}

// clipSegment clips the segment (x0, y0)-(x1, y1) to the canvas grown by
// margin pixels (Liang-Barsky). Endpoints already inside are returned
// unchanged. ok is false when nothing is left or a coordinate is NaN or
// infinite.
func (c *Canvas) clipSegment(x0, y0, x1, y1, margin float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	for _, v := range [4]float64{x0, y0, x1, y1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, 0, 0, false
		}
	}
	minX, minY, maxX, maxY := c.mapping.Window()
	xmin, xmax := float64(minX)-margin, float64(maxX)+margin
	ymin, ymax := float64(minY)-margin, float64(maxY)+margin

	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	for _, e := range [4][2]float64{
		{-dx, x0 - xmin},
		{dx, xmax - x0},
		{-dy, y0 - ymin},
		{dy, ymax - y0},
	} {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			t0 = max(t0, t)
		} else {
			t1 = min(t1, t)
		}
		if t0 > t1 {
			return 0, 0, 0, 0, false
		}
	}

	cx0, cy0, cx1, cy1 = x0, y0, x1, y1
	if t0 > 0 {
		cx0, cy0 = x0+t0*dx, y0+t0*dy
	}
	if t1 < 1 {
		cx1, cy1 = x0+t1*dx, y0+t1*dy
	}
	return cx0, cy0, cx1, cy1, true
}

func addSat(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	if b < 0 && a < math.MinInt-b {
		return math.MinInt
	}
	return a + b
}

func subSat(a, b int) int {
	if b == math.MinInt {
		if a >= 0 {
			return math.MaxInt
		}
		return a - b
	}
	return addSat(a, -b)
}

func absSat(v int) int {
	if v == math.MinInt {
		return math.MaxInt
	}
	if v < 0 {
		return -v
	}
	return v
}
