package px

// Mapping translates logical canvas coordinates into indices of a row-major
// pixel store.
//
// Logical (0, 0) sits at physical (OriginX, OriginY). A logical point is
// mapped when its physical position lies inside Width x Height. Mapping is a
// plain value with no reference to the store, so every rasterizer shares one
// definition of coordinate semantics and clipping.
type Mapping struct {
	Width   int
	Height  int
	OriginX int
	OriginY int
}

// Physical returns the physical position of the logical point (x, y),
// whether or not it lies inside the store.
func (m Mapping) Physical(x, y int) (int, int) {
	return x + m.OriginX, y + m.OriginY
}

// Logical is the inverse of Physical.
func (m Mapping) Logical(px, py int) (int, int) {
	return px - m.OriginX, py - m.OriginY
}

// Window returns the logical bounds of the store, inclusive. The window is
// empty (min > max) when the store has no pixels.
func (m Mapping) Window() (minX, minY, maxX, maxY int) {
	return -m.OriginX, -m.OriginY, m.Width - 1 - m.OriginX, m.Height - 1 - m.OriginY
}

// Index returns the store index of the logical point (x, y).
// ok is false when the point falls outside the store.
//
// Clipping compares logical coordinates against Window before converting,
// so no input overflows.
func (m Mapping) Index(x, y int) (idx int, ok bool) {
	minX, minY, maxX, maxY := m.Window()
	if x < minX || x > maxX || y < minY || y > maxY {
		return 0, false
	}
	return (y+m.OriginY)*m.Width + x + m.OriginX, true
}

// Row clips the logical run x0..x1 (inclusive, any order) on row y and
// returns the half-open store range [start, end) it covers.
// ok is false when nothing of the run is inside the store.
func (m Mapping) Row(y, x0, x1 int) (start, end int, ok bool) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	minX, minY, maxX, maxY := m.Window()
	if y < minY || y > maxY {
		return 0, 0, false
	}
	x0, x1 = max(x0, minX), min(x1, maxX)
	if x0 > x1 {
		return 0, 0, false
	}
	offset := (y+m.OriginY)*m.Width + m.OriginX
	return offset + x0, offset + x1 + 1, true
}

// Column clips the logical run y0..y1 (inclusive, any order) in column x and
// returns the first store index and the number of pixels. Consecutive pixels
// are Width indices apart.
func (m Mapping) Column(x, y0, y1 int) (start, n int, ok bool) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	minX, minY, maxX, maxY := m.Window()
	if x < minX || x > maxX {
		return 0, 0, false
	}
	y0, y1 = max(y0, minY), min(y1, maxY)
	if y0 > y1 {
		return 0, 0, false
	}
	return (y0+m.OriginY)*m.Width + x + m.OriginX, y1 - y0 + 1, true
}

// Rows clips the logical row range y0..y1 (inclusive, any order) to the rows
// that exist in the store, returned in logical coordinates.
func (m Mapping) Rows(y0, y1 int) (first, last int, ok bool) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	_, minY, _, maxY := m.Window()
	first, last = max(y0, minY), min(y1, maxY)
	return first, last, first <= last
}
