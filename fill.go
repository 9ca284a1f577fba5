package px

// FloodFill recolors the 4-connected region around (x, y) whose pixels share
// the seed pixel's original color.
//
// The seed color is read before anything is written. When it already equals
// col, or when the seed lies outside the canvas, FloodFill does nothing.
// Traversal uses an explicit stack rather than recursion. A pixel is
// recolored as it is pushed, so no pixel is pushed twice and the stack never
// holds more entries than the canvas has pixels.
func (c *Canvas) FloodFill(x, y int, col Color) {
	seedIdx, ok := c.mapping.Index(x, y)
	if !ok {
		return
	}
	seed := c.buf[seedIdx]
	target := uint32(col)
	if seed == target {
		return
	}

	buf, w := c.buf, c.width
	filled := 1
	buf[seedIdx] = target
	stack := []int{seedIdx}

	push := func(i int) {
		if buf[i] == seed {
			buf[i] = target
			stack = append(stack, i)
			filled++
		}
	}

	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cx := i % w
		if cx > 0 {
			push(i - 1)
		}
		if cx < w-1 {
			push(i + 1)
		}
		if i >= w {
			push(i - w)
		}
		if i+w < len(buf) {
			push(i + w)
		}
	}

	Logger().Debug("px: flood fill", "x", x, "y", y, "pixels", filled)
}
