package px

// CanvasOption configures a Canvas during creation.
// Use functional options to customize Canvas behavior.
//
// Example:
//
//	// Default top-left origin
//	c, err := px.NewCanvas(buf, 800, 600)
//
//	// Logical (0, 0) at the center of the canvas
//	c, err := px.NewCanvas(buf, 800, 600, px.WithCenterOrigin())
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	originX int
	originY int
	center  bool
}

// defaultOptions returns the default canvas options.
func defaultOptions() canvasOptions {
	return canvasOptions{}
}

// WithOrigin places logical (0, 0) at physical pixel (x, y).
// Logical coordinates left of or above the origin are negative.
func WithOrigin(x, y int) CanvasOption {
	return func(o *canvasOptions) {
		o.originX = x
		o.originY = y
		o.center = false
	}
}

// WithCenterOrigin places logical (0, 0) at physical (width/2, height/2).
//
// Example:
//
//	c, _ := px.NewCanvas(buf, 100, 100, px.WithCenterOrigin())
//	c.SetPixel(-50, -50, px.Red) // physical top-left corner
func WithCenterOrigin() CanvasOption {
	return func(o *canvasOptions) {
		o.center = true
	}
}

// mapping resolves the options into a Mapping for a canvas of the given size.
func (o canvasOptions) mapping(width, height int) Mapping {
	m := Mapping{Width: width, Height: height, OriginX: o.originX, OriginY: o.originY}
	if o.center {
		m.OriginX = width / 2
		m.OriginY = height / 2
	}
	return m
}
