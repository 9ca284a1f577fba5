package px

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"iter"
	"math"
)

// ErrSizeMismatch is returned by NewCanvas when the buffer length does not
// equal width*height.
var ErrSizeMismatch = errors.New("px: buffer size does not match canvas dimensions")

// Canvas is a drawing surface over a row-major pixel store.
//
// A Canvas controls its store for its whole lifetime: the store is never
// reallocated or resized, so len(store) == width*height always holds.
// All drawing methods clip per pixel through the canvas Mapping.
type Canvas struct {
	buf     []uint32
	width   int
	height  int
	mapping Mapping
}

// NewCanvas creates a canvas over buf, which must hold exactly width*height
// pixels. The canvas writes into buf directly; the caller must not resize it
// while the canvas is in use.
//
// NewCanvas fails with an error wrapping ErrSizeMismatch when the buffer
// length does not match or a dimension is negative. No canvas is produced
// in that case.
func NewCanvas(buf []uint32, width, height int, opts ...CanvasOption) (*Canvas, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative dimensions %dx%d", ErrSizeMismatch, width, height)
	}
	if height != 0 && width > math.MaxInt/height {
		return nil, fmt.Errorf("%w: %dx%d overflows", ErrSizeMismatch, width, height)
	}
	if len(buf) != width*height {
		return nil, fmt.Errorf("%w: buffer has %d pixels, %dx%d needs %d",
			ErrSizeMismatch, len(buf), width, height, width*height)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Canvas{
		buf:     buf,
		width:   width,
		height:  height,
		mapping: o.mapping(width, height),
	}
	Logger().Debug("px: canvas created",
		"width", width, "height", height,
		"originX", c.mapping.OriginX, "originY", c.mapping.OriginY)
	return c, nil
}

// NewCanvasSize allocates a zeroed (black) store and wraps it in a canvas.
func NewCanvasSize(width, height int, opts ...CanvasOption) (*Canvas, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative dimensions %dx%d", ErrSizeMismatch, width, height)
	}
	if height != 0 && width > math.MaxInt/height {
		return nil, fmt.Errorf("%w: %dx%d overflows", ErrSizeMismatch, width, height)
	}
	return NewCanvas(make([]uint32, width*height), width, height, opts...)
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Buffer returns the backing store. Pixels are 0x00RRGGBB words in
// row-major order, top to bottom. Writes through the slice are visible
// to the canvas.
func (c *Canvas) Buffer() []uint32 {
	return c.buf
}

// Mapping returns the logical-to-physical coordinate mapping of the canvas.
func (c *Canvas) Mapping() Mapping {
	return c.mapping
}

// SetPixel sets the pixel at logical (x, y). Points outside the canvas are
// silently ignored.
func (c *Canvas) SetPixel(x, y int, col Color) {
	if i, ok := c.mapping.Index(x, y); ok {
		c.buf[i] = uint32(col)
	}
}

// Pixel returns the color at logical (x, y). ok is false when the point is
// outside the canvas.
func (c *Canvas) Pixel(x, y int) (col Color, ok bool) {
	i, ok := c.mapping.Index(x, y)
	if !ok {
		return 0, false
	}
	return Color(c.buf[i]), true
}

// Clear fills the entire canvas with a color.
func (c *Canvas) Clear(col Color) {
	v := uint32(col)
	for i := range c.buf {
		c.buf[i] = v
	}
}

// Pen returns a new pen with the default state drawing on this canvas.
func (c *Canvas) Pen() *Pen {
	return NewPen(c)
}

// Pixels iterates over every pixel in physical coordinates, row by row.
func (c *Canvas) Pixels() iter.Seq2[image.Point, Color] {
	return func(yield func(image.Point, Color) bool) {
		for i, v := range c.buf {
			p := image.Pt(i%c.width, i/c.width)
			if !yield(p, Color(v)) {
				return
			}
		}
	}
}

// ToImage converts the canvas to an opaque image.RGBA.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for i, v := range c.buf {
		j := i * 4
		img.Pix[j+0] = uint8(v >> 16)
		img.Pix[j+1] = uint8(v >> 8)
		img.Pix[j+2] = uint8(v)
		img.Pix[j+3] = 0xff
	}
	return img
}

// At implements the image.Image interface. Unlike Pixel, At takes physical
// coordinates, matching Bounds.
func (c *Canvas) At(x, y int) color.Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Black
	}
	return Color(c.buf[y*c.width+x])
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return ColorModel
}
