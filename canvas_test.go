package px

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// Verify at compile time that Canvas implements image.Image.
var _ image.Image = (*Canvas)(nil)

// newTestCanvas returns a black canvas or stops the test.
func newTestCanvas(t testing.TB, w, h int, opts ...CanvasOption) *Canvas {
	t.Helper()
	c, err := NewCanvasSize(w, h, opts...)
	if err != nil {
		t.Fatalf("NewCanvasSize(%d, %d): %v", w, h, err)
	}
	return c
}

// painted returns the physical positions of all pixels with color col.
func painted(c *Canvas, col Color) map[image.Point]bool {
	set := make(map[image.Point]bool)
	for p, v := range c.Pixels() {
		if v == col {
			set[p] = true
		}
	}
	return set
}

// snapshot copies the canvas store.
func snapshot(c *Canvas) []uint32 {
	return append([]uint32(nil), c.Buffer()...)
}

func TestNewCanvas(t *testing.T) {
	tests := []struct {
		name    string
		bufLen  int
		w, h    int
		wantErr bool
	}{
		{"exact", 12, 4, 3, false},
		{"empty", 0, 0, 0, false},
		{"zero width", 0, 0, 7, false},
		{"short buffer", 11, 4, 3, true},
		{"long buffer", 13, 4, 3, true},
		{"negative width", 0, -1, 0, true},
		{"negative height", 4, 4, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCanvas(make([]uint32, tt.bufLen), tt.w, tt.h)
			if tt.wantErr {
				if !errors.Is(err, ErrSizeMismatch) {
					t.Fatalf("error = %v, want ErrSizeMismatch", err)
				}
				if c != nil {
					t.Error("canvas returned together with an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewCanvas: %v", err)
			}
			if c.Width() != tt.w || c.Height() != tt.h {
				t.Errorf("size = %dx%d, want %dx%d", c.Width(), c.Height(), tt.w, tt.h)
			}
			if len(c.Buffer()) != c.Width()*c.Height() {
				t.Errorf("len(Buffer()) = %d, want %d", len(c.Buffer()), c.Width()*c.Height())
			}
		})
	}
}

func TestNewCanvasSizeOverflow(t *testing.T) {
	const huge = int(^uint(0) >> 2)
	if _, err := NewCanvasSize(huge, huge); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("error = %v, want ErrSizeMismatch", err)
	}
}

func TestCanvasWritesThroughBuffer(t *testing.T) {
	buf := make([]uint32, 6)
	c, err := NewCanvas(buf, 3, 2)
	if err != nil {
		t.Fatal(err)
	}

	c.SetPixel(2, 1, Red)
	if buf[5] != uint32(Red) {
		t.Errorf("buf[5] = %#x, want %#x", buf[5], uint32(Red))
	}

	buf[0] = uint32(Blue)
	if got, _ := c.Pixel(0, 0); got != Blue {
		t.Errorf("Pixel(0, 0) = %v, want %v", got, Blue)
	}
}

func TestSetPixelOutOfBounds(t *testing.T) {
	c := newTestCanvas(t, 10, 10)
	c.Clear(White)
	before := snapshot(c)

	oob := []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10},
		{-100, -100}, {100, 100},
	}
	for _, p := range oob {
		c.SetPixel(p.x, p.y, Red)
		if _, ok := c.Pixel(p.x, p.y); ok {
			t.Errorf("Pixel(%d, %d) reported inside", p.x, p.y)
		}
	}

	for i, v := range c.Buffer() {
		if v != before[i] {
			t.Fatalf("out-of-bounds write modified index %d", i)
		}
	}
}

func TestSetPixelThenPixel(t *testing.T) {
	c := newTestCanvas(t, 8, 8)
	for y := range 8 {
		for x := range 8 {
			col := RGB(uint8(x*30), uint8(y*30), 7)
			c.SetPixel(x, y, col)
			if got, ok := c.Pixel(x, y); !ok || got != col {
				t.Fatalf("Pixel(%d, %d) = %v, %v, want %v", x, y, got, ok, col)
			}
		}
	}
}

func TestCenterOrigin(t *testing.T) {
	c := newTestCanvas(t, 100, 100, WithCenterOrigin())
	c.SetPixel(-50, -50, Red)
	c.SetPixel(0, 0, Green)
	c.SetPixel(49, 49, Blue)
	c.SetPixel(50, 50, White)

	buf := c.Buffer()
	if buf[0] != uint32(Red) {
		t.Error("logical (-50, -50) should be the physical top-left corner")
	}
	if buf[50*100+50] != uint32(Green) {
		t.Error("logical (0, 0) should be the physical center")
	}
	if buf[len(buf)-1] != uint32(Blue) {
		t.Error("logical (49, 49) should be the physical bottom-right corner")
	}
	if n := len(painted(c, White)); n != 0 {
		t.Errorf("logical (50, 50) is outside but %d pixels turned white", n)
	}
}

func TestClear(t *testing.T) {
	c := newTestCanvas(t, 5, 4)
	c.SetPixel(1, 1, Red)
	c.Clear(Teal)
	for i, v := range c.Buffer() {
		if v != uint32(Teal) {
			t.Fatalf("buf[%d] = %#x after Clear", i, v)
		}
	}
}

func TestCanvasImage(t *testing.T) {
	c := newTestCanvas(t, 3, 2, WithOrigin(1, 1))
	c.SetPixel(-1, -1, RGB(10, 20, 30))

	if got := c.Bounds(); got != image.Rect(0, 0, 3, 2) {
		t.Errorf("Bounds() = %v", got)
	}
	if got := c.At(0, 0); got != RGB(10, 20, 30) {
		t.Errorf("At(0, 0) = %v", got)
	}
	if got := c.At(-1, 0); got != Black {
		t.Errorf("At outside = %v, want black", got)
	}

	img := c.ToImage()
	if got := img.RGBAAt(0, 0); got != (color.RGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("ToImage().RGBAAt(0, 0) = %v", got)
	}
	if got := img.RGBAAt(2, 1); got != (color.RGBA{A: 255}) {
		t.Errorf("ToImage().RGBAAt(2, 1) = %v, want opaque black", got)
	}
}

func TestPixelsOrder(t *testing.T) {
	c := newTestCanvas(t, 3, 2)
	c.SetPixel(2, 0, Red)

	i := 0
	for p, v := range c.Pixels() {
		if want := image.Pt(i%3, i/3); p != want {
			t.Fatalf("pixel %d at %v, want %v", i, p, want)
		}
		if (p == image.Pt(2, 0)) != (v == Red) {
			t.Errorf("pixel %v = %v", p, v)
		}
		i++
	}
	if i != 6 {
		t.Errorf("visited %d pixels, want 6", i)
	}
}
