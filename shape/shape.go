// Package shape describes drawable primitives as values.
//
// Each shape is a plain struct that records its geometry and paint and draws
// itself onto a px.Canvas with the matching canvas rasterizers. Shapes add
// no behavior of their own: drawing a shape is exactly the same as calling
// the canvas methods directly.
//
//	scene := shape.Group{
//		shape.NewRectangle(0, 0, 64, 64).WithFill(px.SkyBlue),
//		shape.NewCircle(32, 32, 10).WithFill(px.Gold).WithOutline(px.Black, 2),
//	}
//	scene.Draw(canvas)
package shape

import "github.com/gogpu/px"

// Drawable is anything that can paint itself onto a canvas.
type Drawable interface {
	Draw(c *px.Canvas)
}

// Style is the paint of a closed shape. A nil Fill or Outline disables that
// part. The fill is drawn first, the outline on top of it.
type Style struct {
	Fill      *px.Color
	Outline   *px.Color
	Thickness int
}

// DefaultStyle is a black fill with no outline and a one-pixel outline
// width.
func DefaultStyle() Style {
	black := px.Black
	return Style{Fill: &black, Thickness: 1}
}

// WithFill returns s filled with c.
func (s Style) WithFill(c px.Color) Style {
	s.Fill = &c
	return s
}

// WithoutFill returns s with the fill disabled.
func (s Style) WithoutFill() Style {
	s.Fill = nil
	return s
}

// WithOutline returns s outlined with c at the given stroke width.
func (s Style) WithOutline(c px.Color, thickness int) Style {
	s.Outline = &c
	s.Thickness = thickness
	return s
}

// Group draws its members in order, so later shapes paint over earlier ones.
type Group []Drawable

// Draw implements Drawable.
func (g Group) Draw(c *px.Canvas) {
	for _, d := range g {
		d.Draw(c)
	}
}

// Rectangle covers x in [X, X+W) and y in [Y, Y+H).
type Rectangle struct {
	X, Y, W, H int
	Style
}

// NewRectangle returns a rectangle with DefaultStyle.
func NewRectangle(x, y, w, h int) Rectangle {
	return Rectangle{X: x, Y: y, W: w, H: h, Style: DefaultStyle()}
}

// RectangleFromPoints returns the rectangle spanned by two corners given in
// any order. The second corner lies just outside the covered area.
func RectangleFromPoints(x0, y0, x1, y1 int) Rectangle {
	return NewRectangle(min(x0, x1), min(y0, y1), abs(x1-x0), abs(y1-y0))
}

// WithFill returns r filled with c.
func (r Rectangle) WithFill(c px.Color) Rectangle { r.Style = r.Style.WithFill(c); return r }

// WithoutFill returns r with the fill disabled.
func (r Rectangle) WithoutFill() Rectangle { r.Style = r.Style.WithoutFill(); return r }

// WithOutline returns r outlined with c.
func (r Rectangle) WithOutline(c px.Color, thickness int) Rectangle {
	r.Style = r.Style.WithOutline(c, thickness)
	return r
}

// Draw implements Drawable.
func (r Rectangle) Draw(c *px.Canvas) {
	if r.Fill != nil {
		c.FillRect(r.X, r.Y, r.W, r.H, *r.Fill)
	}
	if r.Outline != nil {
		c.ThickOutlineRect(r.X, r.Y, r.W, r.H, r.Thickness, *r.Outline)
	}
}

// Circle is centered on (X, Y) with radius R.
type Circle struct {
	X, Y, R int
	Style
}

// NewCircle returns a circle with DefaultStyle.
func NewCircle(x, y, r int) Circle {
	return Circle{X: x, Y: y, R: r, Style: DefaultStyle()}
}

// WithFill returns ci filled with c.
func (ci Circle) WithFill(c px.Color) Circle { ci.Style = ci.Style.WithFill(c); return ci }

// WithoutFill returns ci with the fill disabled.
func (ci Circle) WithoutFill() Circle { ci.Style = ci.Style.WithoutFill(); return ci }

// WithOutline returns ci outlined with c.
func (ci Circle) WithOutline(c px.Color, thickness int) Circle {
	ci.Style = ci.Style.WithOutline(c, thickness)
	return ci
}

// Draw implements Drawable.
func (ci Circle) Draw(c *px.Canvas) {
	if ci.Fill != nil {
		c.FillCircle(ci.X, ci.Y, ci.R, *ci.Fill)
	}
	if ci.Outline != nil {
		c.ThickOutlineCircle(ci.X, ci.Y, ci.R, ci.Thickness, *ci.Outline)
	}
}

// Ellipse is centered on (X, Y) with horizontal radius A and vertical
// radius B.
type Ellipse struct {
	X, Y, A, B int
	Style
}

// NewEllipse returns an ellipse with DefaultStyle.
func NewEllipse(x, y, a, b int) Ellipse {
	return Ellipse{X: x, Y: y, A: a, B: b, Style: DefaultStyle()}
}

// WithFill returns e filled with c.
func (e Ellipse) WithFill(c px.Color) Ellipse { e.Style = e.Style.WithFill(c); return e }

// WithoutFill returns e with the fill disabled.
func (e Ellipse) WithoutFill() Ellipse { e.Style = e.Style.WithoutFill(); return e }

// WithOutline returns e outlined with c.
func (e Ellipse) WithOutline(c px.Color, thickness int) Ellipse {
	e.Style = e.Style.WithOutline(c, thickness)
	return e
}

// Draw implements Drawable.
func (e Ellipse) Draw(c *px.Canvas) {
	if e.Fill != nil {
		c.FillEllipse(e.X, e.Y, e.A, e.B, *e.Fill)
	}
	if e.Outline != nil {
		c.ThickOutlineEllipse(e.X, e.Y, e.A, e.B, e.Thickness, *e.Outline)
	}
}

// Triangle has vertices (X0, Y0), (X1, Y1) and (X2, Y2).
type Triangle struct {
	X0, Y0, X1, Y1, X2, Y2 int
	Style
}

// NewTriangle returns a triangle with DefaultStyle.
func NewTriangle(x0, y0, x1, y1, x2, y2 int) Triangle {
	return Triangle{X0: x0, Y0: y0, X1: x1, Y1: y1, X2: x2, Y2: y2, Style: DefaultStyle()}
}

// WithFill returns t filled with c.
func (t Triangle) WithFill(c px.Color) Triangle { t.Style = t.Style.WithFill(c); return t }

// WithoutFill returns t with the fill disabled.
func (t Triangle) WithoutFill() Triangle { t.Style = t.Style.WithoutFill(); return t }

// WithOutline returns t outlined with c.
func (t Triangle) WithOutline(c px.Color, thickness int) Triangle {
	t.Style = t.Style.WithOutline(c, thickness)
	return t
}

// Draw implements Drawable.
func (t Triangle) Draw(c *px.Canvas) {
	if t.Fill != nil {
		c.FillTriangle(t.X0, t.Y0, t.X1, t.Y1, t.X2, t.Y2, *t.Fill)
	}
	if t.Outline != nil {
		c.ThickOutlineTriangle(t.X0, t.Y0, t.X1, t.Y1, t.X2, t.Y2, t.Thickness, *t.Outline)
	}
}

// Line is a stroke from (X0, Y0) to (X1, Y1).
type Line struct {
	X0, Y0, X1, Y1 int
	Color          px.Color
	Thickness      int
}

// NewLine returns a black one-pixel line.
func NewLine(x0, y0, x1, y1 int) Line {
	return Line{X0: x0, Y0: y0, X1: x1, Y1: y1, Color: px.Black, Thickness: 1}
}

// WithColor returns l drawn in c.
func (l Line) WithColor(c px.Color) Line { l.Color = c; return l }

// WithThickness returns l drawn with the given stroke width.
func (l Line) WithThickness(width int) Line { l.Thickness = width; return l }

// Draw implements Drawable.
func (l Line) Draw(c *px.Canvas) {
	c.ThickLine(l.X0, l.Y0, l.X1, l.Y1, l.Thickness, l.Color)
}

// Fill flood fills the region around (X, Y).
type Fill struct {
	X, Y  int
	Color px.Color
}

// Draw implements Drawable.
func (f Fill) Draw(c *px.Canvas) {
	c.FloodFill(f.X, f.Y, f.Color)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
