package px

import "math"

// Bounds is an axis-aligned box that clamps pen movement.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// clamp returns (x, y) moved to the nearest point inside b.
func (b Bounds) clamp(x, y float64) (float64, float64) {
	return min(max(x, b.MinX), b.MaxX), min(max(y, b.MinY), b.MaxY)
}

// PenState is a snapshot of everything a Pen remembers.
//
// PenState is a plain value: copying it copies the whole state, and a saved
// state is not affected by later pen movement. Restoring it with
// Pen.SetState brings the pen back exactly.
type PenState struct {
	// X and Y are the pen position in logical canvas coordinates.
	X, Y float64

	// Direction is the heading in degrees. 0 points along +X (right) and
	// angles grow clockwise on screen, since Y grows downward: 90 points
	// down, -90 points up.
	Direction float64

	Color     Color
	Thickness int

	// Down reports whether movement draws.
	Down bool

	// Bounds clamps the position when Bounded is true.
	Bounds  Bounds
	Bounded bool
}

// DefaultPenState returns the state of a new pen: at the origin, heading
// right, white, one pixel wide, pen down and unbounded.
func DefaultPenState() PenState {
	return PenState{
		Color:     White,
		Thickness: 1,
		Down:      true,
	}
}

// Pen draws on a canvas with turtle-graphics commands: relative moves and
// turns from a current position and heading.
//
// A Pen borrows its canvas and owns no other resources. All mutating
// methods return the receiver so calls can be chained:
//
//	pen.SetPosition(10, 10).Forward(50).TurnRight(90).Forward(50)
type Pen struct {
	canvas *Canvas
	state  PenState
}

// NewPen creates a pen with DefaultPenState drawing on c.
func NewPen(c *Canvas) *Pen {
	return NewPenWithState(c, DefaultPenState())
}

// NewPenWithState creates a pen drawing on c starting from state s.
func NewPenWithState(c *Canvas, s PenState) *Pen {
	p := &Pen{canvas: c}
	return p.SetState(s)
}

// Canvas returns the canvas the pen draws on.
func (p *Pen) Canvas() *Canvas {
	return p.canvas
}

// State returns a snapshot of the pen state.
func (p *Pen) State() PenState {
	return p.state
}

// SetState restores a snapshot taken with State. It never draws.
// When s is bounded the position is clamped to its bounds.
func (p *Pen) SetState(s PenState) *Pen {
	p.state = s
	p.clampSelf()
	return p
}

// Reset restores DefaultPenState.
func (p *Pen) Reset() *Pen {
	return p.SetState(DefaultPenState())
}

// Position returns the pen position.
func (p *Pen) Position() (x, y float64) {
	return p.state.X, p.state.Y
}

// SetPosition moves the pen to (x, y) without drawing.
func (p *Pen) SetPosition(x, y float64) *Pen {
	p.state.X, p.state.Y = p.bound(x, y)
	return p
}

// MoveTo moves the pen to (x, y), drawing a line from the old position
// when the pen is down.
func (p *Pen) MoveTo(x, y float64) *Pen {
	x, y = p.bound(x, y)
	if p.state.Down {
		p.stroke(p.state.X, p.state.Y, x, y)
	}
	p.state.X, p.state.Y = x, y
	return p
}

// Forward moves the pen d units along its heading, drawing when the pen is
// down. A negative d moves backwards.
func (p *Pen) Forward(d float64) *Pen {
	sin, cos := math.Sincos(p.state.Direction * math.Pi / 180)
	return p.MoveTo(p.state.X+cos*d, p.state.Y+sin*d)
}

// Backward moves the pen d units against its heading.
func (p *Pen) Backward(d float64) *Pen {
	return p.Forward(-d)
}

// Direction returns the heading in degrees.
func (p *Pen) Direction() float64 {
	return p.state.Direction
}

// SetDirection sets the heading in degrees.
func (p *Pen) SetDirection(deg float64) *Pen {
	p.state.Direction = deg
	return p
}

// SetDirectionRad sets the heading in radians.
func (p *Pen) SetDirectionRad(rad float64) *Pen {
	p.state.Direction = rad * 180 / math.Pi
	return p
}

// TurnLeft rotates the heading counter-clockwise by deg degrees.
func (p *Pen) TurnLeft(deg float64) *Pen {
	p.state.Direction -= deg
	return p
}

// TurnRight rotates the heading clockwise by deg degrees.
func (p *Pen) TurnRight(deg float64) *Pen {
	p.state.Direction += deg
	return p
}

// TurnLeftRad rotates the heading counter-clockwise by rad radians.
func (p *Pen) TurnLeftRad(rad float64) *Pen {
	return p.TurnLeft(rad * 180 / math.Pi)
}

// TurnRightRad rotates the heading clockwise by rad radians.
func (p *Pen) TurnRightRad(rad float64) *Pen {
	return p.TurnRight(rad * 180 / math.Pi)
}

// Color returns the drawing color.
func (p *Pen) Color() Color {
	return p.state.Color
}

// SetColor sets the drawing color.
func (p *Pen) SetColor(col Color) *Pen {
	p.state.Color = col
	return p
}

// Thickness returns the stroke width.
func (p *Pen) Thickness() int {
	return p.state.Thickness
}

// SetThickness sets the stroke width. Widths below 1 draw one-pixel lines.
func (p *Pen) SetThickness(width int) *Pen {
	p.state.Thickness = width
	return p
}

// IsDown reports whether movement draws.
func (p *Pen) IsDown() bool {
	return p.state.Down
}

// PenUp lifts the pen: movement no longer draws.
func (p *Pen) PenUp() *Pen {
	p.state.Down = false
	return p
}

// PenDown lowers the pen: movement draws.
func (p *Pen) PenDown() *Pen {
	p.state.Down = true
	return p
}

// Toggle flips between pen up and pen down.
func (p *Pen) Toggle() *Pen {
	p.state.Down = !p.state.Down
	return p
}

// SetBounds keeps the pen inside the given box. The current position is
// clamped immediately, and later moves stop at the border.
func (p *Pen) SetBounds(b Bounds) *Pen {
	p.state.Bounds = b
	p.state.Bounded = true
	p.clampSelf()
	return p
}

// SetBoundsToCanvas bounds the pen to the pixels of its canvas.
func (p *Pen) SetBoundsToCanvas() *Pen {
	m := p.canvas.Mapping()
	x0, y0 := m.Logical(0, 0)
	x1, y1 := m.Logical(m.Width-1, m.Height-1)
	return p.SetBounds(Bounds{
		MinX: float64(x0), MaxX: float64(x1),
		MinY: float64(y0), MaxY: float64(y1),
	})
}

// ClearBounds lets the pen move freely again.
func (p *Pen) ClearBounds() *Pen {
	p.state.Bounds = Bounds{}
	p.state.Bounded = false
	return p
}

// Fill flood fills the region under the pen with the pen color. It does
// nothing when the position is not a finite point near the canvas.
func (p *Pen) Fill() *Pen {
	if x, y, ok := pixel(p.state.X, p.state.Y); ok {
		p.canvas.FloodFill(x, y, p.state.Color)
	}
	return p
}

// Repeat calls fn n times with this pen.
//
//	// hexagon
//	pen.Repeat(6, func(p *px.Pen) { p.Forward(40).TurnRight(60) })
func (p *Pen) Repeat(n int, fn func(*Pen)) *Pen {
	for range n {
		fn(p)
	}
	return p
}

func (p *Pen) bound(x, y float64) (float64, float64) {
	if !p.state.Bounded {
		return x, y
	}
	return p.state.Bounds.clamp(x, y)
}

func (p *Pen) clampSelf() {
	p.state.X, p.state.Y = p.bound(p.state.X, p.state.Y)
}

// stroke draws the segment between two pen positions. The segment is
// clipped to the canvas with a wide margin before it is rounded to pixels,
// so huge distances cost no more than short ones; segments with a NaN or
// infinite end draw nothing.
func (p *Pen) stroke(fx0, fy0, fx1, fy1 float64) {
	c := p.canvas
	margin := float64(c.width + c.height + max(p.state.Thickness, 1))
	fx0, fy0, fx1, fy1, ok := c.clipSegment(fx0, fy0, fx1, fy1, margin)
	if !ok {
		return
	}
	x0, y0, ok0 := pixel(fx0, fy0)
	x1, y1, ok1 := pixel(fx1, fy1)
	if !ok0 || !ok1 {
		return
	}
	if p.state.Thickness > 1 {
		c.ThickLine(x0, y0, x1, y1, p.state.Thickness, p.state.Color)
		return
	}
	c.Line(x0, y0, x1, y1, p.state.Color)
}

// maxPixel bounds the positions pixel converts; float64 holds every
// integer up to it exactly.
const maxPixel = 1 << 53

// pixel rounds a pen position to the nearest pixel. ok is false for NaN and
// for positions too far out to convert.
func pixel(x, y float64) (int, int, bool) {
	x, y = math.Round(x), math.Round(y)
	if !(math.Abs(x) <= maxPixel && math.Abs(y) <= maxPixel) {
		return 0, 0, false
	}
	return int(x), int(y), true
}
