package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gogpu/px"
	"github.com/gogpu/px/shape"
)

// demos maps demo names to functions that draw onto a square canvas.
var demos = map[string]func(c *px.Canvas){
	"tree":     drawTree,
	"sun":      drawSun,
	"shapes":   drawShapes,
	"polygons": drawPolygons,
}

// demoNames returns the sorted demo names.
func demoNames() []string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// renderDemo draws the named demo on a new size x size canvas.
func renderDemo(name string, size int) (*px.Canvas, error) {
	draw, ok := demos[name]
	if !ok {
		return nil, fmt.Errorf("unknown demo %q (choose from %s)", name, strings.Join(demoNames(), ", "))
	}
	c, err := px.NewCanvasSize(size, size, px.WithCenterOrigin())
	if err != nil {
		return nil, err
	}
	draw(c)
	return c, nil
}

// drawTree grows a fractal tree from the bottom edge.
func drawTree(c *px.Canvas) {
	s := float64(c.Width())
	c.Clear(px.RGB(0xf4, 0xee, 0xdc))
	c.FillRect(-c.Width()/2, c.Height()/2-c.Height()/12, c.Width(), c.Height()/12, px.RGB(0x55, 0x8b, 0x2f))

	pen := c.Pen().PenUp().SetPosition(0, s/2-s/12).SetDirection(-90).PenDown()
	branch(pen, s/4.2, 10)
}

func branch(p *px.Pen, length float64, depth int) {
	if depth == 0 || length < 2 {
		return
	}
	saved := p.State()

	p.SetThickness(max(depth-2, 1))
	if depth > 3 {
		p.SetColor(px.RGB(0x5d, 0x40, 0x37))
	} else {
		p.SetColor(px.RGB(0x2e, uint8(0x7d+depth*20), 0x32))
	}
	p.Forward(length)

	p.TurnLeft(24)
	branch(p, length*0.74, depth-1)
	p.TurnRight(48)
	branch(p, length*0.68, depth-1)

	p.SetState(saved)
}

// drawSun draws a sun with rays over a horizon.
func drawSun(c *px.Canvas) {
	s := c.Width()
	r := s / 6
	c.Clear(px.SkyBlue)
	c.FillRect(-s/2, s/5, s, s, px.RGB(0x1e, 0x88, 0xe5))

	c.FillCircle(0, 0, r, px.Gold)
	c.ThickOutlineCircle(0, 0, r, max(s/128, 2), px.RGB(0xff, 0x8f, 0x00))

	ray := float64(s) / 8
	pen := c.Pen().SetColor(px.RGB(0xff, 0xb3, 0x00)).SetThickness(max(s/170, 1))
	pen.Repeat(24, func(p *px.Pen) {
		p.PenUp().Forward(float64(r) + ray/4)
		p.PenDown().Forward(ray)
		p.PenUp().Backward(float64(r) + ray*5/4)
		p.TurnRight(15)
	})

	// Reflection on the water.
	for i, w := range []int{r, r * 3 / 4, r / 2, r / 4} {
		y := s/5 + (i+1)*s/24
		c.ThickHLine(y, -w, w, max(s/200, 1), px.RGB(0xff, 0xe0, 0x82))
	}
}

// drawShapes shows every primitive in one composition.
func drawShapes(c *px.Canvas) {
	s := c.Width()
	u := s / 16

	shape.Group{
		shape.NewRectangle(-s/2, -s/2, s, s).WithFill(px.White),
		shape.NewRectangle(-7*u, -7*u, 6*u, 4*u).WithFill(px.RGB(0xef, 0x53, 0x50)).WithOutline(px.Black, max(u/6, 1)),
		shape.NewCircle(4*u, -5*u, 3*u).WithFill(px.RGB(0x42, 0xa5, 0xf5)).WithOutline(px.DarkBlue, max(u/4, 1)),
		shape.NewEllipse(-4*u, 3*u, 3*u, u*3/2).WithoutFill().WithOutline(px.Purple, max(u/3, 1)),
		shape.NewTriangle(u, 7*u, 7*u, 7*u, 4*u, u).WithFill(px.RGB(0x66, 0xbb, 0x6a)).WithOutline(px.DarkGreen, 1),
		shape.NewLine(-7*u, 7*u, 7*u, -u).WithColor(px.Gray).WithThickness(max(u/5, 1)),
		shape.RectangleFromPoints(-u, -u, u, u).WithoutFill().WithOutline(px.Black, 1),
		shape.Fill{X: 0, Y: 0, Color: px.Yellow},
	}.Draw(c)
}

// drawPolygons draws regular polygons with 3 to 10 sides on a grid.
func drawPolygons(c *px.Canvas) {
	s := float64(c.Width())
	c.Clear(px.RGB(0x26, 0x32, 0x38))
	palette := []px.Color{px.Red, px.Yellow, px.Green, px.Cyan, px.Blue, px.Magenta, px.Gold, px.White}

	cell := s / 4
	side := cell / 3
	pen := c.Pen().SetThickness(max(int(s/256), 1))
	for i, sides := 0, 3; sides <= 10; i, sides = i+1, sides+1 {
		col, row := float64(i%4), float64(i/4)
		x := -s/2 + cell*col + cell/2 - side/2
		y := -s/4 + s/2*row - cell/4

		pen.PenUp().SetPosition(x, y).SetDirection(0).PenDown().SetColor(palette[i%len(palette)])
		pen.Repeat(sides, func(p *px.Pen) {
			p.Forward(side).TurnRight(360 / float64(sides))
		})
	}
}
