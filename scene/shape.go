package scene

import (
	"github.com/gogpu/px"
	"github.com/gogpu/px/shape"
)

// Shape kinds.
const (
	KindRect     = "rect"
	KindCircle   = "circle"
	KindEllipse  = "ellipse"
	KindLine     = "line"
	KindTriangle = "triangle"
	KindFill     = "fill"
)

// Point is an [x, y] pair.
type Point [2]int

// Shape is one entry of the shapes list. Which fields are used depends on
// Kind:
//
//	rect      x, y, w, h
//	circle    x, y, r
//	ellipse   x, y, a, b
//	line      points (2), color, thickness
//	triangle  points (3)
//	fill      x, y, color
//
// Closed shapes take fill, outline and thickness. Without either a fill or an
// outline they are filled black.
type Shape struct {
	Kind string `yaml:"kind"`

	X int `yaml:"x,omitempty"`
	Y int `yaml:"y,omitempty"`
	W int `yaml:"w,omitempty"`
	H int `yaml:"h,omitempty"`
	R int `yaml:"r,omitempty"`
	A int `yaml:"a,omitempty"`
	B int `yaml:"b,omitempty"`

	Points []Point `yaml:"points,omitempty"`

	Fill      string `yaml:"fill,omitempty"`
	Outline   string `yaml:"outline,omitempty"`
	Color     string `yaml:"color,omitempty"`
	Thickness int    `yaml:"thickness,omitempty"`
}

// Drawable converts the entry into a shape.Drawable.
func (s Shape) Drawable() (shape.Drawable, error) {
	switch s.Kind {
	case KindRect:
		st, err := s.style()
		if err != nil {
			return nil, err
		}
		r := shape.NewRectangle(s.X, s.Y, s.W, s.H)
		r.Style = st
		return r, nil

	case KindCircle:
		st, err := s.style()
		if err != nil {
			return nil, err
		}
		c := shape.NewCircle(s.X, s.Y, s.R)
		c.Style = st
		return c, nil

	case KindEllipse:
		st, err := s.style()
		if err != nil {
			return nil, err
		}
		e := shape.NewEllipse(s.X, s.Y, s.A, s.B)
		e.Style = st
		return e, nil

	case KindTriangle:
		if len(s.Points) != 3 {
			return nil, invalid("points", "triangle needs 3 points, got %d", len(s.Points))
		}
		st, err := s.style()
		if err != nil {
			return nil, err
		}
		p := s.Points
		t := shape.NewTriangle(p[0][0], p[0][1], p[1][0], p[1][1], p[2][0], p[2][1])
		t.Style = st
		return t, nil

	case KindLine:
		if len(s.Points) != 2 {
			return nil, invalid("points", "line needs 2 points, got %d", len(s.Points))
		}
		col, err := colorOr(s.Color, px.Black, "color")
		if err != nil {
			return nil, err
		}
		p := s.Points
		return shape.NewLine(p[0][0], p[0][1], p[1][0], p[1][1]).
			WithColor(col).
			WithThickness(max(s.Thickness, 1)), nil

	case KindFill:
		col, err := colorOr(s.Color, px.Black, "color")
		if err != nil {
			return nil, err
		}
		return shape.Fill{X: s.X, Y: s.Y, Color: col}, nil

	case "":
		return nil, invalid("kind", "missing")
	default:
		return nil, invalid("kind", "unknown shape %q", s.Kind)
	}
}

func (s Shape) style() (shape.Style, error) {
	if s.Thickness < 0 {
		return shape.Style{}, invalid("thickness", "must not be negative, got %d", s.Thickness)
	}

	st := shape.Style{Thickness: max(s.Thickness, 1)}
	if s.Fill != "" {
		c, err := px.ParseColor(s.Fill)
		if err != nil {
			return shape.Style{}, invalid("fill", "%v", err)
		}
		st = st.WithFill(c)
	}
	if s.Outline != "" {
		c, err := px.ParseColor(s.Outline)
		if err != nil {
			return shape.Style{}, invalid("outline", "%v", err)
		}
		st = st.WithOutline(c, st.Thickness)
	}
	if st.Fill == nil && st.Outline == nil {
		st = st.WithFill(px.Black)
	}
	return st, nil
}

func colorOr(s string, def px.Color, field string) (px.Color, error) {
	if s == "" {
		return def, nil
	}
	c, err := px.ParseColor(s)
	if err != nil {
		return 0, invalid(field, "%v", err)
	}
	return c, nil
}
