// Package scene loads drawings described in YAML and renders them onto a
// px.Canvas.
//
// A scene names a canvas size and background, a list of shapes drawn in
// order, and turtle programs run afterwards:
//
//	width: 200
//	height: 200
//	origin: center
//	background: "#102030"
//	shapes:
//	  - kind: circle
//	    x: 0
//	    y: 0
//	    r: 60
//	    fill: gold
//	    outline: black
//	    thickness: 3
//	pens:
//	  - color: white
//	    steps:
//	      - op: repeat
//	        times: 5
//	        steps:
//	          - {op: forward, value: 80}
//	          - {op: right, value: 144}
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/px"
	"github.com/gogpu/px/shape"
)

// ErrInvalidScene is wrapped by every error that describes a problem with
// the scene document itself.
var ErrInvalidScene = errors.New("scene: invalid scene")

// MaxDimension bounds the canvas width and height a scene may request.
const MaxDimension = 1 << 14

// Origin values.
const (
	OriginTopLeft = "top-left"
	OriginCenter  = "center"
)

// Scene is a parsed scene document.
type Scene struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Origin     string `yaml:"origin,omitempty"`
	Background string `yaml:"background,omitempty"`

	// Scale is the integer magnification applied when the scene is
	// exported. It does not affect Render.
	Scale int `yaml:"scale,omitempty"`

	Shapes []Shape   `yaml:"shapes,omitempty"`
	Pens   []Program `yaml:"pens,omitempty"`
}

// Load decodes a scene from r and validates it. Unknown fields are
// rejected.
func Load(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	s := &Scene{}
	if err := dec.Decode(s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidScene)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadFile reads and validates the scene at path.
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("scene: read file: %w", err)
	}
	s, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Marshal encodes s back to YAML.
func (s *Scene) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("scene: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("scene: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// Validate reports the first problem found in s. Errors wrap
// ErrInvalidScene and name the offending field.
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Width > MaxDimension {
		return invalid("width", "must be in 1..%d, got %d", MaxDimension, s.Width)
	}
	if s.Height <= 0 || s.Height > MaxDimension {
		return invalid("height", "must be in 1..%d, got %d", MaxDimension, s.Height)
	}
	switch s.Origin {
	case "", OriginTopLeft, OriginCenter:
	default:
		return invalid("origin", "unknown origin %q", s.Origin)
	}
	if s.Background != "" {
		if _, err := px.ParseColor(s.Background); err != nil {
			return invalid("background", "%v", err)
		}
	}
	if s.Scale < 0 {
		return invalid("scale", "must not be negative, got %d", s.Scale)
	}
	if s.Scale > MaxDimension/s.Width || s.Scale > MaxDimension/s.Height {
		return invalid("scale", "%dx%d scaled by %d exceeds %d pixels a side",
			s.Width, s.Height, s.Scale, MaxDimension)
	}

	for i, sh := range s.Shapes {
		if _, err := sh.Drawable(); err != nil {
			return fmt.Errorf("shapes[%d]: %w", i, err)
		}
	}
	for i, p := range s.Pens {
		if err := p.validate(); err != nil {
			return fmt.Errorf("pens[%d]: %w", i, err)
		}
	}
	return nil
}

// ScaleFactor returns Scale, treating 0 as 1.
func (s *Scene) ScaleFactor() int {
	return max(s.Scale, 1)
}

// Render draws the scene onto a new canvas: background first, then shapes
// in order, then each pen program.
func (s *Scene) Render() (*px.Canvas, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	var opts []px.CanvasOption
	if s.Origin == OriginCenter {
		opts = append(opts, px.WithCenterOrigin())
	}
	c, err := px.NewCanvasSize(s.Width, s.Height, opts...)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if err := s.RenderTo(c); err != nil {
		return nil, err
	}
	return c, nil
}

// RenderTo draws the scene onto an existing canvas. The canvas size and
// origin are taken as they are.
func (s *Scene) RenderTo(c *px.Canvas) error {
	if s.Background != "" {
		bg, err := px.ParseColor(s.Background)
		if err != nil {
			return invalid("background", "%v", err)
		}
		c.Clear(bg)
	}

	group := make(shape.Group, 0, len(s.Shapes))
	for i, sh := range s.Shapes {
		d, err := sh.Drawable()
		if err != nil {
			return fmt.Errorf("shapes[%d]: %w", i, err)
		}
		group = append(group, d)
	}
	group.Draw(c)

	for i, p := range s.Pens {
		if err := p.Run(c.Pen()); err != nil {
			return fmt.Errorf("pens[%d]: %w", i, err)
		}
	}

	px.Logger().Debug("scene: rendered",
		"width", c.Width(), "height", c.Height(),
		"shapes", len(s.Shapes), "pens", len(s.Pens))
	return nil
}

func invalid(field, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidScene, field, fmt.Sprintf(format, args...))
}

func stepErr(i int, err error) error {
	return fmt.Errorf("steps[%d]: %w", i, err)
}
