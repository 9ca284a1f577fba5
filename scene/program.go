package scene

import "github.com/gogpu/px"

// Pen program operations.
const (
	OpForward   = "forward"   // value: distance
	OpBackward  = "backward"  // value: distance
	OpLeft      = "left"      // value: degrees
	OpRight     = "right"     // value: degrees
	OpDirection = "direction" // value: absolute heading in degrees
	OpMove      = "move"      // x, y: jump without drawing
	OpGoto      = "goto"      // x, y: draw to the point when down
	OpUp        = "up"
	OpDown      = "down"
	OpToggle    = "toggle"
	OpColor     = "color"     // color
	OpThickness = "thickness" // value: stroke width
	OpFill      = "fill"      // flood fill under the pen
	OpRepeat    = "repeat"    // times, steps
	OpPush      = "push"      // save the pen state
	OpPop       = "pop"       // restore the last saved state
)

// MaxSteps bounds the number of operations a single program may execute,
// counting every repetition.
const MaxSteps = 1 << 24

// Program is a turtle program: an initial pen state and a list of steps.
type Program struct {
	X         float64 `yaml:"x,omitempty"`
	Y         float64 `yaml:"y,omitempty"`
	Direction float64 `yaml:"direction,omitempty"`
	Color     string  `yaml:"color,omitempty"`
	Thickness int     `yaml:"thickness,omitempty"`

	// Up starts the program with the pen lifted.
	Up bool `yaml:"up,omitempty"`

	// Bounded keeps the pen inside the canvas.
	Bounded bool `yaml:"bounded,omitempty"`

	Steps []Step `yaml:"steps"`
}

// Step is one pen operation. Value, X, Y, Color, Times and Steps are read
// only by the operations that need them.
type Step struct {
	Op    string  `yaml:"op"`
	Value float64 `yaml:"value,omitempty"`
	X     float64 `yaml:"x,omitempty"`
	Y     float64 `yaml:"y,omitempty"`
	Color string  `yaml:"color,omitempty"`
	Times int     `yaml:"times,omitempty"`
	Steps []Step  `yaml:"steps,omitempty"`
}

// Run executes the program with pen, starting from the program's initial
// state. A pop without a matching push fails with ErrInvalidScene; steps
// already executed stay drawn.
func (p Program) Run(pen *px.Pen) error {
	if err := p.validate(); err != nil {
		return err
	}

	st := px.DefaultPenState()
	st.X, st.Y = p.X, p.Y
	st.Direction = p.Direction
	if p.Color != "" {
		c, err := px.ParseColor(p.Color)
		if err != nil {
			return invalid("color", "%v", err)
		}
		st.Color = c
	}
	if p.Thickness > 0 {
		st.Thickness = p.Thickness
	}
	st.Down = !p.Up
	pen.SetState(st)
	if p.Bounded {
		pen.SetBoundsToCanvas()
	}

	var stack []px.PenState
	return run(pen, p.Steps, &stack)
}

func run(pen *px.Pen, steps []Step, stack *[]px.PenState) error {
	for i, s := range steps {
		switch s.Op {
		case OpForward:
			pen.Forward(s.Value)
		case OpBackward:
			pen.Backward(s.Value)
		case OpLeft:
			pen.TurnLeft(s.Value)
		case OpRight:
			pen.TurnRight(s.Value)
		case OpDirection:
			pen.SetDirection(s.Value)
		case OpMove:
			pen.SetPosition(s.X, s.Y)
		case OpGoto:
			pen.MoveTo(s.X, s.Y)
		case OpUp:
			pen.PenUp()
		case OpDown:
			pen.PenDown()
		case OpToggle:
			pen.Toggle()
		case OpColor:
			c, err := px.ParseColor(s.Color)
			if err != nil {
				return stepErr(i, invalid("color", "%v", err))
			}
			pen.SetColor(c)
		case OpThickness:
			pen.SetThickness(int(s.Value))
		case OpFill:
			pen.Fill()
		case OpPush:
			*stack = append(*stack, pen.State())
		case OpPop:
			n := len(*stack)
			if n == 0 {
				return stepErr(i, invalid("op", "pop without push"))
			}
			pen.SetState((*stack)[n-1])
			*stack = (*stack)[:n-1]
		case OpRepeat:
			for range s.Times {
				if err := run(pen, s.Steps, stack); err != nil {
					return stepErr(i, err)
				}
			}
		}
	}
	return nil
}

func (p Program) validate() error {
	if p.Color != "" {
		if _, err := px.ParseColor(p.Color); err != nil {
			return invalid("color", "%v", err)
		}
	}
	if p.Thickness < 0 {
		return invalid("thickness", "must not be negative, got %d", p.Thickness)
	}
	n, err := validateSteps(p.Steps)
	if err != nil {
		return err
	}
	if n > MaxSteps {
		return invalid("steps", "program executes more than %d operations", MaxSteps)
	}
	return nil
}

// validateSteps checks every step and returns the number of operations the
// list executes, saturating just above MaxSteps.
func validateSteps(steps []Step) (int, error) {
	total := 0
	for i, s := range steps {
		switch s.Op {
		case OpForward, OpBackward, OpLeft, OpRight, OpDirection,
			OpMove, OpGoto, OpUp, OpDown, OpToggle, OpFill, OpPush, OpPop:
		case OpThickness:
			if s.Value < 0 {
				return 0, stepErr(i, invalid("value", "thickness must not be negative"))
			}
		case OpColor:
			if _, err := px.ParseColor(s.Color); err != nil {
				return 0, stepErr(i, invalid("color", "%v", err))
			}
		case OpRepeat:
			if s.Times < 0 {
				return 0, stepErr(i, invalid("times", "must not be negative, got %d", s.Times))
			}
			body, err := validateSteps(s.Steps)
			if err != nil {
				return 0, stepErr(i, err)
			}
			if body > 0 && s.Times > (MaxSteps+1)/body {
				return MaxSteps + 1, nil
			}
			total += s.Times * body
		case "":
			return 0, stepErr(i, invalid("op", "missing"))
		default:
			return 0, stepErr(i, invalid("op", "unknown operation %q", s.Op))
		}
		total++
		if total > MaxSteps {
			return MaxSteps + 1, nil
		}
	}
	return total, nil
}
