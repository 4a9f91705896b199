package render

import (
	"math"

	lsystem "github.com/viktordanov/lsys"
)

// stepFactor is how much IncreaseStep and DecreaseStep scale the step.
const stepFactor = 2.0

type Point struct {
	X, Y float64
}

// Segment is one Forward move. Coordinates are y-up.
type Segment struct {
	From, To Point
	Width    float64
}

type turtleState struct {
	position Point
	heading  float64 // degrees, counter-clockwise from the x axis
	step     float64
	angle    float64
	width    float64
}

// Turtle traces line segments. Every Push scales the step, turn angle and
// line width of the nested branch by the configured multipliers; Pop restores
// the saved state. The turtle starts at the origin facing up.
type Turtle struct {
	config   lsystem.RendererConfig
	state    turtleState
	stack    []turtleState
	segments []Segment
}

func NewTurtle(config lsystem.RendererConfig) *Turtle {
	return &Turtle{
		config: config,
		state: turtleState{
			heading: 90,
			step:    config.StartingStep,
			angle:   config.StartingAngle,
			width:   config.StartingLineWidth,
		},
	}
}

func (t *Turtle) Push() {
	t.stack = append(t.stack, t.state)
	t.state.step *= t.config.StepMultiplier
	t.state.angle *= t.config.AngleMultiplier
	t.state.width *= t.config.LineWidthMultiplier
}

// Pop restores the last saved state. Unbalanced pops are ignored.
func (t *Turtle) Pop() {
	if len(t.stack) == 0 {
		return
	}
	t.state = t.stack[len(t.stack)-1]
	t.stack = t.stack[:len(t.stack)-1]
}

func (t *Turtle) Render(i lsystem.Instruction) {
	switch i {
	case lsystem.Forward:
		t.forward()
	case lsystem.RotateLeft:
		t.state.heading += t.state.angle
	case lsystem.RotateRight:
		t.state.heading -= t.state.angle
	case lsystem.IncreaseStep:
		t.state.step *= stepFactor
	case lsystem.DecreaseStep:
		t.state.step /= stepFactor
	case lsystem.PushState:
		t.Push()
	case lsystem.PopState:
		t.Pop()
	}
}

func (t *Turtle) Flush() error { return nil }

func (t *Turtle) forward() {
	rad := t.state.heading * math.Pi / 180
	from := t.state.position
	to := Point{
		X: from.X + t.state.step*math.Cos(rad),
		Y: from.Y + t.state.step*math.Sin(rad),
	}
	t.segments = append(t.segments, Segment{From: from, To: to, Width: t.state.width})
	t.state.position = to
}

func (t *Turtle) Segments() []Segment {
	return t.segments
}

func (t *Turtle) Position() Point {
	return t.state.position
}

// Heading is the current direction in degrees.
func (t *Turtle) Heading() float64 {
	return t.state.heading
}

// Bounds returns the smallest box containing every segment. It is empty when
// nothing was drawn.
func (t *Turtle) Bounds() (lo, hi Point) {
	if len(t.segments) == 0 {
		return Point{}, Point{}
	}
	lo = t.segments[0].From
	hi = lo
	for _, s := range t.segments {
		for _, p := range [2]Point{s.From, s.To} {
			lo.X = math.Min(lo.X, p.X)
			lo.Y = math.Min(lo.Y, p.Y)
			hi.X = math.Max(hi.X, p.X)
			hi.Y = math.Max(hi.Y, p.Y)
		}
	}
	return lo, hi
}
