package physics

import (
	"github.com/jakecoffman/cp/v2"
)

// ToShape creates a chipmunk shape attached to the given body.
type ToShape interface {
	MakeShape(body *cp.Body) *cp.Shape
}

type CircleShape struct {
	Radius float64
	Offset cp.Vector
}

func (s CircleShape) MakeShape(body *cp.Body) *cp.Shape {
	return cp.NewCircle(body, s.Radius, s.Offset)
}

// BoxShape is an axis aligned box centered on the body.
type BoxShape struct {
	Width, Height float64
	Radius        float64
}

func (s BoxShape) MakeShape(body *cp.Body) *cp.Shape {
	return cp.NewBox(body, s.Width, s.Height, s.Radius)
}

type SegmentShape struct {
	A, B   cp.Vector
	Radius float64
}

func (s SegmentShape) MakeShape(body *cp.Body) *cp.Shape {
	return cp.NewSegment(body, s.A, s.B, s.Radius)
}
