package physics

import (
	"math"

	"github.com/jakecoffman/cp/v2"
)

type BodyKind uint8

const (
	Dynamic BodyKind = iota
	Static
	Kinematic
)

// ShapeFilter controls which shapes may collide with each other.
type ShapeFilter struct {
	// Two objects with the same non-zero group value do not collide.
	// This is generally used to group objects in a composite object together to disable self collisions.
	Group uint
	// A bitmask of user definable categories that this object belongs to.
	// The category/mask combinations of both objects in a collision must agree for a collision to occur.
	Categories uint
	// A bitmask of user definable category types that this object object collides with.
	// The category/mask combinations of both objects in a collision must agree for a collision to occur.
	Mask uint
}

var DefaultShapeFilter = ShapeFilter{
	Mask:       math.MaxUint,
	Categories: 1,
}

// Collider describes a labeled shape. The label is what collision rules
// match against.
type Collider struct {
	Label string
	Shape ToShape

	Density  float64
	Friction float64
	Filter   ShapeFilter

	// Sensors report contacts but do not take part in the collision response.
	Sensor bool
}

// ColliderOf returns a collider with the default material.
func ColliderOf(label string, shape ToShape) Collider {
	return Collider{
		Label:    label,
		Shape:    shape,
		Density:  1,
		Friction: 0.5,
		Filter:   DefaultShapeFilter,
	}
}

func (c Collider) AsSensor() Collider {
	c.Sensor = true
	c.Density = 0
	return c
}

func (c Collider) WithFriction(friction float64) Collider {
	c.Friction = friction
	return c
}

func (c Collider) WithFilter(filter ShapeFilter) Collider {
	c.Filter = filter
	return c
}

// Body is a rigid body with one or more labeled colliders.
type Body struct {
	body   *cp.Body
	shapes []*cp.Shape
}

func (b *Body) Position() cp.Vector {
	return b.body.Position()
}

func (b *Body) Velocity() cp.Vector {
	return b.body.Velocity()
}

func (b *Body) SetVelocity(vel cp.Vector) {
	b.body.SetVelocityVector(vel)
}

func (b *Body) Mass() float64 {
	return b.body.Mass()
}

// ApplyImpulse changes the velocity of the body by impulse divided by its mass.
func (b *Body) ApplyImpulse(impulse cp.Vector) {
	b.body.ApplyImpulseAtLocalPoint(impulse, cp.Vector{})
}

// Labels returns the labels of all colliders of the body.
func (b *Body) Labels() []string {
	labels := make([]string, 0, len(b.shapes))
	for _, shape := range b.shapes {
		labels = append(labels, labelOf(shape))
	}

	return labels
}

// CP returns the underlying chipmunk body.
func (b *Body) CP() *cp.Body {
	return b.body
}

func labelOf(shape *cp.Shape) string {
	label, _ := shape.UserData.(string)
	return label
}
