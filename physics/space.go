package physics

import (
	"errors"
	"log/slog"

	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/crashcourse"
)

// all labeled shapes share one collision type so a single handler sees every contact
const labeledCollisionType cp.CollisionType = 1

// Space is a chipmunk space that reports contacts of labeled shapes as
// collision notifications. Contacts found during a step are batched and
// published after the step finished.
type Space struct {
	space  *cp.Space
	logger *slog.Logger

	subscribers map[string][]crashcourse.CollisionCallback

	started []crashcourse.ContactPair
	ended   []crashcourse.ContactPair

	bodies map[*cp.Body]*Body
}

var _ crashcourse.CollisionSource = (*Space)(nil)

func NewSpace(gravity cp.Vector) *Space {
	s := &Space{
		space:       cp.NewSpace(),
		logger:      slog.Default(),
		subscribers: map[string][]crashcourse.CollisionCallback{},
		bodies:      map[*cp.Body]*Body{},
	}

	s.space.SetGravity(gravity)

	handler := s.space.NewCollisionHandler(labeledCollisionType, labeledCollisionType)
	handler.BeginFunc = s.beginContact
	handler.SeparateFunc = s.separateContact

	return s
}

func (s *Space) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Subscribe implements crashcourse.CollisionSource. Supported event names are
// crashcourse.CollisionStart and crashcourse.CollisionEnd.
func (s *Space) Subscribe(eventName string, callback crashcourse.CollisionCallback) {
	switch eventName {
	case crashcourse.CollisionStart, crashcourse.CollisionEnd:
	default:
		s.logger.Warn("Subscribed to unknown collision event", slog.String("event", eventName))
	}

	s.subscribers[eventName] = append(s.subscribers[eventName], callback)
}

// AddBody creates a body at the given position with the given colliders.
func (s *Space) AddBody(kind BodyKind, position cp.Vector, colliders ...Collider) *Body {
	var body *cp.Body

	switch kind {
	case Static:
		body = cp.NewStaticBody()
	case Kinematic:
		body = cp.NewKinematicBody()
	default:
		// mass and moment are accumulated from the shape densities
		body = cp.NewBody(0, 0)
	}

	body.SetPosition(position)
	s.space.AddBody(body)

	wrapped := &Body{body: body}
	for _, collider := range colliders {
		shape := collider.Shape.MakeShape(body)

		// add user data so we can identify the shape later
		shape.UserData = collider.Label
		shape.SetCollisionType(labeledCollisionType)
		shape.SetSensor(collider.Sensor)
		shape.SetFriction(collider.Friction)
		shape.SetFilter(cp.NewShapeFilter(collider.Filter.Group, collider.Filter.Categories, collider.Filter.Mask))

		if kind == Dynamic && collider.Density > 0 {
			shape.SetDensity(collider.Density)
		}

		s.space.AddShape(shape)
		wrapped.shapes = append(wrapped.shapes, shape)
	}

	body.UserData = wrapped
	s.bodies[body] = wrapped

	return wrapped
}

// RemoveBody removes the body and all its shapes from the space.
func (s *Space) RemoveBody(body *Body) {
	if _, ok := s.bodies[body.body]; !ok {
		return
	}

	for _, shape := range body.shapes {
		s.space.RemoveShape(shape)
	}

	s.space.RemoveBody(body.body)
	delete(s.bodies, body.body)
}

// Bodies returns the number of bodies in the space.
func (s *Space) Bodies() int {
	return len(s.bodies)
}

// Step advances the simulation and publishes the contacts that started and
// ended during the step. Errors returned by subscribers are joined.
func (s *Space) Step(dt float64) error {
	s.space.Step(dt)
	return s.Flush()
}

// Flush publishes pending contacts, e.g. separations caused by RemoveBody.
func (s *Space) Flush() error {
	started, ended := s.started, s.ended
	s.started, s.ended = nil, nil

	return errors.Join(
		s.publish(crashcourse.CollisionStart, started),
		s.publish(crashcourse.CollisionEnd, ended),
	)
}

func (s *Space) publish(eventName string, pairs []crashcourse.ContactPair) error {
	if len(pairs) == 0 {
		return nil
	}

	notification := crashcourse.NotificationOf(eventName, pairs...)

	var errs []error
	for _, callback := range s.subscribers[eventName] {
		if err := callback(notification); err != nil {
			s.logger.Debug("Collision callback failed",
				slog.String("event", eventName),
				slog.String("error", err.Error()),
			)

			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (s *Space) beginContact(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
	s.started = append(s.started, pairOf(arb))

	// keep the regular collision response
	return true
}

func (s *Space) separateContact(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
	s.ended = append(s.ended, pairOf(arb))
}

func pairOf(arb *cp.Arbiter) crashcourse.ContactPair {
	shapeA, shapeB := arb.Shapes()

	return crashcourse.ContactPair{
		BodyA: crashcourse.Body{Label: labelOf(shapeA), Ref: shapeA.Body().UserData},
		BodyB: crashcourse.Body{Label: labelOf(shapeB), Ref: shapeB.Body().UserData},
	}
}
