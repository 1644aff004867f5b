package crashcourse

import "log/slog"

// Event names raised by a CollisionSource.
const (
	CollisionStart = "collisionStart"
	CollisionEnd   = "collisionEnd"
)

// Body is a physics entity as seen by the dispatch layer. Only the label is read.
type Body struct {
	Label string

	// Ref is an opaque handle to the engine body, passed through to actions.
	Ref any
}

// ContactPair is an unordered pair of bodies that started or stopped touching.
type ContactPair struct {
	BodyA Body
	BodyB Body
}

func (p ContactPair) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("a", p.BodyA.Label),
		slog.String("b", p.BodyB.Label),
	)
}

// CollisionNotification is the payload of one engine event. A single step
// may batch multiple new contacts into one notification.
type CollisionNotification struct {
	Name  string
	Pairs []ContactPair
}

// NotificationOf builds a notification holding the given pairs.
func NotificationOf(name string, pairs ...ContactPair) CollisionNotification {
	return CollisionNotification{Name: name, Pairs: pairs}
}

// CollisionCallback receives notifications from a CollisionSource. A returned
// error is handed to the source's error channel.
type CollisionCallback func(notification CollisionNotification) error

// CollisionSource is the physics engine as seen by the EventManager.
type CollisionSource interface {
	Subscribe(eventName string, callback CollisionCallback)
}
