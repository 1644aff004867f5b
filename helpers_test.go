package crashcourse

import "errors"

type subscription struct {
	eventName string
	callback  CollisionCallback
}

// fakeSource records subscriptions and fires them on demand.
type fakeSource struct {
	subscriptions []subscription
}

func (s *fakeSource) Subscribe(eventName string, callback CollisionCallback) {
	s.subscriptions = append(s.subscriptions, subscription{eventName, callback})
}

func (s *fakeSource) fire(eventName string, pairs ...ContactPair) error {
	var errs []error

	for _, sub := range s.subscriptions {
		if sub.eventName != eventName {
			continue
		}

		errs = append(errs, sub.callback(NotificationOf(eventName, pairs...)))
	}

	return errors.Join(errs...)
}

// countingTarget counts invocations per action.
type countingTarget struct {
	*ActionTable
	calls    map[string]int
	received []CollisionNotification
}

func newCountingTarget(role string, actions ...string) *countingTarget {
	target := &countingTarget{
		ActionTable: NewActionTable(role),
		calls:       map[string]int{},
	}

	for _, name := range actions {
		target.Bind(name, func(notification CollisionNotification) error {
			target.calls[name]++
			target.received = append(target.received, notification)
			return nil
		})
	}

	return target
}

func pairOf(a, b string) ContactPair {
	return ContactPair{BodyA: Body{Label: a}, BodyB: Body{Label: b}}
}
