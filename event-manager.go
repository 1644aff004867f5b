package crashcourse

import (
	"errors"
	"fmt"
	"log/slog"
)

// PairPolicy decides which pairs of a notification are inspected.
type PairPolicy uint8

const (
	// PairPolicyAll inspects every pair and invokes the action once per matching
	// pair, not once per notification. Two qualifying pairs in one notification
	// invoke the action twice.
	PairPolicyAll PairPolicy = iota

	// PairPolicyFirst inspects only the first pair of each notification.
	PairPolicyFirst
)

func (p PairPolicy) String() string {
	switch p {
	case PairPolicyAll:
		return "all"
	case PairPolicyFirst:
		return "first"
	default:
		return fmt.Sprintf("PairPolicy(%d)", uint8(p))
	}
}

// HandlerSelector names one of the object collision sub handlers.
type HandlerSelector string

const (
	ObjectFloorCollision  HandlerSelector = "objectFloorCollision"
	PlayerCactusCollision HandlerSelector = "playerCactusCollision"
)

// EventManager turns the coarse notifications of a CollisionSource into label
// based game events. It keeps no state across notifications besides the list
// of registered rules.
type EventManager struct {
	source CollisionSource
	policy PairPolicy
	logger *slog.Logger

	rules []CollisionRule
}

type EventManagerOption func(m *EventManager)

func WithPairPolicy(policy PairPolicy) EventManagerOption {
	return func(m *EventManager) {
		m.policy = policy
	}
}

func WithLogger(logger *slog.Logger) EventManagerOption {
	return func(m *EventManager) {
		m.logger = logger
	}
}

func NewEventManager(source CollisionSource, options ...EventManagerOption) *EventManager {
	m := &EventManager{
		source: source,
		policy: PairPolicyAll,
		logger: slog.Default(),
	}

	for _, option := range options {
		option(m)
	}

	return m
}

func (m *EventManager) PairPolicy() PairPolicy {
	return m.policy
}

// Rules returns a copy of all registered rules in registration order.
func (m *EventManager) Rules() []CollisionRule {
	return append([]CollisionRule(nil), m.rules...)
}

// RegisterRule subscribes a handler for eventName that invokes the rule's action
// on target for every matching pair. Registering the same rule twice installs
// two independent handlers.
func (m *EventManager) RegisterRule(target Target, eventName string, rule CollisionRule) error {
	if err := rule.Validate(); err != nil {
		return err
	}

	m.subscribe(target, eventName, rule, func(notification CollisionNotification) error {
		return m.dispatch(notification, target, rule)
	})

	return nil
}

// RegisterPlayerCollision invokes actionName on target whenever the player
// sensor touches anything.
func (m *EventManager) RegisterPlayerCollision(target Target, eventName, actionName string) {
	rule := playerSensorRule
	rule.Action = actionName

	m.subscribe(target, eventName, rule, func(notification CollisionNotification) error {
		return m.PlayerCollision(notification, target, actionName)
	})
}

// RegisterObjectCollision subscribes the sub handler named by selector to
// the collision start event.
func (m *EventManager) RegisterObjectCollision(target Target, selector HandlerSelector) error {
	var handler func(CollisionNotification, Target) error
	var rule CollisionRule

	switch selector {
	case ObjectFloorCollision:
		handler, rule = m.ObjectFloorCollision, objectFloorRule
	case PlayerCactusCollision:
		handler, rule = m.PlayerCactusCollision, playerCactusRule
	default:
		return &UnknownHandlerError{Selector: selector}
	}

	m.subscribe(target, CollisionStart, rule, func(notification CollisionNotification) error {
		return handler(notification, target)
	})

	return nil
}

func (m *EventManager) subscribe(target Target, eventName string, rule CollisionRule, callback CollisionCallback) {
	var role string
	if target != nil {
		role = target.Role()
	}

	m.rules = append(m.rules, rule)

	m.logger.Debug("Register collision rule",
		slog.String("event", eventName),
		slog.String("rule", rule.Id),
		slog.String("labels", rule.Labels.String()),
		slog.String("target", role),
	)

	m.source.Subscribe(eventName, callback)
}

// PlayerCollision invokes action on target if the player sensor is part of
// the notification.
func (m *EventManager) PlayerCollision(notification CollisionNotification, target Target, action string) error {
	rule := playerSensorRule
	rule.Action = action
	return m.dispatch(notification, target, rule)
}

// ObjectFloorCollision invokes objectCollided on target if an object landed on the floor.
func (m *EventManager) ObjectFloorCollision(notification CollisionNotification, target Target) error {
	return m.dispatch(notification, target, objectFloorRule)
}

// PlayerCactusCollision invokes objectCollided on target if the player ran into a cactus.
func (m *EventManager) PlayerCactusCollision(notification CollisionNotification, target Target) error {
	return m.dispatch(notification, target, playerCactusRule)
}

func (m *EventManager) IsPlayerSensorContact(notification CollisionNotification) bool {
	return len(playerSensorRule.Match(notification, m.policy)) > 0
}

func (m *EventManager) IsObjectFloorContact(notification CollisionNotification) bool {
	return len(objectFloorRule.Match(notification, m.policy)) > 0
}

func (m *EventManager) IsPlayerCactusContact(notification CollisionNotification) bool {
	return len(playerCactusRule.Match(notification, m.policy)) > 0
}

// dispatch invokes the rule's action for every matched pair. A failing pair
// does not stop the remaining pairs, all errors are joined.
func (m *EventManager) dispatch(notification CollisionNotification, target Target, rule CollisionRule) error {
	var errs []error

	for _, pair := range rule.Match(notification, m.policy) {
		m.logger.Debug("Dispatch collision",
			slog.String("rule", rule.Id),
			slog.String("action", rule.Action),
			slog.Any("pair", pair),
		)

		if err := invoke(target, rule.Action, NotificationOf(notification.Name, pair)); err != nil {
			errs = append(errs, fmt.Errorf("dispatch rule %q: %w", rule.Id, err))
		}
	}

	return errors.Join(errs...)
}
