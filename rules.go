package crashcourse

import "fmt"

// Labels used by the built-in rules.
const (
	LabelPlayer       = "player"
	LabelPlayerSensor = "playerSensor"
	LabelObject       = "object"
	LabelFloor        = "floor"
	LabelCactus       = "cactus"
	LabelPlatform     = "platform"
)

// LabelSet is the set of labels a rule requires. It holds either one label,
// which may appear on either body, or two labels that must be carried by the
// two bodies in any order.
type LabelSet struct {
	first, second string
	pair          bool
}

// AnyOf matches every pair where at least one body carries the given label.
func AnyOf(label string) LabelSet {
	return LabelSet{first: label}
}

// PairOf matches every pair whose labels equal {a, b}, independent of order.
// PairOf(x, x) requires both bodies to be labeled x.
func PairOf(a, b string) LabelSet {
	return LabelSet{first: a, second: b, pair: true}
}

func (s LabelSet) Labels() []string {
	if s.pair {
		return []string{s.first, s.second}
	}

	return []string{s.first}
}

func (s LabelSet) valid() bool {
	return s.first != "" && (!s.pair || s.second != "")
}

// Match reports whether the pair satisfies the label set.
func (s LabelSet) Match(pair ContactPair) bool {
	a, b := pair.BodyA.Label, pair.BodyB.Label

	if !s.valid() {
		return false
	}

	if !s.pair {
		return a == s.first || b == s.first
	}

	return (a == s.first && b == s.second) || (a == s.second && b == s.first)
}

func (s LabelSet) String() string {
	if s.pair {
		return fmt.Sprintf("{%s, %s}", s.first, s.second)
	}

	return fmt.Sprintf("{%s, *}", s.first)
}

// CollisionRule maps a label set to the name of the action to invoke on a
// target when a pair matches.
type CollisionRule struct {
	Id     string
	Labels LabelSet
	Action string
}

func (r CollisionRule) Validate() error {
	if !r.Labels.valid() {
		return &InvalidLabelError{RuleId: r.Id}
	}

	return nil
}

// Match returns the pairs of the notification that satisfy the rule. With
// PairPolicyFirst only the first pair is inspected. With PairPolicyAll every
// returned pair gets its own action invocation, so a notification may
// trigger the action more than once.
func (r CollisionRule) Match(notification CollisionNotification, policy PairPolicy) []ContactPair {
	pairs := notification.Pairs
	if policy == PairPolicyFirst && len(pairs) > 1 {
		pairs = pairs[:1]
	}

	var matched []ContactPair
	for _, pair := range pairs {
		if r.Labels.Match(pair) {
			matched = append(matched, pair)
		}
	}

	return matched
}

// ActionObjectCollided is the action name the object rules dispatch to.
const ActionObjectCollided = "objectCollided"

var (
	playerSensorRule = CollisionRule{
		Id:     "playerSensor",
		Labels: AnyOf(LabelPlayerSensor),
	}

	objectFloorRule = CollisionRule{
		Id:     "objectFloor",
		Labels: PairOf(LabelObject, LabelFloor),
		Action: ActionObjectCollided,
	}

	playerCactusRule = CollisionRule{
		Id:     "playerCactus",
		Labels: PairOf(LabelPlayer, LabelCactus),
		Action: ActionObjectCollided,
	}
)
