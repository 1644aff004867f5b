package crashcourse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var testLabels = []string{"", LabelPlayer, LabelPlayerSensor, LabelObject, LabelFloor, LabelCactus, LabelPlatform}

func TestPairOfMatchesEitherOrder(t *testing.T) {
	set := PairOf(LabelObject, LabelFloor)

	for _, a := range testLabels {
		for _, b := range testLabels {
			expected := (a == LabelObject && b == LabelFloor) || (a == LabelFloor && b == LabelObject)
			require.Equal(t, expected, set.Match(pairOf(a, b)), "labels %q, %q", a, b)
		}
	}
}

func TestAnyOfMatchesEitherSlot(t *testing.T) {
	set := AnyOf(LabelPlayerSensor)

	for _, a := range testLabels {
		for _, b := range testLabels {
			expected := a == LabelPlayerSensor || b == LabelPlayerSensor
			require.Equal(t, expected, set.Match(pairOf(a, b)), "labels %q, %q", a, b)
		}
	}
}

func TestPairOfSelfPairing(t *testing.T) {
	set := PairOf(LabelObject, LabelObject)

	for _, a := range testLabels {
		for _, b := range testLabels {
			expected := a == LabelObject && b == LabelObject
			require.Equal(t, expected, set.Match(pairOf(a, b)), "labels %q, %q", a, b)
		}
	}
}

func TestEmptyLabelsNeverMatch(t *testing.T) {
	require.False(t, AnyOf("").Match(pairOf("", "")))
	require.False(t, PairOf("", LabelFloor).Match(pairOf("", LabelFloor)))
	require.False(t, PairOf(LabelFloor, "").Match(pairOf(LabelFloor, "")))
}

func TestRuleValidate(t *testing.T) {
	require.NoError(t, objectFloorRule.Validate())
	require.NoError(t, playerSensorRule.Validate())

	var labelErr *InvalidLabelError
	err := CollisionRule{Id: "broken", Labels: PairOf(LabelObject, "")}.Validate()
	require.ErrorAs(t, err, &labelErr)
	require.Equal(t, "broken", labelErr.RuleId)
}

func TestRuleMatchPolicy(t *testing.T) {
	notification := NotificationOf(CollisionStart,
		pairOf(LabelPlayer, LabelPlatform),
		pairOf(LabelFloor, LabelObject),
		pairOf(LabelObject, LabelFloor),
	)

	require.Len(t, objectFloorRule.Match(notification, PairPolicyAll), 2)
	require.Empty(t, objectFloorRule.Match(notification, PairPolicyFirst))

	require.Empty(t, objectFloorRule.Match(CollisionNotification{}, PairPolicyAll))
	require.Empty(t, objectFloorRule.Match(CollisionNotification{}, PairPolicyFirst))
}

func TestLabelSetString(t *testing.T) {
	require.Equal(t, "{object, floor}", PairOf(LabelObject, LabelFloor).String())
	require.Equal(t, "{playerSensor, *}", AnyOf(LabelPlayerSensor).String())
	require.Equal(t, []string{"player", "cactus"}, PairOf(LabelPlayer, LabelCactus).Labels())
}
