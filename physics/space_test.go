package physics

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/crashcourse"
	"github.com/stretchr/testify/require"
)

func newTestSpace() *Space {
	space := NewSpace(cp.Vector{Y: -500})

	space.AddBody(Static, cp.Vector{},
		ColliderOf(crashcourse.LabelFloor, SegmentShape{A: cp.Vector{X: -100}, B: cp.Vector{X: 100}, Radius: 1}),
	)

	return space
}

func stepUntil(t *testing.T, space *Space, done func() bool) {
	t.Helper()

	for range 240 {
		require.NoError(t, space.Step(1.0/60.0))
		if done() {
			return
		}
	}

	t.Fatal("condition not met within 240 steps")
}

func TestObjectFallsOntoFloor(t *testing.T) {
	space := newTestSpace()

	var notifications []crashcourse.CollisionNotification
	space.Subscribe(crashcourse.CollisionStart, func(n crashcourse.CollisionNotification) error {
		notifications = append(notifications, n)
		return nil
	})

	space.AddBody(Dynamic, cp.Vector{Y: 20},
		ColliderOf(crashcourse.LabelObject, BoxShape{Width: 4, Height: 4}),
	)

	stepUntil(t, space, func() bool { return len(notifications) > 0 })

	require.Equal(t, crashcourse.CollisionStart, notifications[0].Name)
	require.Len(t, notifications[0].Pairs, 1)
	require.True(t, crashcourse.PairOf(crashcourse.LabelObject, crashcourse.LabelFloor).Match(notifications[0].Pairs[0]))

	// both sides carry the physics body as reference
	pair := notifications[0].Pairs[0]
	for _, body := range []crashcourse.Body{pair.BodyA, pair.BodyB} {
		_, ok := body.Ref.(*Body)
		require.True(t, ok)
	}
}

func TestEventManagerOnSpace(t *testing.T) {
	space := newTestSpace()
	manager := crashcourse.NewEventManager(space)
	world := crashcourse.NewWorldBuilder()

	require.NoError(t, manager.RegisterObjectCollision(world, crashcourse.ObjectFloorCollision))

	var landed int
	target := crashcourse.NewActionTable("player").BindFunc("land", func() { landed++ })
	manager.RegisterPlayerCollision(target, crashcourse.CollisionStart, "land")

	space.AddBody(Dynamic, cp.Vector{X: -50, Y: 20},
		ColliderOf(crashcourse.LabelObject, CircleShape{Radius: 2}),
	)

	space.AddBody(Dynamic, cp.Vector{X: 50, Y: 20},
		ColliderOf(crashcourse.LabelPlayer, BoxShape{Width: 4, Height: 8}),
		ColliderOf(crashcourse.LabelPlayerSensor, BoxShape{Width: 6, Height: 10}).AsSensor(),
	)

	stepUntil(t, space, func() bool { return world.Collisions() > 0 && landed > 0 })

	require.GreaterOrEqual(t, landed, 1)
}

func TestStepJoinsCallbackErrors(t *testing.T) {
	space := newTestSpace()

	errBoom := errors.New("boom")
	space.Subscribe(crashcourse.CollisionStart, func(crashcourse.CollisionNotification) error {
		return errBoom
	})

	space.AddBody(Dynamic, cp.Vector{Y: 10},
		ColliderOf(crashcourse.LabelObject, CircleShape{Radius: 2}),
	)

	var err error
	for range 240 {
		if err = space.Step(1.0 / 60.0); err != nil {
			break
		}
	}

	require.ErrorIs(t, err, errBoom)
}

func TestRemoveBodyPublishesEnd(t *testing.T) {
	space := newTestSpace()

	var started, ended int
	space.Subscribe(crashcourse.CollisionStart, func(crashcourse.CollisionNotification) error {
		started++
		return nil
	})

	space.Subscribe(crashcourse.CollisionEnd, func(crashcourse.CollisionNotification) error {
		ended++
		return nil
	})

	body := space.AddBody(Dynamic, cp.Vector{Y: 10},
		ColliderOf(crashcourse.LabelObject, CircleShape{Radius: 2}),
	)

	require.Equal(t, 2, space.Bodies())
	require.Equal(t, []string{crashcourse.LabelObject}, body.Labels())

	stepUntil(t, space, func() bool { return started > 0 })

	ended = 0
	space.RemoveBody(body)
	require.NoError(t, space.Flush())

	require.Equal(t, 1, ended)
	require.Equal(t, 1, space.Bodies())

	// removing twice is a no-op
	space.RemoveBody(body)
}

func TestSubscribeUnknownEventNeverFires(t *testing.T) {
	space := newTestSpace()

	var buf bytes.Buffer
	space.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	var calls int
	space.Subscribe("collisionActive", func(crashcourse.CollisionNotification) error {
		calls++
		return nil
	})

	space.AddBody(Dynamic, cp.Vector{Y: 10},
		ColliderOf(crashcourse.LabelObject, CircleShape{Radius: 2}),
	)

	for range 120 {
		require.NoError(t, space.Step(1.0/60.0))
	}

	require.Zero(t, calls)
	require.Contains(t, buf.String(), "Subscribed to unknown collision event")
	require.Contains(t, buf.String(), "event=collisionActive")
}

func TestApplyImpulse(t *testing.T) {
	space := NewSpace(cp.Vector{})

	body := space.AddBody(Dynamic, cp.Vector{},
		ColliderOf(crashcourse.LabelPlayer, BoxShape{Width: 4, Height: 4}),
	)

	require.Greater(t, body.Mass(), 0.0)

	body.ApplyImpulse(cp.Vector{Y: 3 * body.Mass()})
	require.InDelta(t, 3, body.Velocity().Y, 1e-9)
	require.InDelta(t, 0, body.Velocity().X, 1e-9)

	require.NoError(t, space.Step(1.0/60.0))
	require.Greater(t, body.Position().Y, 0.0)
}

func TestGroupFilterSuppressesContacts(t *testing.T) {
	overlapping := func(filter ShapeFilter) int {
		space := NewSpace(cp.Vector{})

		var contacts int
		space.Subscribe(crashcourse.CollisionStart, func(n crashcourse.CollisionNotification) error {
			contacts += len(n.Pairs)
			return nil
		})

		for _, x := range []float64{0, 1} {
			space.AddBody(Dynamic, cp.Vector{X: x},
				ColliderOf(crashcourse.LabelObject, CircleShape{Radius: 2}).WithFilter(filter),
			)
		}

		require.NoError(t, space.Step(1.0/60.0))
		return contacts
	}

	require.Equal(t, 1, overlapping(DefaultShapeFilter))

	grouped := DefaultShapeFilter
	grouped.Group = 1
	require.Zero(t, overlapping(grouped))
}
