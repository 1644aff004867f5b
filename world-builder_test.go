package crashcourse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGridBeforeSetGrid(t *testing.T) {
	world := NewWorldBuilder()

	_, err := world.Grid()
	require.ErrorIs(t, err, ErrNotInitialized)

	require.ErrorIs(t, world.Place(0, 0, 1), ErrNotInitialized)

	_, _, ok := world.CellAt(0, 0)
	require.False(t, ok)
}

func TestSetGridDimensions(t *testing.T) {
	// scenario D
	world := NewWorldBuilder()
	world.SetGrid(Canvas{Width: 160, Height: 80})

	grid, err := world.Grid()
	require.NoError(t, err)
	require.Len(t, grid, 10)

	for _, row := range grid {
		require.Len(t, row, 10)
		for _, cell := range row {
			require.Zero(t, cell)
		}
	}
}

func TestSetGridFloorsPartialCells(t *testing.T) {
	cases := []struct {
		canvas     Canvas
		rows, cols int
	}{
		{Canvas{Width: 640, Height: 480}, 60, 40},
		{Canvas{Width: 100, Height: 45}, 5, 6},
		{Canvas{Width: 15, Height: 7}, 0, 0},
		{Canvas{Width: 16, Height: 7}, 0, 0},
		{Canvas{Width: 15, Height: 8}, 1, 0},
		{Canvas{Width: -32, Height: -16}, 0, 0},
	}

	for _, tc := range cases {
		world := NewWorldBuilder()
		world.SetGrid(tc.canvas)

		grid, err := world.Grid()
		require.NoError(t, err)
		require.Equal(t, tc.rows, len(grid), "%+v", tc.canvas)

		for _, row := range grid {
			require.Len(t, row, tc.cols, "%+v", tc.canvas)
		}
	}
}

func TestSetGridReplacesGrid(t *testing.T) {
	world := NewWorldBuilder()
	world.SetGrid(Canvas{Width: 320, Height: 160})
	require.NoError(t, world.Place(19, 19, 7))

	world.SetGrid(Canvas{Width: 64, Height: 32})

	grid, err := world.Grid()
	require.NoError(t, err)
	require.Equal(t, Grid{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, grid)
}

func TestGridReturnsCopy(t *testing.T) {
	world := NewWorldBuilder()
	world.SetGrid(Canvas{Width: 32, Height: 16})

	grid, err := world.Grid()
	require.NoError(t, err)
	grid[0][0] = 5

	cell, err := world.Cell(0, 0)
	require.NoError(t, err)
	require.Zero(t, cell)
}

func TestPlaceAndCellAt(t *testing.T) {
	world := NewWorldBuilder()
	world.SetGrid(Canvas{Width: 160, Height: 80})
	require.Equal(t, Canvas{Width: 160, Height: 80}, world.Canvas())

	row, col, ok := world.CellAt(40, 17)
	require.True(t, ok)
	require.Equal(t, 2, row)
	require.Equal(t, 2, col)

	require.NoError(t, world.Place(row, col, 3))

	cell, err := world.Cell(2, 2)
	require.NoError(t, err)
	require.Equal(t, 3, cell)

	_, _, ok = world.CellAt(-1, 0)
	require.False(t, ok)

	_, _, ok = world.CellAt(160, 0)
	require.False(t, ok)

	var boundsErr *OutOfBoundsError
	require.ErrorAs(t, world.Place(10, 0, 1), &boundsErr)
	require.Equal(t, 10, boundsErr.Rows)
}

func TestObjectCollidedHooks(t *testing.T) {
	world := NewWorldBuilder()

	var seen []CollisionNotification
	world.OnObjectCollided(func(notification CollisionNotification) {
		seen = append(seen, notification)
	})

	action, ok := world.Action(ActionObjectCollided)
	require.True(t, ok)

	notification := NotificationOf(CollisionStart, pairOf(LabelObject, LabelFloor))
	require.NoError(t, action(notification))

	require.Equal(t, 1, world.Collisions())
	require.Equal(t, []CollisionNotification{notification}, seen)

	_, ok = world.Action("cactusTouched")
	require.False(t, ok)
}
