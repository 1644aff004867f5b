package crashcourse

import "math"

// Size of one grid cell in pixels.
const (
	BlockWidth  = 16
	BlockHeight = 8
)

// Canvas holds the dimensions of the visible play-field in pixels.
type Canvas struct {
	Width  int
	Height int
}

// Grid is the cell layout of the play-field, indexed [row][col]. Zero marks
// an empty cell.
type Grid [][]int

func (g Grid) Rows() int {
	return len(g)
}

func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}

	return len(g[0])
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}

	clone := make(Grid, len(g))
	for idx, row := range g {
		clone[idx] = append([]int(nil), row...)
	}

	return clone
}

// WorldBuilder owns the grid of the play-field and is the target for object
// collision rules.
type WorldBuilder struct {
	canvas Canvas
	grid   Grid

	collisions int
	hooks      []func(CollisionNotification)
}

var _ Target = (*WorldBuilder)(nil)

func NewWorldBuilder() *WorldBuilder {
	return &WorldBuilder{}
}

// SetGrid replaces the current grid with an empty one sized for canvas.
func (w *WorldBuilder) SetGrid(canvas Canvas) {
	rows := max(0, canvas.Height/BlockHeight)
	cols := max(0, canvas.Width/BlockWidth)

	// one backing array for all rows
	cells := make([]int, rows*cols)

	grid := make(Grid, rows)
	for row := range grid {
		grid[row] = cells[row*cols : (row+1)*cols : (row+1)*cols]
	}

	w.canvas = canvas
	w.grid = grid
}

// Grid returns a copy of the current grid.
func (w *WorldBuilder) Grid() (Grid, error) {
	if w.grid == nil {
		return nil, &NotInitializedError{What: "world grid"}
	}

	return w.grid.Clone(), nil
}

func (w *WorldBuilder) Canvas() Canvas {
	return w.canvas
}

func (w *WorldBuilder) Rows() int {
	return w.grid.Rows()
}

func (w *WorldBuilder) Cols() int {
	return w.grid.Cols()
}

func (w *WorldBuilder) Cell(row, col int) (int, error) {
	if err := w.checkBounds(row, col); err != nil {
		return 0, err
	}

	return w.grid[row][col], nil
}

// Place stores value in the given cell.
func (w *WorldBuilder) Place(row, col int, value int) error {
	if err := w.checkBounds(row, col); err != nil {
		return err
	}

	w.grid[row][col] = value
	return nil
}

// CellAt returns the cell covering the canvas position x, y.
func (w *WorldBuilder) CellAt(x, y float64) (row, col int, ok bool) {
	row = int(math.Floor(y / BlockHeight))
	col = int(math.Floor(x / BlockWidth))
	ok = w.grid != nil && w.checkBounds(row, col) == nil
	return
}

func (w *WorldBuilder) checkBounds(row, col int) error {
	if w.grid == nil {
		return &NotInitializedError{What: "world grid"}
	}

	if row < 0 || row >= w.Rows() || col < 0 || col >= w.Cols() {
		return &OutOfBoundsError{Row: row, Col: col, Rows: w.Rows(), Cols: w.Cols()}
	}

	return nil
}

// ObjectCollided is invoked by the event manager when an object rule matched.
func (w *WorldBuilder) ObjectCollided(notification CollisionNotification) error {
	w.collisions++

	for _, hook := range w.hooks {
		hook(notification)
	}

	return nil
}

// OnObjectCollided registers a hook that runs on every ObjectCollided call.
func (w *WorldBuilder) OnObjectCollided(hook func(CollisionNotification)) {
	w.hooks = append(w.hooks, hook)
}

// Collisions returns how often ObjectCollided was invoked.
func (w *WorldBuilder) Collisions() int {
	return w.collisions
}

func (w *WorldBuilder) Role() string {
	return "worldBuilder"
}

func (w *WorldBuilder) Action(name string) (Action, bool) {
	switch name {
	case ActionObjectCollided:
		return w.ObjectCollided, true
	default:
		return nil, false
	}
}
