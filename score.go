package crashcourse

// Score keeps the points of the current run.
type Score struct {
	points int
}

func (s *Score) ShowPoints() int {
	return s.points
}

func (s *Score) Add(points int) {
	s.points += max(0, points)
}

// Penalize removes points, used for the in-game penalty events.
func (s *Score) Penalize(points int) {
	s.points -= max(0, points)
}

func (s *Score) Reset() {
	s.points = 0
}
