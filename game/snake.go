package game

// Point is a cell inside the pit: X column, Y row, both zero-based.
// Border cells lie outside the valid range.
type Point struct {
	X, Y int
}

// Snake is the ordered body of the snake, head at index 0, tail last.
// The body slice is allocated once at maxLength capacity; growth is
// bounded by that capacity.
type Snake struct {
	body      []Point
	maxLength int
	dir       Direction
}

// initialLength is the number of segments a snake starts with.
const initialLength = 3

func newSnake(center Point, maxLength int) *Snake {
	s := &Snake{
		body:      make([]Point, 0, maxLength),
		maxLength: maxLength,
		dir:       Right,
	}
	for i := 0; i < initialLength; i++ {
		s.body = append(s.body, Point{X: center.X - i, Y: center.Y})
	}
	return s
}

// SetDirection steers the snake. A reversal onto the snake's own neck is
// silently ignored; every other request applies from the next step.
func (s *Snake) SetDirection(d Direction) {
	if d == s.dir.Opposite() {
		return
	}
	s.dir = d
}

// Head returns the leading segment.
func (s *Snake) Head() Point { return s.body[0] }

// Body returns the segments head first. Callers must not retain the
// slice across steps.
func (s *Snake) Body() []Point { return s.body }

func (s *Snake) Length() int { return len(s.body) }

func (s *Snake) MaxLength() int { return s.maxLength }

func (s *Snake) Dir() Direction { return s.dir }

// advance shifts every segment onto its predecessor and moves the head
// one cell along the current direction. It returns the vacated tail cell
// so a grow can restore it.
func (s *Snake) advance() Point {
	tail := s.body[len(s.body)-1]
	copy(s.body[1:], s.body[:len(s.body)-1])
	d := s.dir.Delta()
	s.body[0].X += d.X
	s.body[0].Y += d.Y
	return tail
}

// grow appends one segment at the given cell, never past maxLength.
func (s *Snake) grow(tail Point) {
	if len(s.body) >= s.maxLength {
		return
	}
	s.body = append(s.body, tail)
}

// occupies reports whether any segment sits on p.
func (s *Snake) occupies(p Point) bool {
	for _, q := range s.body {
		if q == p {
			return true
		}
	}
	return false
}
