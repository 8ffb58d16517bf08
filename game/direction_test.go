package game

import "testing"

var allDirections = []Direction{Up, Down, Left, Right}

func TestDirectionDelta(t *testing.T) {
	cases := []struct {
		dir  Direction
		want Point
	}{
		{Up, Point{X: 0, Y: -1}},
		{Down, Point{X: 0, Y: 1}},
		{Left, Point{X: -1, Y: 0}},
		{Right, Point{X: 1, Y: 0}},
	}
	for _, c := range cases {
		if got := c.dir.Delta(); got != c.want {
			t.Errorf("%v.Delta() = %v, want %v", c.dir, got, c.want)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	cases := []struct {
		dir, want Direction
	}{
		{Up, Down},
		{Down, Up},
		{Left, Right},
		{Right, Left},
	}
	for _, c := range cases {
		if got := c.dir.Opposite(); got != c.want {
			t.Errorf("%v.Opposite() = %v, want %v", c.dir, got, c.want)
		}
		if got := c.dir.Opposite().Opposite(); got != c.dir {
			t.Errorf("%v double-opposite = %v, want identity", c.dir, got)
		}
	}
}

func TestSetDirectionRejectsOnlyReversal(t *testing.T) {
	for _, cur := range allDirections {
		for _, req := range allDirections {
			s := newSnake(Point{X: 10, Y: 10}, 40)
			s.dir = cur
			s.SetDirection(req)
			want := req
			if req == cur.Opposite() {
				want = cur // silently ignored
			}
			if s.dir != want {
				t.Errorf("current %v, request %v: dir = %v, want %v", cur, req, s.dir, want)
			}
		}
	}
}
