// Package game implements the snake state machine: the body buffer, the
// per-tick movement step, collision detection and food placement. It is
// UI-agnostic; the terminal layer only reads its accessors between steps.
package game

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
)

// MinPitSize is the smallest playable pit on either axis.
const MinPitSize = 20

// foodAttempts bounds food placement resampling. After this many occupied
// samples the last one is accepted, so on a nearly full pit the food can
// land inside the snake. Known limitation, kept as-is.
const foodAttempts = 100

// StepOutcome reports what a single movement step did.
type StepOutcome int

const (
	Moved StepOutcome = iota
	Ate
	WallCollision
	SelfCollision
)

func (o StepOutcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Ate:
		return "ate"
	case WallCollision:
		return "wall collision"
	case SelfCollision:
		return "self collision"
	default:
		return "unknown"
	}
}

// RunState classifies a run. GameOver and Victory are terminal.
type RunState int

const (
	Playing RunState = iota
	GameOver
	Victory
)

// Game holds the whole state of one run: pit dimensions, snake, food and
// the RNG that places it. All mutation goes through Step and SetDirection;
// there is no locking, a single goroutine must own the game.
type Game struct {
	width  int
	height int
	snake  *Snake
	food   Point
	rng    *rand.Rand
	last   StepOutcome
}

// New creates a run on a width x height pit. The win threshold is half
// the pit perimeter, i.e. width+height. Seed 0 derives one from the clock.
func New(width, height int, seed uint64) (*Game, error) {
	if width < MinPitSize || height < MinPitSize {
		return nil, fmt.Errorf("pit %dx%d is below the %dx%d minimum", width, height, MinPitSize, MinPitSize)
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	g := &Game{
		width:  width,
		height: height,
		rng:    rand.New(rand.NewSource(seed)),
	}
	g.snake = newSnake(Point{X: width / 2, Y: height / 2}, width+height)
	g.food = g.placeFood()
	return g, nil
}

// Step advances the snake one cell. Landing on food grows the snake by one
// segment at the vacated tail cell and places new food. A wall or self
// collision ends the run; stepping a finished game is a no-op that repeats
// the last outcome.
//
// Collisions are checked after the body shift, so moving into the cell the
// tail just vacated is legal.
func (g *Game) Step() StepOutcome {
	if g.State() != Playing {
		return g.last
	}

	tail := g.snake.advance()
	head := g.snake.Head()

	outcome := Moved
	if head == g.food {
		g.snake.grow(tail)
		g.food = g.placeFood()
		outcome = Ate
	}

	switch {
	case head.X < 0 || head.X >= g.width || head.Y < 0 || head.Y >= g.height:
		outcome = WallCollision
	case g.hitsBody(head):
		outcome = SelfCollision
	}

	g.last = outcome
	return outcome
}

// hitsBody reports whether the head overlaps any other segment.
func (g *Game) hitsBody(head Point) bool {
	for _, p := range g.snake.body[1:] {
		if p == head {
			return true
		}
	}
	return false
}

// State classifies the run. A collision ends the run even if the winning
// length was reached on the same step.
func (g *Game) State() RunState {
	switch {
	case g.last == WallCollision || g.last == SelfCollision:
		return GameOver
	case g.snake.Length() >= g.snake.maxLength:
		return Victory
	default:
		return Playing
	}
}

// placeFood samples the pit uniformly, resampling while the cell is under
// the snake. After foodAttempts occupied samples the last one is accepted.
func (g *Game) placeFood() Point {
	var p Point
	for i := 0; i < foodAttempts; i++ {
		p = Point{X: g.rng.Intn(g.width), Y: g.rng.Intn(g.height)}
		if !g.snake.occupies(p) {
			break
		}
	}
	return p
}

// SetDirection steers the snake; reversals are silently ignored.
func (g *Game) SetDirection(d Direction) { g.snake.SetDirection(d) }

func (g *Game) Width() int { return g.width }

func (g *Game) Height() int { return g.height }

func (g *Game) Food() Point { return g.food }

func (g *Game) Head() Point { return g.snake.Head() }

func (g *Game) Body() []Point { return g.snake.Body() }

func (g *Game) Length() int { return g.snake.Length() }

func (g *Game) MaxLength() int { return g.snake.MaxLength() }

func (g *Game) Dir() Direction { return g.snake.Dir() }

// Last returns the most recent step outcome.
func (g *Game) Last() StepOutcome { return g.last }
