package game

// Pacer gates movement to every Nth frame so input polling and rendering
// can run faster than the snake moves. It counts frames, no wall clock, so
// cadence is testable without sleeps.
type Pacer struct {
	framesPerMove int
	frames        int
}

// NewPacer builds a gate that opens every framesPerMove frames (minimum 1).
func NewPacer(framesPerMove int) *Pacer {
	if framesPerMove < 1 {
		framesPerMove = 1
	}
	return &Pacer{framesPerMove: framesPerMove}
}

// Tick counts one frame and reports whether the snake moves on it.
func (p *Pacer) Tick() bool {
	p.frames++
	if p.frames >= p.framesPerMove {
		p.frames = 0
		return true
	}
	return false
}
