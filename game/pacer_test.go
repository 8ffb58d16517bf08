package game

import "testing"

func TestPacerGatesEveryNthFrame(t *testing.T) {
	p := NewPacer(3)
	for frame := 1; frame <= 9; frame++ {
		got := p.Tick()
		want := frame%3 == 0
		if got != want {
			t.Errorf("frame %d: Tick() = %v, want %v", frame, got, want)
		}
	}
}

func TestPacerEveryFrame(t *testing.T) {
	p := NewPacer(1)
	for frame := 0; frame < 5; frame++ {
		if !p.Tick() {
			t.Fatalf("frame %d gated with framesPerMove=1", frame)
		}
	}
}

func TestPacerClampsNonPositive(t *testing.T) {
	p := NewPacer(0)
	if !p.Tick() {
		t.Error("NewPacer(0) should behave like NewPacer(1)")
	}
}
