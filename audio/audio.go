// Package audio plays short synthesized cues for game events.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player plays tone cues through the system speaker. A failed speaker
// init leaves it disabled and every cue becomes a no-op, so the game can
// always run silent.
type Player struct {
	enabled bool
}

// NewPlayer initializes the speaker. A non-nil error is informational;
// the returned player is still usable, just silent.
func NewPlayer(mute bool) (*Player, error) {
	if mute {
		return &Player{}, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Player{}, err
	}
	return &Player{enabled: true}, nil
}

func (p *Player) tone(freq float64, d time.Duration) {
	if !p.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// Eat chirps when the snake grows.
func (p *Player) Eat() { p.tone(880, 50*time.Millisecond) }

// GameOver plays a low losing tone.
func (p *Player) GameOver() { p.tone(220, 300*time.Millisecond) }

// Victory plays a rising two-tone figure.
func (p *Player) Victory() {
	if !p.enabled {
		return
	}
	low, err := generators.SineTone(sampleRate, 660)
	if err != nil {
		return
	}
	high, err := generators.SineTone(sampleRate, 990)
	if err != nil {
		return
	}
	n := sampleRate.N(150 * time.Millisecond)
	speaker.Play(beep.Seq(beep.Take(n, low), beep.Take(n, high)))
}
