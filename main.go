// Terminal snake: steer with the arrow keys, eat food to grow, win by
// reaching half the pit perimeter in length.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"snake-tui/audio"
	"snake-tui/game"
	"snake-tui/ui"
)

// frameInterval caps the frame rate; movement is gated separately by the
// -speed flag (frames per move).
const frameInterval = 50 * time.Millisecond

func main() {
	width := flag.Int("width", 40, "pit width in cells")
	height := flag.Int("height", 20, "pit height in cells")
	speed := flag.Int("speed", 2, "frames per snake move (lower = faster)")
	seed := flag.Uint64("seed", 0, "food RNG seed, 0 uses the clock")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	if err := run(*width, *height, *speed, *seed, *mute); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(width, height, speed int, seed uint64, mute bool) error {
	g, err := game.New(width, height, seed)
	if err != nil {
		return err
	}

	// Speaker init happens before the screen grabs the terminal so a
	// failure can still be reported; the game runs silent either way.
	player, err := audio.NewPlayer(mute)
	if err != nil {
		log.Printf("audio disabled: %v", err)
	}

	r, err := ui.NewRenderer()
	if err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer r.Fini()

	if !r.FitsPit(width, height) {
		return fmt.Errorf("terminal too small: need at least %dx%d (including borders)", width+4, height+4)
	}
	r.Layout(width, height)

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := r.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	if !waitForStart(r, g, events) {
		return nil
	}

	if running := gameLoop(r, g, player, speed, events); !running {
		return nil
	}

	r.DrawEnd(g)
	waitForQuit(r, g, events)
	return nil
}

// waitForStart blocks on the title card until space (true) or quit (false).
func waitForStart(r *ui.Renderer, g *game.Game, events <-chan tcell.Event) bool {
	r.DrawStart(g)
	for ev := range events {
		if _, ok := ev.(*tcell.EventResize); ok {
			r.Layout(g.Width(), g.Height())
			r.DrawStart(g)
			continue
		}
		switch ui.MapEvent(ev) {
		case ui.KeyStart:
			return true
		case ui.KeyQuit:
			return false
		}
	}
	return false
}

// gameLoop runs the cooperative loop: drain one event at a time, advance
// the snake on the movement cadence, draw every frame. Returns false when
// the player quit mid-run, true when the run ended on its own.
func gameLoop(r *ui.Renderer, g *game.Game, player *audio.Player, speed int, events <-chan tcell.Event) bool {
	pacer := game.NewPacer(speed)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for g.State() == game.Playing {
		select {
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				r.Layout(g.Width(), g.Height())
				continue
			}
			key := ui.MapEvent(ev)
			if key == ui.KeyQuit {
				return false
			}
			if d, ok := key.Direction(); ok {
				g.SetDirection(d)
			}

		case <-ticker.C:
			if pacer.Tick() {
				switch g.Step() {
				case game.Ate:
					player.Eat()
				case game.WallCollision, game.SelfCollision:
					player.GameOver()
				}
				if g.State() == game.Victory {
					player.Victory()
				}
			}
			r.Draw(g)
		}
	}
	return true
}

// waitForQuit blocks on the end screen for the quit key.
func waitForQuit(r *ui.Renderer, g *game.Game, events <-chan tcell.Event) {
	for ev := range events {
		if _, ok := ev.(*tcell.EventResize); ok {
			r.Layout(g.Width(), g.Height())
			r.DrawEnd(g)
			continue
		}
		if ui.MapEvent(ev) == ui.KeyQuit {
			return
		}
	}
}
