package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"snake-tui/game"
)

func TestMapEvent(t *testing.T) {
	cases := []struct {
		name string
		ev   tcell.Event
		want Key
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), KeyUp},
		{"arrow down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), KeyDown},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), KeyLeft},
		{"arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), KeyRight},
		{"space starts", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), KeyStart},
		{"lowercase quit", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), KeyQuit},
		{"uppercase quit", tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone), KeyQuit},
		{"escape quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), KeyQuit},
		{"ctrl-c quits", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), KeyQuit},
		{"other rune ignored", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), KeyNone},
		{"resize ignored", tcell.NewEventResize(80, 24), KeyNone},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := MapEvent(c.ev); got != c.want {
				t.Errorf("MapEvent = %v, want %v", got, c.want)
			}
		})
	}
}

func TestKeyDirection(t *testing.T) {
	cases := []struct {
		key  Key
		want game.Direction
		ok   bool
	}{
		{KeyUp, game.Up, true},
		{KeyDown, game.Down, true},
		{KeyLeft, game.Left, true},
		{KeyRight, game.Right, true},
		{KeyStart, 0, false},
		{KeyQuit, 0, false},
		{KeyNone, 0, false},
	}
	for _, c := range cases {
		d, ok := c.key.Direction()
		if ok != c.ok || (ok && d != c.want) {
			t.Errorf("key %d: Direction() = %v,%v, want %v,%v", c.key, d, ok, c.want, c.ok)
		}
	}
}
