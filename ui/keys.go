package ui

import (
	"github.com/gdamore/tcell/v2"

	"snake-tui/game"
)

// Key is the input intent the game loop acts on.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyStart
	KeyQuit
)

// MapEvent translates a tcell event into a game intent. Non-key events
// and unrecognized keys map to KeyNone.
func MapEvent(ev tcell.Event) Key {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return KeyNone
	}
	switch key.Key() {
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return KeyQuit
	case tcell.KeyRune:
		switch key.Rune() {
		case ' ':
			return KeyStart
		case 'q', 'Q':
			return KeyQuit
		}
	}
	return KeyNone
}

// Direction returns the movement direction for a steering key.
func (k Key) Direction() (game.Direction, bool) {
	switch k {
	case KeyUp:
		return game.Up, true
	case KeyDown:
		return game.Down, true
	case KeyLeft:
		return game.Left, true
	case KeyRight:
		return game.Right, true
	default:
		return 0, false
	}
}
