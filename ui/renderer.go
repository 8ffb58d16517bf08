// Package ui draws the game on a tcell screen and maps key events to
// game intents. It only reads game state; all mutation stays in the loop.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"snake-tui/game"
)

const (
	bodyGlyph = '█'
	foodGlyph = '◆'
)

var (
	styleHead   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleBody   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleFood   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Renderer owns the tcell screen and draws the pit centered in it. The
// border sits just outside the playable area, so pit cell (0,0) maps to
// screen cell (originX+1, originY+1).
type Renderer struct {
	screen  tcell.Screen
	originX int
	originY int
}

// NewRenderer initializes the terminal screen.
func NewRenderer() (*Renderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()
	return &Renderer{screen: screen}, nil
}

// Fini restores the terminal.
func (r *Renderer) Fini() { r.screen.Fini() }

// PollEvent blocks for the next terminal event, nil after Fini.
func (r *Renderer) PollEvent() tcell.Event { return r.screen.PollEvent() }

// FitsPit reports whether the terminal can hold a width x height pit plus
// its border and the status line.
func (r *Renderer) FitsPit(width, height int) bool {
	w, h := r.screen.Size()
	return w >= width+4 && h >= height+4
}

// Layout recenters the pit. Called at startup and on every resize.
func (r *Renderer) Layout(width, height int) {
	w, h := r.screen.Size()
	r.originX = (w - (width + 2)) / 2
	r.originY = (h - (height + 2)) / 2
	r.screen.Sync()
}

// Draw renders one frame: border, snake, food and the status line.
func (r *Renderer) Draw(g *game.Game) {
	r.screen.Clear()
	r.drawFrame(g)
	r.screen.Show()
}

func (r *Renderer) drawFrame(g *game.Game) {
	r.drawBorder(g.Width(), g.Height())

	body := g.Body()
	for _, p := range body[1:] {
		r.setCell(p, bodyGlyph, styleBody)
	}
	r.setCell(g.Head(), headGlyph(g.Dir()), styleHead)
	r.setCell(g.Food(), foodGlyph, styleFood)

	r.drawText(r.originX, r.originY-1, styleText,
		fmt.Sprintf("Length: %d/%d", g.Length(), g.MaxLength()))
}

// headGlyph points the head along the travel direction.
func headGlyph(d game.Direction) rune {
	switch d {
	case game.Up:
		return '^'
	case game.Down:
		return 'v'
	case game.Left:
		return '<'
	default:
		return '>'
	}
}

func (r *Renderer) drawBorder(width, height int) {
	right := r.originX + width + 1
	bottom := r.originY + height + 1
	for x := r.originX + 1; x < right; x++ {
		r.screen.SetContent(x, r.originY, tcell.RuneHLine, nil, styleBorder)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, nil, styleBorder)
	}
	for y := r.originY + 1; y < bottom; y++ {
		r.screen.SetContent(r.originX, y, tcell.RuneVLine, nil, styleBorder)
		r.screen.SetContent(right, y, tcell.RuneVLine, nil, styleBorder)
	}
	r.screen.SetContent(r.originX, r.originY, tcell.RuneULCorner, nil, styleBorder)
	r.screen.SetContent(right, r.originY, tcell.RuneURCorner, nil, styleBorder)
	r.screen.SetContent(r.originX, bottom, tcell.RuneLLCorner, nil, styleBorder)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, styleBorder)
}

func (r *Renderer) setCell(p game.Point, ch rune, style tcell.Style) {
	r.screen.SetContent(r.originX+1+p.X, r.originY+1+p.Y, ch, nil, style)
}

func (r *Renderer) drawText(x, y int, style tcell.Style, text string) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col++
	}
}

func (r *Renderer) drawTextCentered(y int, style tcell.Style, text string) {
	w, _ := r.screen.Size()
	r.drawText((w-len(text))/2, y, style, text)
}

// DrawStart shows the title card with the controls and the win target.
func (r *Renderer) DrawStart(g *game.Game) {
	r.screen.Clear()
	_, h := r.screen.Size()
	center := h / 2
	r.drawTextCentered(center-3, styleText, "================")
	r.drawTextCentered(center-2, styleText, "   SNAKE GAME   ")
	r.drawTextCentered(center-1, styleText, "================")
	r.drawTextCentered(center+1, styleText, "Use Arrow Keys to Move")
	r.drawTextCentered(center+2, styleText, "Eat food to grow")
	r.drawTextCentered(center+3, styleText,
		fmt.Sprintf("To Win: Reach a length of %d", g.MaxLength()))
	r.drawTextCentered(center+5, styleText, "Press SPACE to start")
	r.drawTextCentered(center+6, styleText, "Press 'q' to quit")
	r.screen.Show()
}

// DrawEnd shows the final board with the game over or victory banner.
func (r *Renderer) DrawEnd(g *game.Game) {
	r.screen.Clear()
	r.drawFrame(g)

	_, h := r.screen.Size()
	center := h / 2
	switch g.State() {
	case game.Victory:
		r.drawTextCentered(center-1, styleText, "YOU WIN!")
		r.drawTextCentered(center, styleText,
			fmt.Sprintf("Length: %d/%d", g.Length(), g.MaxLength()))
	default:
		r.drawTextCentered(center-1, styleText, "GAME OVER!")
		r.drawTextCentered(center, styleText,
			fmt.Sprintf("Final Length: %d", g.Length()))
	}
	r.drawTextCentered(center+1, styleText, "Press 'q' to quit")
	r.screen.Show()
}
