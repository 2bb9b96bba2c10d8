package terminal

import (
	"github.com/gdamore/tcell/v2"

	"grasslandslayer/game"
)

// MouseTranslator turns primary button mouse events into touch events in
// world coordinates
type MouseTranslator struct {
	pressed bool
}

// Translate returns the touch events implied by a mouse event. A cell on the
// drawn button maps to the button center, since a row can be taller than
// the button's hit band.
func (m *MouseTranslator) Translate(ev *tcell.EventMouse, v Viewport, button *Button) []game.InputEvent {
	col, row := ev.Position()
	x, y := v.ToWorld(col, row)
	if button != nil && button.Hit(v, col, row) {
		x, y = button.Region.Center(v.WorldW, v.WorldH)
	}
	down := ev.Buttons()&tcell.Button1 != 0

	switch {
	case down && !m.pressed:
		m.pressed = true
		return []game.InputEvent{{Kind: game.TouchStart, X: x, Y: y}}
	case down:
		return []game.InputEvent{{Kind: game.TouchMove, X: x, Y: y}}
	case m.pressed:
		m.pressed = false
		return []game.InputEvent{{Kind: game.TouchEnd, X: x, Y: y}}
	}
	return nil
}

// isQuit reports whether a key event should end the session
func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
