package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"grasslandslayer/game"
)

var (
	grassStyle     = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	playerStyle    = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	enemyStyle     = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	hurtStyle      = tcell.StyleDefault.Foreground(tcell.ColorRed)
	arrowStyle     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	explosionStyle = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	statusStyle    = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen)
	headingStyle   = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	textStyle      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	buttonStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkGreen).Bold(true)
)

// Glyphs used on the playfield
const (
	GlyphPlayer     = '@'
	GlyphEnemy      = 'M'
	GlyphProjectile = '*'
	GlyphExplosion  = '#'
	GlyphGrass      = '.'
)

// Renderer draws snapshots as characters
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a renderer drawing onto screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Viewport returns the mapping for the current screen size
func (r *Renderer) Viewport(cfg game.Config) Viewport {
	cols, rows := r.screen.Size()
	return NewViewport(cols, rows, cfg.ScreenWidth, cfg.ScreenHeight)
}

// Draw renders a snapshot and shows it
func (r *Renderer) Draw(s game.Snapshot) {
	v := r.Viewport(s.Config)
	r.screen.Clear()

	for row := 0; row < v.PlayRows(); row++ {
		for col := 0; col < v.Cols; col++ {
			if (col+row)%4 == 0 {
				r.screen.SetContent(col, row, GlyphGrass, nil, grassStyle)
			}
		}
	}

	for _, ex := range s.Explosions {
		r.put(v, ex.X, ex.Y, GlyphExplosion, explosionStyle)
	}
	for _, e := range s.Enemies {
		style := enemyStyle
		if e.HP < e.MaxHP {
			style = hurtStyle
		}
		r.put(v, e.X, e.Y, GlyphEnemy, style)
	}
	for _, p := range s.Projectiles {
		r.put(v, p.X, p.Y, GlyphProjectile, arrowStyle)
	}
	cx, cy := s.Player.Center()
	r.put(v, cx, cy, GlyphPlayer, playerStyle)

	r.drawStatus(v, s)
	r.drawOverlay(v, s)

	r.screen.Show()
}

func (r *Renderer) put(v Viewport, x, y float64, glyph rune, style tcell.Style) {
	col, row, ok := v.ToCell(x, y)
	if !ok {
		return
	}
	r.screen.SetContent(col, row, glyph, nil, style)
}

// StatusLine returns the text of the bottom row
func StatusLine(s game.Snapshot) string {
	return fmt.Sprintf(" %s | Level %d | Kills %d/%d | Exp %d | Attack %.1fx | q quits",
		s.State.Phase, s.Level, s.Player.Kills, s.Config.KillGoal, s.Player.Exp, s.Player.AttackSpeed)
}

func (r *Renderer) drawStatus(v Viewport, s game.Snapshot) {
	if v.Rows < 2 {
		return
	}
	row := v.Rows - 1
	for col := 0; col < v.Cols; col++ {
		r.screen.SetContent(col, row, ' ', nil, statusStyle)
	}
	r.text(0, row, StatusLine(s), statusStyle)
}

func (r *Renderer) drawOverlay(v Viewport, s game.Snapshot) {
	lines, button := OverlayText(s)
	if len(lines) == 0 {
		return
	}

	row := v.PlayRows()/2 - len(lines)
	for i, line := range lines {
		style := textStyle
		if i == 0 {
			style = headingStyle
		}
		r.centered(v, row, line, style)
		row += 2
	}

	if button == nil {
		return
	}
	if col, row, _, ok := button.Cells(v); ok {
		r.text(col, row, button.Text(), buttonStyle)
	}
}

func (r *Renderer) centered(v Viewport, row int, s string, style tcell.Style) {
	col := (v.Cols - len([]rune(s))) / 2
	if col < 0 {
		col = 0
	}
	r.text(col, row, s, style)
}

func (r *Renderer) text(col, row int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(col, row, ch, nil, style)
		col++
	}
}

// Button is a labelled tap target on an overlay
type Button struct {
	Label  string
	Region game.HitRegion
}

// Text is the button as drawn
func (b Button) Text() string {
	return "[ " + b.Label + " ]"
}

// Cells returns where the button is drawn: the first column, the row and
// the width in cells. The row is the one holding the region center.
func (b Button) Cells(v Viewport) (col, row, width int, ok bool) {
	_, cy := b.Region.Center(v.WorldW, v.WorldH)
	if _, row, ok = v.ToCell(v.WorldW/2, cy); !ok {
		return 0, 0, 0, false
	}
	width = len([]rune(b.Text()))
	col = (v.Cols - width) / 2
	if col < 0 {
		col = 0
	}
	return col, row, width, true
}

// Hit reports whether a cell lies on the drawn button
func (b Button) Hit(v Viewport, col, row int) bool {
	bcol, brow, width, ok := b.Cells(v)
	return ok && row == brow && col >= bcol && col < bcol+width
}

// OverlayText returns the overlay lines for the phase, heading first, and
// the button if the phase has one
func OverlayText(s game.Snapshot) ([]string, *Button) {
	switch s.State.Phase {
	case game.PhaseTitle:
		return []string{"GRASSLAND SLAYER", "Drag @ to dodge the monsters", "Click anywhere to start"}, nil
	case game.PhaseLevelMessage:
		return []string{fmt.Sprintf("LEVEL %d", s.Level)}, nil
	case game.PhaseVictory:
		return []string{fmt.Sprintf("LEVEL %d CLEARED", s.Level), fmt.Sprintf("Kills: %d", s.Player.Kills)},
			&Button{Label: "Continue", Region: s.Config.ContinueButton}
	case game.PhaseVictoryWaiting:
		return []string{fmt.Sprintf("LEVEL %d CLEARED", s.Level), fmt.Sprintf("Next level in %d", s.Countdown())}, nil
	case game.PhaseDefeat:
		return []string{"DEFEATED", fmt.Sprintf("Kills: %d", s.Player.Kills), fmt.Sprintf("Restart in %d", s.Countdown())}, nil
	case game.PhaseDefeatWaiting:
		return []string{"DEFEATED", fmt.Sprintf("Kills: %d", s.Player.Kills)},
			&Button{Label: "Restart", Region: s.Config.RestartButton}
	}
	return nil, nil
}
