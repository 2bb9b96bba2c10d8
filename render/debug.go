package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"grasslandslayer/game"
)

// DebugState holds debug toggles that persist across restarts
type DebugState struct {
	ShowHitboxes bool // Full bounds and hit areas of every entity
	ShowFPS      bool
}

// Toggle flips every debug overlay together
func (d *DebugState) Toggle() {
	d.ShowHitboxes = !d.ShowHitboxes
	d.ShowFPS = d.ShowHitboxes
}

// drawHitboxes outlines full bounds in one color and hit areas in another
func drawHitboxes(screen *ebiten.Image, s game.Snapshot) {
	strokeRect(screen, s.Player.Bounds(), colornames.Cyan)
	for _, e := range s.Enemies {
		strokeRect(screen, e.Bounds(), colornames.Yellow)
		strokeRect(screen, e.Hitbox(), colornames.Red)
	}
	for _, p := range s.Projectiles {
		strokeRect(screen, p.Bounds(), colornames.Yellow)
		strokeRect(screen, p.Hitbox(), colornames.Red)
	}
}

func strokeRect(screen *ebiten.Image, r game.Rect, clr color.Color) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, clr, false)
}
