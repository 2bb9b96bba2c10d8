package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/colornames"

	"grasslandslayer/game"
)

var (
	grassColor    = colornames.Darkolivegreen
	dimColor      = color.RGBA{0, 0, 0, 140}
	barBackground = color.RGBA{100, 0, 0, 255}
	barFill       = color.RGBA{0, 220, 0, 255}
	buttonColor   = color.RGBA{40, 110, 40, 230}
)

const (
	healthBarHeight = 4.0
	healthBarGap    = 3.0
)

// Renderer draws world snapshots with the bundled sprites. Shapes stand in
// for sprites that have not finished loading.
type Renderer struct {
	assets *Bundle
	fonts  *Fonts
	debug  *DebugState

	lastPhase game.Phase
	banner    *gween.Tween
	pulse     *gween.Tween
	scale     float32
	pulseUp   bool
}

// NewRenderer creates a new renderer
func NewRenderer(assets *Bundle, fonts *Fonts, debug *DebugState) *Renderer {
	r := &Renderer{
		assets:    assets,
		fonts:     fonts,
		debug:     debug,
		lastPhase: game.PhaseTitle,
		scale:     1,
	}
	r.banner = gween.New(0.4, 1, 0.5, ease.OutBack)
	r.pulse = gween.New(1, 1.08, 0.6, ease.InOutSine)
	return r
}

// Update advances the overlay animations by dt seconds
func (r *Renderer) Update(dt float64, s game.Snapshot) {
	if s.State.Phase != r.lastPhase {
		if s.State.Phase == game.PhaseLevelMessage {
			r.banner.Reset()
		}
		r.lastPhase = s.State.Phase
	}

	r.banner.Update(float32(dt))

	scale, done := r.pulse.Update(float32(dt))
	r.scale = scale
	if done {
		r.pulseUp = !r.pulseUp
		if r.pulseUp {
			r.pulse = gween.New(1.08, 1, 0.6, ease.InOutSine)
		} else {
			r.pulse = gween.New(1, 1.08, 0.6, ease.InOutSine)
		}
	}
}

// Draw renders one frame
func (r *Renderer) Draw(screen *ebiten.Image, s game.Snapshot) {
	r.drawBackground(screen, s)

	for _, ex := range s.Explosions {
		r.drawExplosion(screen, s, ex)
	}
	for _, e := range s.Enemies {
		r.drawEnemy(screen, e)
	}
	for _, p := range s.Projectiles {
		r.drawProjectile(screen, p)
	}
	r.drawPlayer(screen, s.Player)

	if s.State.Phase == game.PhasePlaying {
		r.drawHUD(screen, s)
	}
	if o, ok := OverlayFor(s); ok {
		r.drawOverlay(screen, s, o)
	}

	if r.debug != nil && r.debug.ShowHitboxes {
		drawHitboxes(screen, s)
	}
	if r.debug != nil && r.debug.ShowFPS {
		drawText(screen, fmt.Sprintf("FPS %.0f  TPS %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()),
			r.fonts.Small, s.Config.ScreenWidth-8, 8, text.AlignEnd, colornames.White)
	}
}

func (r *Renderer) drawBackground(screen *ebiten.Image, s game.Snapshot) {
	sheet := r.assets.Sprite(SpriteBackground)
	if sheet == nil {
		screen.Fill(grassColor)
		return
	}
	drawFrame(screen, sheet.Frame(0), s.Config.ScreenWidth/2, s.Config.ScreenHeight/2,
		s.Config.ScreenWidth, s.Config.ScreenHeight, 0, 1)
}

func (r *Renderer) drawPlayer(screen *ebiten.Image, p game.Player) {
	cx, cy := p.Center()
	if sheet := r.assets.Sprite(SpritePlayer); sheet != nil {
		drawFrame(screen, sheet.Frame(0), cx, cy, p.Width, p.Height, 0, 1)
		return
	}
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(p.Width/2), colornames.Royalblue, true)
}

func (r *Renderer) drawEnemy(screen *ebiten.Image, e game.Enemy) {
	if sheet := r.assets.Sprite(SpriteEnemy); sheet != nil {
		drawFrame(screen, sheet.Frame(0), e.X, e.Y, e.Width, e.Height, 0, 1)
	} else {
		vector.DrawFilledCircle(screen, float32(e.X), float32(e.Y), float32(e.Width/2), colornames.Purple, true)
	}

	barX := e.X - e.Width/2
	barY := e.Y - e.Height/2 - healthBarHeight - healthBarGap
	vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(e.Width), healthBarHeight, barBackground, false)
	vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(e.Width*e.HealthFraction()), healthBarHeight, barFill, false)
}

func (r *Renderer) drawProjectile(screen *ebiten.Image, p game.Projectile) {
	if sheet := r.assets.Sprite(SpriteProjectile); sheet != nil {
		drawFrame(screen, sheet.Frame(0), p.X, p.Y, p.Width, p.Height, p.Angle, 1)
		return
	}
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Width/4), colornames.Lightyellow, true)
}

func (r *Renderer) drawExplosion(screen *ebiten.Image, s game.Snapshot, ex game.Explosion) {
	progress := ex.Progress(s.Now)
	alpha, scale := explosionStyle(progress)
	sheet := r.assets.Sprite(SpriteExplosion)
	if sheet == nil {
		return
	}
	frame := sheet.Frame(progressFrame(progress, sheet.Len()))
	drawFrame(screen, frame, ex.X, ex.Y, ex.Width*scale, ex.Height*scale, 0, alpha)
}

// explosionStyle eases the explosion out: it fades from opaque and grows a little
func explosionStyle(progress float64) (alpha, scale float64) {
	p := float32(progress)
	alpha = float64(ease.InQuad(p, 1, -1, 1))
	scale = float64(ease.OutQuad(p, 1, 0.5, 1))
	return alpha, scale
}

func (r *Renderer) drawHUD(screen *ebiten.Image, s game.Snapshot) {
	y := 8.0
	for _, line := range hudLines(s) {
		drawText(screen, line, r.fonts.Small, 9, y+1, text.AlignStart, colornames.Black)
		drawText(screen, line, r.fonts.Small, 8, y, text.AlignStart, colornames.White)
		y += 18
	}
}

func (r *Renderer) drawOverlay(screen *ebiten.Image, s game.Snapshot, o Overlay) {
	w, h := s.Config.ScreenWidth, s.Config.ScreenHeight
	if o.Dim {
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), dimColor, false)
	}

	if s.State.Phase == game.PhaseLevelMessage {
		scale, _ := r.banner.Update(0)
		drawTextScaled(screen, o.Heading, r.fonts.Large, w/2, h/2, float64(scale), colornames.Gold)
		return
	}

	drawText(screen, o.Heading, r.fonts.Large, w/2, h/2-110, text.AlignCenter, colornames.Gold)
	y := h/2 - 50
	for _, line := range o.Lines {
		drawText(screen, line, r.fonts.Medium, w/2, y, text.AlignCenter, colornames.White)
		y += 30
	}

	if o.Region != nil {
		r.drawButton(screen, s, o)
	}
}

func (r *Renderer) drawButton(screen *ebiten.Image, s game.Snapshot, o Overlay) {
	w, h := s.Config.ScreenWidth, s.Config.ScreenHeight
	cx, cy := o.Region.Center(w, h)
	halfW := o.Region.HalfWidth
	if halfW == 0 {
		halfW = w/2 - 20
	}
	scale := float64(r.scale)
	bw, bh := halfW*2*scale, o.Region.HalfHeight*2*scale
	vector.DrawFilledRect(screen, float32(cx-bw/2), float32(cy-bh/2), float32(bw), float32(bh), buttonColor, true)
	vector.StrokeRect(screen, float32(cx-bw/2), float32(cy-bh/2), float32(bw), float32(bh), 2, colornames.White, true)
	drawTextScaled(screen, o.Button, r.fonts.Medium, cx, cy, scale, colornames.White)
}

// drawFrame draws img centered on (cx, cy), stretched to w x h and rotated by angle
func drawFrame(screen, img *ebiten.Image, cx, cy, w, h, angle, alpha float64) {
	b := img.Bounds()
	fw, fh := float64(b.Dx()), float64(b.Dy())
	if fw == 0 || fh == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-fw/2, -fh/2)
	op.GeoM.Scale(w/fw, h/fh)
	if angle != 0 {
		op.GeoM.Rotate(angle)
	}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleAlpha(float32(math.Max(0, math.Min(1, alpha))))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}
