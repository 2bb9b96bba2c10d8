package game

import (
	"math"
	"time"
)

// Player is the single player-controlled sprite. X, Y is the top-left corner.
type Player struct {
	X, Y          float64
	Width, Height float64

	// Dragging is set while a touch that started on the player is held
	Dragging bool

	Exp   int
	Kills int

	// AttackSpeed is the fire rate multiplier earned from experience
	AttackSpeed float64

	// BaseInterval is the level-scaled interval before attack speed bonuses
	BaseInterval time.Duration

	// FireInterval is BaseInterval / AttackSpeed
	FireInterval time.Duration
}

// NewPlayer creates a player centered on screen with stats recomputed for level
func NewPlayer(cfg Config, level int) Player {
	stats := cfg.Stats.Player
	base := time.Duration(float64(stats.FireInterval) / Multiplier(level, cfg.PlayerIntervalScale))
	return Player{
		X:            (cfg.ScreenWidth - stats.Width) / 2,
		Y:            (cfg.ScreenHeight - stats.Height) / 2,
		Width:        stats.Width,
		Height:       stats.Height,
		AttackSpeed:  1,
		BaseInterval: base,
		FireInterval: base,
	}
}

// Center returns the center of the player sprite
func (p Player) Center() (float64, float64) {
	return p.X + p.Width/2, p.Y + p.Height/2
}

// Bounds returns the full player rectangle
func (p Player) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// Contains reports whether a screen point lies on the player, edges included
func (p Player) Contains(x, y float64) bool {
	return x >= p.X && x <= p.X+p.Width && y >= p.Y && y <= p.Y+p.Height
}

// Projectile is a straight-line shot. X, Y is the projectile center.
type Projectile struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
	Damage        int

	// DirX, DirY is the unit direction fixed at spawn time
	DirX, DirY float64

	// Angle is the sprite rotation in radians
	Angle float64
}

// NewProjectile creates a level-scaled projectile at x, y heading along dirX, dirY
func NewProjectile(cfg Config, level int, x, y, dirX, dirY float64) Projectile {
	stats := cfg.Stats.Projectile
	mult := Multiplier(level, cfg.ProjectileScale)
	return Projectile{
		X:      x,
		Y:      y,
		Width:  stats.Width,
		Height: stats.Height,
		Speed:  stats.Speed * mult,
		Damage: scaleCeil(stats.Damage, mult),
		DirX:   dirX,
		DirY:   dirY,
		Angle:  math.Atan2(dirY, dirX) + math.Pi/2,
	}
}

// Hitbox returns the arrowhead area used for hit tests
func (p Projectile) Hitbox() Rect {
	return Rect{
		X: p.X - p.Width*0.1,
		Y: p.Y - p.Height*0.2,
		W: p.Width * 0.2,
		H: p.Height * 0.3,
	}
}

// Bounds returns the full sprite rectangle centered on the projectile
func (p Projectile) Bounds() Rect {
	return centered(p.X, p.Y, p.Width, p.Height)
}

// Enemy is a homing monster. X, Y is the enemy center.
type Enemy struct {
	ID            int
	X, Y          float64
	Width, Height float64
	Speed         float64
	HP            int
	MaxHP         int
}

// NewEnemy creates a level-scaled enemy at x, y
func NewEnemy(cfg Config, level, id int, x, y float64) Enemy {
	stats := cfg.Stats.Enemy
	mult := Multiplier(level, cfg.EnemyScale)
	hp := scaleCeil(stats.HP, mult)
	return Enemy{
		ID:     id,
		X:      x,
		Y:      y,
		Width:  stats.Width,
		Height: stats.Height,
		Speed:  stats.Speed * mult,
		HP:     hp,
		MaxHP:  hp,
	}
}

// Bounds returns the full enemy rectangle
func (e Enemy) Bounds() Rect {
	return centered(e.X, e.Y, e.Width, e.Height)
}

// Hitbox returns the shrunk body used for projectile hits
func (e Enemy) Hitbox() Rect {
	return Rect{
		X: e.X - e.Width*0.3,
		Y: e.Y - e.Height*0.3,
		W: e.Width * 0.6,
		H: e.Height * 0.6,
	}
}

// HealthFraction returns HP / MaxHP in [0, 1]
func (e Enemy) HealthFraction() float64 {
	if e.MaxHP <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, float64(e.HP)/float64(e.MaxHP)))
}

// Explosion is a short-lived visual effect with no gameplay meaning
type Explosion struct {
	X, Y          float64
	Width, Height float64
	Born          time.Time
	Duration      time.Duration
}

// NewExplosion creates an explosion at x, y that starts at now
func NewExplosion(cfg Config, x, y float64, now time.Time) Explosion {
	return Explosion{
		X:        x,
		Y:        y,
		Width:    cfg.ExplosionSize,
		Height:   cfg.ExplosionSize,
		Born:     now,
		Duration: cfg.ExplosionDuration,
	}
}

// Progress returns how far the explosion is through its lifetime, in [0, 1]
func (e Explosion) Progress(now time.Time) float64 {
	if e.Duration <= 0 {
		return 1
	}
	p := float64(now.Sub(e.Born)) / float64(e.Duration)
	return math.Max(0, math.Min(1, p))
}

// Expired reports whether the explosion has outlived its duration
func (e Explosion) Expired(now time.Time) bool {
	return now.Sub(e.Born) >= e.Duration
}

func centered(x, y, w, h float64) Rect {
	return Rect{X: x - w/2, Y: y - h/2, W: w, H: h}
}
