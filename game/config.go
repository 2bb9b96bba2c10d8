package game

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Config holds game configuration constants
type Config struct {
	// ScreenWidth is the playfield width in pixels
	ScreenWidth float64

	// ScreenHeight is the playfield height in pixels
	ScreenHeight float64

	// Stats are the level 1 base stats of every entity kind
	Stats BaseStats

	// Per-stat level scaling constants, applied as 1 + (level-1)*k
	PlayerIntervalScale float64
	ProjectileScale     float64
	EnemyScale          float64

	// KillGoal is the kill count that clears a level
	KillGoal int

	// ExpPerLevelUp is how much experience one attack speed step costs
	ExpPerLevelUp int

	// AttackSpeedPerLevel is the attack speed bonus per experience level
	AttackSpeedPerLevel float64

	// SpawnInterval is the time between enemy spawns while playing
	SpawnInterval time.Duration

	// SpawnOffset is how far outside the screen edge enemies appear
	SpawnOffset float64

	// ProjectileMargin is the distance outside the screen after which projectiles are culled
	ProjectileMargin float64

	// EnemyMargin is the distance outside the screen after which enemies are culled
	EnemyMargin float64

	ExplosionSize     float64
	ExplosionDuration time.Duration

	Timing Timing

	// ContinueButton is the victory screen button region
	ContinueButton HitRegion

	// RestartButton is the defeat screen button region
	RestartButton HitRegion
}

// BaseStats groups the unscaled stats of the player, enemies and projectiles
type BaseStats struct {
	Player     PlayerStats
	Enemy      EnemyStats
	Projectile ProjectileStats
}

// PlayerStats are the player's level 1 stats
type PlayerStats struct {
	Width, Height float64
	FireInterval  time.Duration
}

// EnemyStats are an enemy's level 1 stats. Speed is in pixels per tick.
type EnemyStats struct {
	Width, Height float64
	Speed         float64
	HP            int
}

// ProjectileStats are a projectile's level 1 stats. Speed is in pixels per tick.
type ProjectileStats struct {
	Width, Height float64
	Speed         float64
	Damage        int
}

// HitRegion is a button area placed relative to the screen center.
// A zero HalfWidth means the region spans the whole screen width.
type HitRegion struct {
	OffsetY    float64
	HalfWidth  float64
	HalfHeight float64
}

// Center returns the region center on a screen of the given size
func (h HitRegion) Center(screenW, screenH float64) (float64, float64) {
	return screenW / 2, screenH/2 + h.OffsetY
}

// Contains reports whether the point lies strictly inside the region
func (h HitRegion) Contains(x, y, screenW, screenH float64) bool {
	cx, cy := h.Center(screenW, screenH)
	if math.Abs(y-cy) >= h.HalfHeight {
		return false
	}
	if h.HalfWidth > 0 && math.Abs(x-cx) >= h.HalfWidth {
		return false
	}
	return true
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  375,
		ScreenHeight: 667,
		Stats: BaseStats{
			Player: PlayerStats{
				Width:        44,
				Height:       44,
				FireInterval: 300 * time.Millisecond,
			},
			Enemy: EnemyStats{
				Width:  32,
				Height: 32,
				Speed:  1,
				HP:     10,
			},
			Projectile: ProjectileStats{
				Width:  13,
				Height: 13,
				Speed:  15.21,
				Damage: 5,
			},
		},
		PlayerIntervalScale: 0.1,
		ProjectileScale:     0.1,
		EnemyScale:          0.2,
		KillGoal:            100,
		ExpPerLevelUp:       10,
		AttackSpeedPerLevel: 0.3,
		SpawnInterval:       333 * time.Millisecond,
		SpawnOffset:         32,
		ProjectileMargin:    50,
		EnemyMargin:         100,
		ExplosionSize:       32,
		ExplosionDuration:   300 * time.Millisecond,
		Timing:              DefaultTiming(),
		ContinueButton:      HitRegion{OffsetY: 150, HalfWidth: 50, HalfHeight: 30},
		RestartButton:       HitRegion{OffsetY: 100, HalfHeight: 20},
	}
}

// Validate checks that sizes, intervals and goals are usable
func (c Config) Validate() error {
	var errs []error
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("screen size %vx%v must be positive", c.ScreenWidth, c.ScreenHeight))
	}
	if c.Stats.Player.Width <= 0 || c.Stats.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Stats.Player.FireInterval <= 0 {
		errs = append(errs, errors.New("player fire interval must be positive"))
	}
	if c.SpawnInterval <= 0 {
		errs = append(errs, errors.New("spawn interval must be positive"))
	}
	if c.KillGoal <= 0 {
		errs = append(errs, errors.New("kill goal must be positive"))
	}
	if c.ExpPerLevelUp <= 0 {
		errs = append(errs, errors.New("experience per level up must be positive"))
	}
	return errors.Join(errs...)
}

// Multiplier returns the level scaling factor 1 + (level-1)*k
func Multiplier(level int, k float64) float64 {
	return 1 + float64(level-1)*k
}

// scaleCeil scales an integer stat and rounds up. The small bias keeps values
// like 10*1.4 from rounding up past 14 on float noise.
func scaleCeil(base int, mult float64) int {
	return int(math.Ceil(float64(base)*mult - 1e-9))
}
