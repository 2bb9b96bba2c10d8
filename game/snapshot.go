package game

import (
	"math"
	"time"
)

// Snapshot is a read-only copy of everything a renderer needs for one frame
type Snapshot struct {
	Config Config
	Now    time.Time
	State  State
	Level  int

	Player      Player
	Projectiles []Projectile
	Enemies     []Enemy
	Explosions  []Explosion
}

// Snapshot copies the current world state
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Config:      w.config,
		Now:         w.clock.Now(),
		State:       w.state,
		Level:       w.level,
		Player:      w.player,
		Projectiles: append([]Projectile(nil), w.projectiles...),
		Enemies:     append([]Enemy(nil), w.enemies...),
		Explosions:  append([]Explosion(nil), w.explosions...),
	}
}

// Countdown returns the whole seconds left on the defeat or victory timer,
// rounded up. It is zero in every other phase and once the timer has run out.
func (s Snapshot) Countdown() int {
	var total time.Duration
	switch s.State.Phase {
	case PhaseDefeat:
		total = s.Config.Timing.DefeatDelay
	case PhaseVictoryWaiting:
		total = s.Config.Timing.VictoryDelay
	default:
		return 0
	}
	left := total - s.State.Elapsed(s.Now)
	if left <= 0 {
		return 0
	}
	return int(math.Ceil(left.Seconds()))
}

// LevelMessageProgress returns how far the level banner is through its display time, in [0, 1]
func (s Snapshot) LevelMessageProgress() float64 {
	if s.State.Phase != PhaseLevelMessage || s.Config.Timing.LevelMessage <= 0 {
		return 0
	}
	p := float64(s.State.Elapsed(s.Now)) / float64(s.Config.Timing.LevelMessage)
	return math.Max(0, math.Min(1, p))
}
