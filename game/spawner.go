package game

import (
	"math/rand"
	"time"
)

// Edge identifies a side of the screen
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// Spawner releases enemies from random screen edges on a fixed interval
type Spawner struct {
	rng    *rand.Rand
	last   time.Time
	fired  bool
	nextID int
}

// NewSpawner creates a spawner drawing positions from rng
func NewSpawner(rng *rand.Rand) *Spawner {
	return &Spawner{rng: rng, nextID: 1}
}

// Due reports whether an enemy should spawn at now
func (s *Spawner) Due(now time.Time, interval time.Duration) bool {
	if !s.fired {
		return true
	}
	return now.Sub(s.last) >= interval
}

// Spawn creates a level-scaled enemy on a random edge and records the spawn time
func (s *Spawner) Spawn(cfg Config, level int, now time.Time) Enemy {
	x, y := s.edgePoint(cfg)
	enemy := NewEnemy(cfg, level, s.nextID, x, y)
	s.nextID++
	s.last = now
	s.fired = true
	return enemy
}

// Reset forgets the last spawn time so the next call to Due succeeds
func (s *Spawner) Reset() {
	s.fired = false
}

func (s *Spawner) edgePoint(cfg Config) (float64, float64) {
	w, h, off := cfg.ScreenWidth, cfg.ScreenHeight, cfg.SpawnOffset
	switch Edge(s.rng.Intn(4)) {
	case EdgeTop:
		return s.rng.Float64() * w, -off
	case EdgeRight:
		return w + off, s.rng.Float64() * h
	case EdgeBottom:
		return s.rng.Float64() * w, h + off
	default:
		return -off, s.rng.Float64() * h
	}
}
