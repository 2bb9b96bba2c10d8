package game

import (
	"io"
	"log"
	"math/rand"
	"time"
)

// World owns all gameplay state and advances it one frame per Update.
// It is not safe for concurrent use; hosts feed input through Input().
type World struct {
	config Config
	clock  Clock
	logger *log.Logger

	state State
	level int

	player      Player
	projectiles []Projectile
	enemies     []Enemy
	explosions  []Explosion

	fire       FireControl
	spawner    *Spawner
	collisions *CollisionSystem

	input   *InputQueue
	pending []InputEvent
}

// NewWorld creates a world on the title screen. A nil logger discards output.
func NewWorld(config Config, clock Clock, rng *rand.Rand, logger *log.Logger) *World {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	w := &World{
		config:      config,
		clock:       clock,
		logger:      logger,
		state:       State{Phase: PhaseTitle, Since: clock.Now()},
		level:       1,
		projectiles: make([]Projectile, 0, 64),
		enemies:     make([]Enemy, 0, 64),
		explosions:  make([]Explosion, 0, 16),
		spawner:     NewSpawner(rng),
		input:       NewInputQueue(),
		pending:     make([]InputEvent, 0, 16),
	}
	w.collisions = NewCollisionSystem(w)
	w.player = NewPlayer(config, w.level)
	return w
}

// Input returns the queue hosts push touch events into
func (w *World) Input() *InputQueue {
	return w.input
}

// Config returns the world configuration
func (w *World) Config() Config {
	return w.config
}

// Phase returns the active phase
func (w *World) Phase() Phase {
	return w.state.Phase
}

// Level returns the current level, starting at 1
func (w *World) Level() int {
	return w.level
}

// Update advances the game by one frame
func (w *World) Update() {
	now := w.clock.Now()

	w.handleInput(now)
	w.trigger(TriggerTick, now)

	if w.state.Phase == PhasePlaying {
		w.fireAtNearest(now)
		w.updateProjectiles(now)
	}
	if w.state.Phase == PhasePlaying {
		w.spawnEnemies(now)
		w.updateEnemies(now)
	}

	w.expireExplosions(now)
}

// handleInput applies every queued touch event in arrival order
func (w *World) handleInput(now time.Time) {
	w.pending = w.input.Drain(w.pending[:0])
	for _, ev := range w.pending {
		switch ev.Kind {
		case TouchStart:
			w.touchStart(ev.X, ev.Y, now)
		case TouchMove:
			if w.player.Dragging && w.state.Phase == PhasePlaying {
				w.player.DragTo(w.config, ev.X, ev.Y)
			}
		case TouchEnd:
			w.player.Dragging = false
		}
	}
}

func (w *World) touchStart(x, y float64, now time.Time) {
	switch ClassifyTouch(w.config, w.state.Phase, w.player, x, y) {
	case ActionStart:
		w.trigger(TriggerActivate, now)
	case ActionContinue:
		w.trigger(TriggerContinue, now)
	case ActionRestart:
		w.trigger(TriggerRestart, now)
	case ActionDrag:
		w.player.Dragging = true
	}
}

// trigger runs the phase machine and applies the resulting effect
func (w *World) trigger(t Trigger, now time.Time) {
	next, effect := Transition(w.state, t, now, w.config.Timing)
	if next.Phase == w.state.Phase && effect == EffectNone {
		return
	}

	switch effect {
	case EffectStartGame:
		w.resetPlayer()
	case EffectRestart:
		w.level = 1
		w.clearEntities()
		w.resetPlayer()
	case EffectNextLevel:
		w.level++
		w.clearEntities()
		w.resetPlayer()
	}

	w.logger.Printf("phase %s -> %s (level %d, kills %d)", w.state.Phase, next.Phase, w.level, w.player.Kills)
	w.state = next
}

func (w *World) resetPlayer() {
	w.player = NewPlayer(w.config, w.level)
	w.fire.Reset()
}

func (w *World) clearEntities() {
	w.projectiles = w.projectiles[:0]
	w.enemies = w.enemies[:0]
	w.explosions = w.explosions[:0]
	w.spawner.Reset()
}

// fireAtNearest launches one projectile at the nearest enemy when the weapon is ready
func (w *World) fireAtNearest(now time.Time) {
	if !w.fire.Ready(now, w.player.FireInterval) {
		return
	}
	projectile, ok := Aim(w.config, w.level, w.player, w.enemies)
	if !ok {
		return
	}
	w.projectiles = append(w.projectiles, projectile)
	w.fire.Fired(now)
}

// updateProjectiles moves projectiles in a straight line, drops the ones that
// left the playfield and resolves hits
func (w *World) updateProjectiles(now time.Time) {
	margin := w.config.ProjectileMargin
	alive := w.projectiles[:0]
	for _, p := range w.projectiles {
		p.X += p.DirX * p.Speed
		p.Y += p.DirY * p.Speed
		if w.outside(p.X, p.Y, margin) {
			continue
		}
		alive = append(alive, p)
	}
	w.projectiles = alive

	w.collisions.ResolveProjectileHits(now)
}

// killEnemy removes the enemy at index i, leaves an explosion and credits the kill
func (w *World) killEnemy(i int, now time.Time) {
	enemy := w.enemies[i]
	w.enemies = append(w.enemies[:i], w.enemies[i+1:]...)
	w.explosions = append(w.explosions, NewExplosion(w.config, enemy.X, enemy.Y, now))

	speed := w.player.AttackSpeed
	if w.player.AddExperience(w.config) {
		w.trigger(TriggerKillGoal, now)
		return
	}
	if w.player.AttackSpeed != speed {
		w.logger.Printf("attack speed %.1fx, fire interval %v", w.player.AttackSpeed, w.player.FireInterval)
	}
}

func (w *World) spawnEnemies(now time.Time) {
	if !w.spawner.Due(now, w.config.SpawnInterval) {
		return
	}
	w.enemies = append(w.enemies, w.spawner.Spawn(w.config, w.level, now))
}

// updateEnemies homes every enemy on the player center, ends the round on the
// first contact and drops enemies that drifted too far away
func (w *World) updateEnemies(now time.Time) {
	cx, cy := w.player.Center()
	for i := range w.enemies {
		e := &w.enemies[i]
		if dx, dy, ok := Direction(e.X, e.Y, cx, cy); ok {
			e.X += dx * e.Speed
			e.Y += dy * e.Speed
		}
		if w.collisions.TouchesPlayer(*e) {
			w.trigger(TriggerCollision, now)
			return
		}
	}

	margin := w.config.EnemyMargin
	kept := w.enemies[:0]
	for _, e := range w.enemies {
		if w.strictlyInside(e.X, e.Y, margin) {
			kept = append(kept, e)
		}
	}
	w.enemies = kept
}

func (w *World) expireExplosions(now time.Time) {
	kept := w.explosions[:0]
	for _, e := range w.explosions {
		if !e.Expired(now) {
			kept = append(kept, e)
		}
	}
	w.explosions = kept
}

// outside reports whether a point is more than margin beyond any screen edge
func (w *World) outside(x, y, margin float64) bool {
	return x < -margin || x > w.config.ScreenWidth+margin ||
		y < -margin || y > w.config.ScreenHeight+margin
}

// strictlyInside reports whether a point is within margin of the screen, edges excluded
func (w *World) strictlyInside(x, y, margin float64) bool {
	return x > -margin && x < w.config.ScreenWidth+margin &&
		y > -margin && y < w.config.ScreenHeight+margin
}
