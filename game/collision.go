package game

import "time"

// Rect is an axis-aligned rectangle with its origin at the top-left corner
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether two rectangles overlap. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// CollisionSystem resolves projectile hits and enemy contact against the world
type CollisionSystem struct {
	world *World
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(world *World) *CollisionSystem {
	return &CollisionSystem{
		world: world,
	}
}

// ResolveProjectileHits applies every projectile to the first live enemy whose
// hitbox it overlaps. A projectile that hits anything is consumed. Resolution
// stops as soon as a kill ends the round.
func (c *CollisionSystem) ResolveProjectileHits(now time.Time) {
	w := c.world
	survivors := w.projectiles[:0]
	for i, p := range w.projectiles {
		if w.state.Phase != PhasePlaying {
			survivors = append(survivors, w.projectiles[i:]...)
			break
		}

		target := c.firstHit(p)
		if target < 0 {
			survivors = append(survivors, p)
			continue
		}

		w.enemies[target].HP -= p.Damage
		if w.enemies[target].HP <= 0 {
			w.killEnemy(target, now)
		}
	}
	w.projectiles = survivors
}

// firstHit returns the index of the first enemy the projectile hits, or -1
func (c *CollisionSystem) firstHit(p Projectile) int {
	hitbox := p.Hitbox()
	for i := range c.world.enemies {
		if hitbox.Overlaps(c.world.enemies[i].Hitbox()) {
			return i
		}
	}
	return -1
}

// TouchesPlayer reports whether an enemy's full box overlaps the player's
func (c *CollisionSystem) TouchesPlayer(e Enemy) bool {
	return e.Bounds().Overlaps(c.world.player.Bounds())
}
