package game

import "time"

// FireControl gates the player's auto-fire to one shot per interval
type FireControl struct {
	last  time.Time
	fired bool
}

// Ready reports whether enough time has passed since the last shot.
// A weapon that has never fired is always ready.
func (f *FireControl) Ready(now time.Time, interval time.Duration) bool {
	if !f.fired {
		return true
	}
	return now.Sub(f.last) >= interval
}

// Fired records a shot at now
func (f *FireControl) Fired(now time.Time) {
	f.last = now
	f.fired = true
}

// Reset forgets the last shot
func (f *FireControl) Reset() {
	*f = FireControl{}
}

// Aim builds a projectile from the player center toward the nearest enemy.
// ok is false when there is no enemy or the nearest one sits exactly on the
// player center.
func Aim(cfg Config, level int, player Player, enemies []Enemy) (Projectile, bool) {
	cx, cy := player.Center()
	target, ok := NearestEnemy(enemies, cx, cy)
	if !ok {
		return Projectile{}, false
	}
	dx, dy, ok := Direction(cx, cy, enemies[target].X, enemies[target].Y)
	if !ok {
		return Projectile{}, false
	}
	return NewProjectile(cfg, level, cx, cy, dx, dy), true
}
