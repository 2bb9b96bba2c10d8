package game

import "testing"

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"identical", a, true},
		{"inside", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"partial", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"touching right edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"touching bottom edge", Rect{X: 0, Y: 10, W: 5, H: 5}, false},
		{"apart", Rect{X: 20, Y: 20, W: 5, H: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps(%+v) = %v, want %v", tt.b, got, tt.want)
			}
			if got := tt.b.Overlaps(a); got != tt.want {
				t.Errorf("reverse Overlaps(%+v) = %v, want %v", tt.b, got, tt.want)
			}
		})
	}
}

func TestProjectileConsumedOnHit(t *testing.T) {
	w, clock := newTestWorld(t)
	startPlaying(w, clock)
	cfg := w.config

	w.enemies = []Enemy{NewEnemy(cfg, 1, 1, 100, 100)}
	w.projectiles = []Projectile{NewProjectile(cfg, 1, 100, 100, 0, -1)}

	w.collisions.ResolveProjectileHits(clock.Now())

	if len(w.projectiles) != 0 {
		t.Fatalf("projectiles = %d, want 0 after a hit", len(w.projectiles))
	}
	if len(w.enemies) != 1 || w.enemies[0].HP != 5 {
		t.Fatalf("enemy = %+v, want one enemy at 5 HP", w.enemies)
	}
	if len(w.explosions) != 0 {
		t.Errorf("explosions = %d, want 0 without a kill", len(w.explosions))
	}

	w.projectiles = append(w.projectiles, NewProjectile(cfg, 1, 100, 100, 0, -1))
	w.collisions.ResolveProjectileHits(clock.Now())

	if len(w.enemies) != 0 {
		t.Fatalf("enemies = %d, want 0 after the killing blow", len(w.enemies))
	}
	if len(w.explosions) != 1 {
		t.Fatalf("explosions = %d, want 1", len(w.explosions))
	}
	if ex := w.explosions[0]; ex.X != 100 || ex.Y != 100 {
		t.Errorf("explosion at (%v, %v), want (100, 100)", ex.X, ex.Y)
	}
	if w.player.Kills != 1 || w.player.Exp != 1 {
		t.Errorf("Kills, Exp = %d, %d, want 1, 1", w.player.Kills, w.player.Exp)
	}
}

func TestProjectileHitsOnlyFirstEnemy(t *testing.T) {
	w, clock := newTestWorld(t)
	startPlaying(w, clock)
	cfg := w.config

	w.enemies = []Enemy{
		NewEnemy(cfg, 1, 1, 100, 100),
		NewEnemy(cfg, 1, 2, 101, 100),
	}
	p := NewProjectile(cfg, 1, 100, 100, 0, -1)
	p.Damage = 1000
	w.projectiles = []Projectile{p}

	w.collisions.ResolveProjectileHits(clock.Now())

	if len(w.enemies) != 1 {
		t.Fatalf("enemies = %d, want 1", len(w.enemies))
	}
	if got := w.enemies[0]; got.ID != 2 || got.HP != got.MaxHP {
		t.Errorf("survivor = %+v, want untouched enemy 2", got)
	}
}

func TestProjectileMissKeepsFlying(t *testing.T) {
	w, clock := newTestWorld(t)
	startPlaying(w, clock)
	cfg := w.config

	w.enemies = []Enemy{NewEnemy(cfg, 1, 1, 100, 100)}
	w.projectiles = []Projectile{NewProjectile(cfg, 1, 200, 200, 0, -1)}

	w.collisions.ResolveProjectileHits(clock.Now())

	if len(w.projectiles) != 1 || w.enemies[0].HP != 10 {
		t.Errorf("projectiles = %d, enemy HP = %d, want 1 and 10", len(w.projectiles), w.enemies[0].HP)
	}
}

func TestKillGoalStopsResolution(t *testing.T) {
	w, clock := newTestWorld(t)
	startPlaying(w, clock)
	cfg := w.config

	w.player.Kills, w.player.Exp = 99, 99
	w.enemies = []Enemy{
		NewEnemy(cfg, 1, 1, 100, 100),
		NewEnemy(cfg, 1, 2, 250, 250),
	}
	w.enemies[0].HP, w.enemies[1].HP = 1, 1
	w.projectiles = []Projectile{
		NewProjectile(cfg, 1, 100, 100, 0, -1),
		NewProjectile(cfg, 1, 250, 250, 0, -1),
	}

	w.collisions.ResolveProjectileHits(clock.Now())

	if w.Phase() != PhaseVictory {
		t.Fatalf("phase = %v, want victory", w.Phase())
	}
	if w.player.Kills != 100 {
		t.Errorf("Kills = %d, want 100", w.player.Kills)
	}
	if len(w.enemies) != 1 || len(w.projectiles) != 1 {
		t.Errorf("enemies, projectiles = %d, %d, want 1, 1", len(w.enemies), len(w.projectiles))
	}
}

func TestTouchesPlayer(t *testing.T) {
	w, _ := newTestWorld(t)
	cx, cy := w.player.Center()
	cfg := w.config

	// player half size 22 + enemy half size 16
	touching := NewEnemy(cfg, 1, 1, cx+37, cy)
	apart := NewEnemy(cfg, 1, 2, cx+38, cy)

	if !w.collisions.TouchesPlayer(touching) {
		t.Error("overlapping enemy not reported")
	}
	if w.collisions.TouchesPlayer(apart) {
		t.Error("edge-touching enemy reported as contact")
	}
}
