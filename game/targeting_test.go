package game

import (
	"testing"
	"time"
)

func TestNearestEnemy(t *testing.T) {
	tests := []struct {
		name    string
		enemies []Enemy
		want    int
		wantOK  bool
	}{
		{"none", nil, -1, false},
		{"single", []Enemy{{X: 50, Y: 50}}, 0, true},
		{"closest wins", []Enemy{{X: 100, Y: 0}, {X: 0, Y: 10}, {X: 30, Y: 30}}, 1, true},
		{"tie keeps first", []Enemy{{X: 10, Y: 0}, {X: 0, Y: 10}, {X: -10, Y: 0}}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NearestEnemy(tt.enemies, 0, 0)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("NearestEnemy() = %d, %v, want %d, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDirection(t *testing.T) {
	dx, dy, ok := Direction(0, 0, 3, 4)
	if !ok || !approx(dx, 0.6) || !approx(dy, 0.8) {
		t.Errorf("Direction(0,0,3,4) = %v, %v, %v, want 0.6, 0.8, true", dx, dy, ok)
	}
	if _, _, ok := Direction(5, 5, 5, 5); ok {
		t.Error("Direction between coincident points reported ok")
	}
}

func TestFireControl(t *testing.T) {
	var f FireControl
	interval := 300 * time.Millisecond

	if !f.Ready(testStart, interval) {
		t.Fatal("unfired weapon not ready")
	}
	f.Fired(testStart)
	if f.Ready(testStart.Add(299*time.Millisecond), interval) {
		t.Error("ready before the interval elapsed")
	}
	if !f.Ready(testStart.Add(300*time.Millisecond), interval) {
		t.Error("not ready once the interval elapsed")
	}
	f.Reset()
	if !f.Ready(testStart, interval) {
		t.Error("not ready after Reset")
	}
}

func TestAim(t *testing.T) {
	cfg := DefaultConfig()
	player := NewPlayer(cfg, 1)
	cx, cy := player.Center()

	if _, ok := Aim(cfg, 1, player, nil); ok {
		t.Error("Aim with no enemies reported ok")
	}
	if _, ok := Aim(cfg, 1, player, []Enemy{{X: cx, Y: cy}}); ok {
		t.Error("Aim at an enemy on the player center reported ok")
	}

	enemies := []Enemy{{X: cx + 200, Y: cy}, {X: cx, Y: cy - 100}}
	p, ok := Aim(cfg, 1, player, enemies)
	if !ok {
		t.Fatal("Aim() reported no shot")
	}
	if p.X != cx || p.Y != cy {
		t.Errorf("projectile starts at (%v, %v), want player center", p.X, p.Y)
	}
	if !approx(p.DirX, 0) || !approx(p.DirY, -1) {
		t.Errorf("direction = (%v, %v), want (0, -1)", p.DirX, p.DirY)
	}
}
