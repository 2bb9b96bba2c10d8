package game

import (
	"testing"
	"time"
)

func TestSnapshotIsACopy(t *testing.T) {
	w, clock := newTestWorld(t)
	startPlaying(w, clock)
	w.enemies = []Enemy{NewEnemy(w.config, 1, 1, 10, 10)}

	snap := w.Snapshot()
	snap.Enemies[0].HP = 0
	snap.Player.Kills = 50

	if w.enemies[0].HP != 10 || w.player.Kills != 0 {
		t.Error("mutating the snapshot changed the world")
	}
	if snap.State.Phase != PhasePlaying || snap.Level != 1 {
		t.Errorf("snapshot phase, level = %v, %d", snap.State.Phase, snap.Level)
	}
}

func TestSnapshotCountdown(t *testing.T) {
	tests := []struct {
		name    string
		phase   Phase
		elapsed time.Duration
		want    int
	}{
		{"defeat start", PhaseDefeat, 0, 3},
		{"defeat just under", PhaseDefeat, 999 * time.Millisecond, 3},
		{"defeat one second", PhaseDefeat, time.Second, 2},
		{"defeat last second", PhaseDefeat, 2001 * time.Millisecond, 1},
		{"defeat over", PhaseDefeat, 3 * time.Second, 0},
		{"victory waiting", PhaseVictoryWaiting, 1500 * time.Millisecond, 2},
		{"playing", PhasePlaying, 0, 0},
		{"defeat waiting", PhaseDefeatWaiting, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := Snapshot{
				Config: DefaultConfig(),
				Now:    testStart.Add(tt.elapsed),
				State:  State{Phase: tt.phase, Since: testStart},
			}
			if got := snap.Countdown(); got != tt.want {
				t.Errorf("Countdown() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLevelMessageProgress(t *testing.T) {
	snap := Snapshot{
		Config: DefaultConfig(),
		Now:    testStart.Add(time.Second),
		State:  State{Phase: PhaseLevelMessage, Since: testStart},
	}
	if got := snap.LevelMessageProgress(); !approx(got, 0.5) {
		t.Errorf("LevelMessageProgress() = %v, want 0.5", got)
	}
}
