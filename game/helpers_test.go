package game

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

var testStart = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestWorld(t *testing.T) (*World, *ManualClock) {
	t.Helper()
	clock := NewManualClock(testStart)
	w := NewWorld(DefaultConfig(), clock, rand.New(rand.NewSource(1)), nil)
	return w, clock
}

// startPlaying puts the world straight into play without going through the title tap
func startPlaying(w *World, clock *ManualClock) {
	w.state = State{Phase: PhasePlaying, Since: clock.Now()}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
