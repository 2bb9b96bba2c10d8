package game

import (
	"sync"
	"testing"
)

func TestInputQueueConcurrentPush(t *testing.T) {
	q := NewInputQueue()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				q.Push(InputEvent{Kind: TouchMove, X: float64(i)})
			}
		}()
	}
	wg.Wait()

	if got := q.Len(); got != 800 {
		t.Fatalf("Len() = %d, want 800", got)
	}
	events := q.Drain(nil)
	if len(events) != 800 {
		t.Errorf("Drain() returned %d events, want 800", len(events))
	}
	if q.Len() != 0 {
		t.Errorf("Len() after Drain = %d, want 0", q.Len())
	}
}

func TestInputQueueKeepsOrder(t *testing.T) {
	q := NewInputQueue()
	q.Push(InputEvent{Kind: TouchStart, X: 1})
	q.Push(InputEvent{Kind: TouchMove, X: 2})
	q.Push(InputEvent{Kind: TouchEnd, X: 3})

	events := q.Drain(make([]InputEvent, 0, 4))
	for i, want := range []InputKind{TouchStart, TouchMove, TouchEnd} {
		if events[i].Kind != want {
			t.Errorf("event %d = %v, want %v", i, events[i].Kind, want)
		}
	}
}

func TestClassifyTouch(t *testing.T) {
	cfg := DefaultConfig()
	player := NewPlayer(cfg, 1)
	cx, cy := player.Center()
	midX, midY := cfg.ScreenWidth/2, cfg.ScreenHeight/2

	tests := []struct {
		name  string
		phase Phase
		x, y  float64
		want  TouchAction
	}{
		{"title anywhere", PhaseTitle, 3, 3, ActionStart},
		{"playing on player", PhasePlaying, cx, cy, ActionDrag},
		{"playing off player", PhasePlaying, 3, 3, ActionNone},
		{"victory on button", PhaseVictory, midX, midY + 150, ActionContinue},
		{"victory off button", PhaseVictory, midX, midY, ActionNone},
		{"victory waiting ignores button", PhaseVictoryWaiting, midX, midY + 150, ActionNone},
		{"defeat waiting on button", PhaseDefeatWaiting, 5, midY + 100, ActionRestart},
		{"defeat before timer", PhaseDefeat, 5, midY + 100, ActionNone},
		{"level message", PhaseLevelMessage, cx, cy, ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyTouch(cfg, tt.phase, player, tt.x, tt.y); got != tt.want {
				t.Errorf("ClassifyTouch() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDragClampsToScreen(t *testing.T) {
	w, clock := newTestWorld(t)
	startPlaying(w, clock)
	cx, cy := w.player.Center()
	now := clock.Now()

	w.input.Push(InputEvent{Kind: TouchStart, X: cx, Y: cy})
	w.input.Push(InputEvent{Kind: TouchMove, X: -50, Y: -50})
	w.handleInput(now)
	if !w.player.Dragging {
		t.Fatal("touch on the player did not start a drag")
	}
	if w.player.X != 0 || w.player.Y != 0 {
		t.Errorf("player at (%v, %v), want (0, 0)", w.player.X, w.player.Y)
	}

	w.input.Push(InputEvent{Kind: TouchMove, X: 1000, Y: 1000})
	w.handleInput(now)
	wantX := w.config.ScreenWidth - w.player.Width
	wantY := w.config.ScreenHeight - w.player.Height
	if w.player.X != wantX || w.player.Y != wantY {
		t.Errorf("player at (%v, %v), want (%v, %v)", w.player.X, w.player.Y, wantX, wantY)
	}

	w.input.Push(InputEvent{Kind: TouchMove, X: 100, Y: 100})
	w.handleInput(now)
	if got := w.player.X + w.player.Width/2; got != 100 {
		t.Errorf("player center x = %v, want 100", got)
	}

	w.input.Push(InputEvent{Kind: TouchEnd})
	w.input.Push(InputEvent{Kind: TouchMove, X: 200, Y: 200})
	w.handleInput(now)
	if w.player.Dragging {
		t.Error("drag still active after touch end")
	}
	if got := w.player.X + w.player.Width/2; got != 100 {
		t.Errorf("player moved to %v after touch end", got)
	}
}

func TestTouchOffPlayerDoesNotDrag(t *testing.T) {
	w, clock := newTestWorld(t)
	startPlaying(w, clock)
	before := w.player

	w.input.Push(InputEvent{Kind: TouchStart, X: 1, Y: 1})
	w.input.Push(InputEvent{Kind: TouchMove, X: 50, Y: 50})
	w.handleInput(clock.Now())

	if w.player.Dragging || w.player.X != before.X || w.player.Y != before.Y {
		t.Errorf("player = %+v, want unmoved and not dragging", w.player)
	}
}
