package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"grasslandslayer/game"
)

// pointerSample is the state of the primary pointer for one frame
type pointerSample struct {
	down bool
	x, y float64
}

// PointerTracker turns the mouse and the first active touch into touch
// events on the world's input queue
type PointerTracker struct {
	queue *game.InputQueue

	active       bool
	lastX, lastY float64

	touching bool
	touchID  ebiten.TouchID
	touchBuf []ebiten.TouchID
}

// NewPointerTracker creates a tracker pushing into queue
func NewPointerTracker(queue *game.InputQueue) *PointerTracker {
	return &PointerTracker{queue: queue, touchBuf: make([]ebiten.TouchID, 0, 4)}
}

// Poll reads this frame's pointer state and queues the resulting events.
// Must be called from ebiten's Update.
func (t *PointerTracker) Poll() {
	for _, ev := range t.step(t.sample()) {
		t.queue.Push(ev)
	}
}

// step compares a sample with the previous frame and returns the events it implies
func (t *PointerTracker) step(s pointerSample) []game.InputEvent {
	switch {
	case s.down && !t.active:
		t.active = true
		t.lastX, t.lastY = s.x, s.y
		return []game.InputEvent{{Kind: game.TouchStart, X: s.x, Y: s.y}}
	case s.down && (s.x != t.lastX || s.y != t.lastY):
		t.lastX, t.lastY = s.x, s.y
		return []game.InputEvent{{Kind: game.TouchMove, X: s.x, Y: s.y}}
	case !s.down && t.active:
		t.active = false
		return []game.InputEvent{{Kind: game.TouchEnd, X: t.lastX, Y: t.lastY}}
	}
	return nil
}

func (t *PointerTracker) sample() pointerSample {
	if t.touching {
		if inpututil.IsTouchJustReleased(t.touchID) {
			t.touching = false
			return pointerSample{}
		}
		x, y := ebiten.TouchPosition(t.touchID)
		return pointerSample{down: true, x: float64(x), y: float64(y)}
	}

	t.touchBuf = inpututil.AppendJustPressedTouchIDs(t.touchBuf[:0])
	if len(t.touchBuf) > 0 {
		t.touching = true
		t.touchID = t.touchBuf[0]
		x, y := ebiten.TouchPosition(t.touchID)
		return pointerSample{down: true, x: float64(x), y: float64(y)}
	}

	x, y := ebiten.CursorPosition()
	return pointerSample{
		down: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		x:    float64(x),
		y:    float64(y),
	}
}
