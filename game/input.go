package game

import "sync"

// InputKind is the kind of a pointer event
type InputKind int

const (
	TouchStart InputKind = iota
	TouchMove
	TouchEnd
)

func (k InputKind) String() string {
	switch k {
	case TouchStart:
		return "touch_start"
	case TouchMove:
		return "touch_move"
	case TouchEnd:
		return "touch_end"
	default:
		return "unknown"
	}
}

// InputEvent is a single touch event in screen coordinates
type InputEvent struct {
	Kind InputKind
	X, Y float64
}

// InputQueue buffers events from the host until the next frame.
// Push may be called from any goroutine; Drain belongs to the update loop.
type InputQueue struct {
	mu     sync.Mutex
	events []InputEvent
}

// NewInputQueue creates an empty queue
func NewInputQueue() *InputQueue {
	return &InputQueue{events: make([]InputEvent, 0, 16)}
}

// Push appends an event
func (q *InputQueue) Push(ev InputEvent) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
}

// Drain appends all pending events to buf, empties the queue and returns buf
func (q *InputQueue) Drain(buf []InputEvent) []InputEvent {
	q.mu.Lock()
	buf = append(buf, q.events...)
	q.events = q.events[:0]
	q.mu.Unlock()
	return buf
}

// Len returns the number of pending events
func (q *InputQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// TouchAction is what a touch start means in the current phase
type TouchAction int

const (
	ActionNone TouchAction = iota
	ActionStart
	ActionContinue
	ActionRestart
	ActionDrag
)

// ClassifyTouch decides what a touch start at (x, y) does
func ClassifyTouch(cfg Config, phase Phase, player Player, x, y float64) TouchAction {
	switch phase {
	case PhaseTitle:
		return ActionStart
	case PhaseVictory:
		if cfg.ContinueButton.Contains(x, y, cfg.ScreenWidth, cfg.ScreenHeight) {
			return ActionContinue
		}
	case PhaseDefeatWaiting:
		if cfg.RestartButton.Contains(x, y, cfg.ScreenWidth, cfg.ScreenHeight) {
			return ActionRestart
		}
	case PhasePlaying:
		if player.Contains(x, y) {
			return ActionDrag
		}
	}
	return ActionNone
}

// DragTo centers the player on (x, y), clamped to stay fully on screen
func (p *Player) DragTo(cfg Config, x, y float64) {
	p.X = clamp(x-p.Width/2, 0, cfg.ScreenWidth-p.Width)
	p.Y = clamp(y-p.Height/2, 0, cfg.ScreenHeight-p.Height)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}
