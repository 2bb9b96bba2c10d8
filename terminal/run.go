package terminal

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"

	"grasslandslayer/game"
)

// ErrScreenClosed is returned by Run when the screen stops delivering events
var ErrScreenClosed = errors.New("terminal: screen closed")

// Run drives world at tps ticks per second on screen until the context is
// cancelled or the player quits. The caller owns screen and must Fini it.
func Run(ctx context.Context, screen tcell.Screen, world *game.World, tps int) error {
	if tps <= 0 {
		tps = 60
	}
	screen.EnableMouse()
	screen.HideCursor()

	renderer := NewRenderer(screen)
	var mouse MouseTranslator

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	snap := world.Snapshot()
	renderer.Draw(snap)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return ErrScreenClosed
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					return nil
				}
			case *tcell.EventMouse:
				_, button := OverlayText(snap)
				for _, in := range mouse.Translate(ev, renderer.Viewport(world.Config()), button) {
					world.Input().Push(in)
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			world.Update()
			snap = world.Snapshot()
			renderer.Draw(snap)
		}
	}
}
