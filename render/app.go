package render

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"grasslandslayer/game"
)

// App adapts a World to ebiten.Game
type App struct {
	world    *game.World
	renderer *Renderer
	pointer  *PointerTracker
	profiler *Profiler
	debug    *DebugState

	snapshot game.Snapshot
}

// Options configures an App
type Options struct {
	Debug bool

	// ProfileDir enables FPS-drop profiling into the directory when set
	ProfileDir string

	Logger *log.Logger
}

// NewApp builds the renderer, starts loading sprites and wires input into world
func NewApp(world *game.World, opts Options) (*App, error) {
	fonts, err := LoadFonts()
	if err != nil {
		return nil, err
	}

	assets := NewBundle(opts.Logger)
	loaded := assets.LoadAsync()
	go func() {
		if err := <-loaded; err != nil && opts.Logger != nil {
			opts.Logger.Printf("some sprites failed to load, drawing shapes instead: %v", err)
		}
	}()

	debug := &DebugState{}
	if opts.Debug {
		debug.Toggle()
	}

	a := &App{
		world:    world,
		renderer: NewRenderer(assets, fonts, debug),
		pointer:  NewPointerTracker(world.Input()),
		debug:    debug,
		snapshot: world.Snapshot(),
	}

	if opts.ProfileDir != "" {
		a.profiler, err = NewProfiler(opts.ProfileDir, opts.Logger)
		if err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Update advances the world by one tick
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		a.debug.Toggle()
	}

	a.pointer.Poll()
	a.world.Update()
	a.snapshot = a.world.Snapshot()
	a.renderer.Update(1/float64(ebiten.TPS()), a.snapshot)

	if a.profiler != nil {
		reason := fmt.Sprintf("level%d-enemies%d-projectiles%d",
			a.snapshot.Level, len(a.snapshot.Enemies), len(a.snapshot.Projectiles))
		a.profiler.Observe(ebiten.ActualFPS(), time.Now(), reason)
	}
	return nil
}

// Draw renders the latest snapshot
func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.Draw(screen, a.snapshot)
}

// Layout returns the fixed playfield size
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := a.world.Config()
	return int(cfg.ScreenWidth), int(cfg.ScreenHeight)
}
