package main

import (
	"flag"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"grasslandslayer/game"
	"grasslandslayer/render"
)

var (
	debugFlag   = flag.Bool("debug", false, "Show hitboxes and frame rate (toggle with F1)")
	widthFlag   = flag.Float64("width", 0, "Playfield width in pixels (default 375)")
	heightFlag  = flag.Float64("height", 0, "Playfield height in pixels (default 667)")
	seedFlag    = flag.Int64("seed", 0, "Spawn RNG seed, 0 picks one from the clock")
	tpsFlag     = flag.Int("tps", 60, "Game ticks per second")
	profileFlag = flag.String("profile", "", "Write CPU profiles and traces on frame rate drops into this directory")
)

func main() {
	flag.Parse()
	logger := newLogger(os.Stderr)

	config, err := playfieldConfig(*widthFlag, *heightFlag)
	if err != nil {
		logger.Fatal(err)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Printf("seed %d", seed)

	world := game.NewWorld(config, game.SystemClock{}, rand.New(rand.NewSource(seed)), logger)
	app, err := render.NewApp(world, render.Options{
		Debug:      *debugFlag,
		ProfileDir: *profileFlag,
		Logger:     logger,
	})
	if err != nil {
		logger.Fatal(err)
	}

	ebiten.SetWindowSize(int(config.ScreenWidth), int(config.ScreenHeight))
	ebiten.SetWindowTitle("Grassland Slayer")
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(*tpsFlag)

	if err := ebiten.RunGame(app); err != nil {
		logger.Fatal(err)
	}
}

func newLogger(w io.Writer) *log.Logger {
	return log.New(w, "grassland: ", log.LstdFlags)
}

// playfieldConfig returns the default config resized by the -width and
// -height flags. Zero keeps the default.
func playfieldConfig(width, height float64) (game.Config, error) {
	config := game.DefaultConfig()
	if width > 0 {
		config.ScreenWidth = width
	}
	if height > 0 {
		config.ScreenHeight = height
	}
	return config, config.Validate()
}
