package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"grasslandslayer/game"
	"grasslandslayer/terminal"

	"github.com/gdamore/tcell/v2"
)

func main() {
	seedFlag := flag.Int64("seed", 0, "Spawn RNG seed, 0 picks one from the clock")
	tpsFlag := flag.Int("tps", 60, "Game ticks per second")
	logFlag := flag.String("log", "", "Append phase changes to this file")
	flag.Parse()

	// stderr is the terminal we draw on, so logs only go to a file
	var logger *log.Logger
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		logger = log.New(f, "grassland: ", log.LstdFlags)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}

	// Restore the terminal before printing a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "grassland-tui crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	config := game.DefaultConfig()
	world := game.NewWorld(config, game.SystemClock{}, rand.New(rand.NewSource(seed)), logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = terminal.Run(ctx, screen, world, *tpsFlag)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
