package main

import (
	"errors"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/zen-garden/internal/config"
	"github.com/iburimskiy/zen-garden/internal/game"
)

func main() {
	opts, err := config.LoadOptions()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if !opts.Verbose {
		log.SetOutput(io.Discard)
	}

	app, err := game.NewApp(opts)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("start: %v", err)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Zen Garden - 1-5: Pages, M: Ambient sound, F11: Fullscreen, Esc: Quit")
	ebiten.SetTPS(config.TicksPerSec)

	runErr := ebiten.RunGame(app)
	if err := app.Close(); err != nil {
		log.Printf("[Main] Warning: %v", err)
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		panic(runErr)
	}
}
