package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"chosenoffset.com/groundzero/internal/game"
	"chosenoffset.com/groundzero/internal/level"
)

func main() {
	screenWidth := 1280
	screenHeight := 800

	log.Println("Loading map...")
	lvl, err := level.Load("assets/maps/groundzero.json")
	if err != nil {
		log.Fatalf("Failed to load map: %v", err)
	}
	log.Printf("Loaded map %q (%dx%d tiles)", lvl.Name(), lvl.Width(), lvl.Height())

	g := game.New(lvl, screenWidth, screenHeight)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("GroundZero")
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	log.Println("Starting game...")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
