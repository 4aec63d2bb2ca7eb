package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/YashmitSagari123/python-platformer/game"
)

func main() {
	config := game.DefaultConfig()
	g, err := game.NewGame(config)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Platformer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
