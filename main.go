package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	var (
		width     = flag.Int("width", 1280, "window width")
		height    = flag.Int("height", 720, "window height")
		levelPath = flag.String("level", "levels/level.json", "level file to load and save")
		atlasPath = flag.String("atlas", "", "tileset atlas image; skips the path prompt when set")
	)
	flag.Parse()

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("leveledit")

	game := NewGame(*width, *height, *levelPath, *atlasPath)
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
