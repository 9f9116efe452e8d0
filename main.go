package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilewalk/common"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode (fps overlay, hot reload)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	scenePath := flag.String("scene", "scene/data.json", "scene file to load")
	atlasPath := flag.String("atlas", "assets/tilemap_packed.png", "texture atlas to load")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("tilewalk")

	game := NewGame(*scenePath, *atlasPath, *debug)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
